package math

// Transform places an object with a position, a rotation and a scale.
// The zero value has a zero rotation; use NewTransform.
type Transform struct {
	Position Vec3
	Scale    Vec3
	Rotation Quat
}

// NewTransform returns a transform at the origin with identity rotation.
// Scale starts at (0, 0, 0).
func NewTransform() Transform {
	return Transform{
		Rotation: QuatIdentity(),
	}
}

// Rotate replaces the rotation with the given Euler angles (radians).
func (t *Transform) Rotate(pitch, yaw, roll float32) *Transform {
	t.Rotation.EulerRotation(pitch, yaw, roll)
	return t
}

// MoveGlobal moves the position by v in world space.
func (t *Transform) MoveGlobal(v Vec3) *Transform {
	t.Position.AddAssign(v)
	return t
}

// MoveLocal moves the position by v in the transform's own frame.
func (t *Transform) MoveLocal(v Vec3) *Transform {
	return t.MoveGlobal(t.Rotation.RotateVec3(v))
}

// Turn applies q after the current rotation, in object space.
func (t *Transform) Turn(q Quat) *Transform {
	t.Rotation.MulAssign(q)
	return t
}

// TurnGlobal applies q before the current rotation, in world space.
func (t *Transform) TurnGlobal(q Quat) *Transform {
	t.Rotation = q.Mul(t.Rotation)
	return t
}

// Grow adds v to the scale.
func (t *Transform) Grow(v Vec3) *Transform {
	t.Scale.AddAssign(v)
	return t
}
