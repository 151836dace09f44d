package math

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromEuler returns the rotation for the given Euler angles in radians.
func QuatFromEuler(pitch, yaw, roll float32) Quat {
	var q Quat
	q.EulerRotation(pitch, yaw, roll)
	return q
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := sinf(halfAngle)
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: cosf(halfAngle),
	}
}

// SetIdentity resets q to the identity rotation.
func (q *Quat) SetIdentity() *Quat {
	*q = QuatIdentity()
	return q
}

// Add returns q + other, componentwise.
func (q Quat) Add(other Quat) Quat {
	return Quat{q.X + other.X, q.Y + other.Y, q.Z + other.Z, q.W + other.W}
}

// Sub returns q - other, componentwise.
func (q Quat) Sub(other Quat) Quat {
	return Quat{q.X - other.X, q.Y - other.Y, q.Z - other.Z, q.W - other.W}
}

// AddAssign adds other to q in place.
func (q *Quat) AddAssign(other Quat) *Quat {
	q.X += other.X
	q.Y += other.Y
	q.Z += other.Z
	q.W += other.W
	return q
}

// SubAssign subtracts other from q in place.
func (q *Quat) SubAssign(other Quat) *Quat {
	q.X -= other.X
	q.Y -= other.Y
	q.Z -= other.Z
	q.W -= other.W
	return q
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// MulAssign sets q to q * other.
func (q *Quat) MulAssign(other Quat) *Quat {
	*q = q.Mul(other)
	return q
}

// Scale returns q with every component multiplied by s.
func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// LengthSq returns the squared norm.
func (q Quat) LengthSq() float32 {
	return q.Dot(q)
}

// Length returns the norm.
func (q Quat) Length() float32 {
	return sqrtf(q.LengthSq())
}

// Normalize scales q to unit length in place. Quaternions whose length is
// exactly 0 or 1 are left untouched.
func (q *Quat) Normalize() *Quat {
	if f, ok := normalizeFactor(q.LengthSq()); ok {
		q.X *= f
		q.Y *= f
		q.Z *= f
		q.W *= f
	}
	return q
}

// Normalized returns a normalized copy of q.
func (q Quat) Normalized() Quat {
	return *q.Normalize()
}

// Inverse returns the conjugate of q, which is the inverse rotation for a
// unit quaternion. The result is not divided by the squared norm.
func (q Quat) Inverse() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// MakeInverse replaces q with its conjugate.
func (q *Quat) MakeInverse() *Quat {
	q.X = -q.X
	q.Y = -q.Y
	q.Z = -q.Z
	return q
}

// EulerRotation overwrites q with the rotation described by the Euler
// angles (radians) and normalizes it. Roll turns about X, pitch about Y
// and yaw about Z.
func (q *Quat) EulerRotation(pitch, yaw, roll float32) *Quat {
	cr := cosf(roll / 2)
	cp := cosf(pitch / 2)
	cy := cosf(yaw / 2)

	sr := sinf(roll / 2)
	sp := sinf(pitch / 2)
	sy := sinf(yaw / 2)

	cpcy := cp * cy
	spsy := sp * sy
	cpsy := cp * sy
	spcy := sp * cy

	q.X = sr*cpcy - cr*spsy
	q.Y = cr*spcy + sr*cpsy
	q.Z = cr*cpsy - sr*spcy
	q.W = cr*cpcy + sr*spsy

	return q.Normalize()
}

// EulerAngles converts q back to Euler angles. It is the inverse of
// EulerRotation for pitch in (-pi/2, pi/2); outside that range some
// information is lost.
func (q Quat) EulerAngles() (pitch, yaw, roll float32) {
	sqX := q.X * q.X
	sqY := q.Y * q.Y
	sqZ := q.Z * q.Z
	sqW := q.W * q.W

	roll = atan2f(2*(q.Y*q.Z+q.X*q.W), -sqX-sqY+sqZ+sqW)
	pitch = asinf(Clamp(2*(q.Y*q.W-q.X*q.Z), -1, 1))
	yaw = atan2f(2*(q.X*q.Y+q.Z*q.W), sqX-sqY-sqZ+sqW)
	return pitch, yaw, roll
}

// AxisAngle returns the rotation axis and angle (radians) of q.
// A quaternion without rotation reports axis (0, 1, 0) and angle 0.
func (q Quat) AxisAngle() (Vec3, float32) {
	scale := sqrtf(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if scale < Epsilon || q.W > 1 || q.W < -1 {
		return Vec3{0, 1, 0}, 0
	}
	inv := 1 / scale
	return Vec3{q.X * inv, q.Y * inv, q.Z * inv}, 2 * acosf(q.W)
}

// RotateVec3 rotates v by q. q is expected to be a unit quaternion.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	uv := Cross(u, v)
	uuv := Cross(u, uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	// Compute cos of angle between quaternions
	dot := q.Dot(other)

	// If dot is negative, negate one quaternion to take the shorter path
	if dot < 0 {
		other = other.Scale(-1)
		dot = -dot
	}

	// Nearly parallel: fall back to lerp, sin(theta0) would be ~0
	if dot > 0.9995 {
		return q.Add(other.Sub(q).Scale(t)).Normalized()
	}

	theta0 := acosf(dot)
	theta := theta0 * t
	sinTheta := sinf(theta)
	sinTheta0 := sinf(theta0)

	s0 := cosf(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return q.Scale(s0).Add(other.Scale(s1))
}

// Lerp performs linear interpolation between two quaternions.
// Use Slerp for rotation interpolation; this is for simple blending.
func (q Quat) Lerp(other Quat, t float32) Quat {
	return q.Scale(1 - t).Add(other.Scale(t)).Normalized()
}

// ApproxEqual reports whether every component of q is within tolerance of other.
func (q Quat) ApproxEqual(other Quat, tolerance float32) bool {
	return Equal(q.X, other.X, tolerance) &&
		Equal(q.Y, other.Y, tolerance) &&
		Equal(q.Z, other.Z, tolerance) &&
		Equal(q.W, other.W, tolerance)
}
