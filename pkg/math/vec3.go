package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3Splat returns a Vec3 with every component set to s.
func Vec3Splat(s float32) Vec3 {
	return Vec3{s, s, s}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul returns the componentwise product of v and other.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div returns the componentwise quotient of v and other.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// AddAssign adds other to v in place.
func (v *Vec3) AddAssign(other Vec3) *Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// SubAssign subtracts other from v in place.
func (v *Vec3) SubAssign(other Vec3) *Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// MulAssign multiplies v by other componentwise in place.
func (v *Vec3) MulAssign(other Vec3) *Vec3 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

// DivAssign divides v by other componentwise in place.
func (v *Vec3) DivAssign(other Vec3) *Vec3 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return DotVec3(v, other)
}

// DotVec3 returns the dot product of a and b.
func DotVec3(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Cross(v, other)
}

// Cross returns the right-handed cross product a x b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - b.Y*a.Z,
		b.X*a.Z - a.X*b.Z,
		a.X*b.Y - b.X*a.Y,
	}
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float32 {
	return DotVec3(v, v)
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return sqrtf(v.LengthSq())
}

// Normalize scales v to unit length in place. Vectors whose length is
// exactly 0 or 1 are left untouched.
func (v *Vec3) Normalize() *Vec3 {
	if f, ok := normalizeFactor(v.LengthSq()); ok {
		v.X *= f
		v.Y *= f
		v.Z *= f
	}
	return v
}

// Normalized returns a normalized copy of v.
func (v Vec3) Normalized() Vec3 {
	return *v.Normalize()
}

// Resize scales v in place so its length becomes size.
func (v *Vec3) Resize(size float32) *Vec3 {
	v.Normalize()
	v.X *= size
	v.Y *= size
	v.Z *= size
	return v
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// ApproxEqual reports whether every component of v is within tolerance of other.
func (v Vec3) ApproxEqual(other Vec3, tolerance float32) bool {
	return Equal(v.X, other.X, tolerance) &&
		Equal(v.Y, other.Y, tolerance) &&
		Equal(v.Z, other.Z, tolerance)
}

// XY returns the XY components as Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// Vec4 widens v to a Vec4 with the given w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}
