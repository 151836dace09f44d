package math

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Vec4Splat returns a Vec4 with every component set to s.
func Vec4Splat(s float32) Vec4 {
	return Vec4{s, s, s, s}
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

// Mul returns the componentwise product of v and other.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div returns the componentwise quotient of v and other.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

func (v *Vec4) AddAssign(other Vec4) *Vec4 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	v.W += other.W
	return v
}

func (v *Vec4) SubAssign(other Vec4) *Vec4 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	v.W -= other.W
	return v
}

func (v *Vec4) MulAssign(other Vec4) *Vec4 {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	v.W *= other.W
	return v
}

func (v *Vec4) DivAssign(other Vec4) *Vec4 {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	v.W /= other.W
	return v
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Negate returns -v.
func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return DotVec4(v, other)
}

// DotVec4 returns the dot product of a and b.
func DotVec4(a, b Vec4) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// LengthSq returns the squared magnitude.
func (v Vec4) LengthSq() float32 {
	return DotVec4(v, v)
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return sqrtf(v.LengthSq())
}

// Normalize scales v to unit length in place. Vectors whose length is
// exactly 0 or 1 are left untouched.
func (v *Vec4) Normalize() *Vec4 {
	if f, ok := normalizeFactor(v.LengthSq()); ok {
		v.X *= f
		v.Y *= f
		v.Z *= f
		v.W *= f
	}
	return v
}

// Normalized returns a normalized copy of v.
func (v Vec4) Normalized() Vec4 {
	return *v.Normalize()
}

// Resize scales v in place so its length becomes size.
func (v *Vec4) Resize(size float32) *Vec4 {
	v.Normalize()
	v.X *= size
	v.Y *= size
	v.Z *= size
	v.W *= size
	return v
}

// Distance returns the distance to another point.
func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

// ApproxEqual reports whether every component of v is within tolerance of other.
func (v Vec4) ApproxEqual(other Vec4, tolerance float32) bool {
	return Equal(v.X, other.X, tolerance) &&
		Equal(v.Y, other.Y, tolerance) &&
		Equal(v.Z, other.Z, tolerance) &&
		Equal(v.W, other.W, tolerance)
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
