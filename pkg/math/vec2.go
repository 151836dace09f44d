package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec2Splat returns a Vec2 with every component set to s.
func Vec2Splat(s float32) Vec2 {
	return Vec2{s, s}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul returns the componentwise product of v and other.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// Div returns the componentwise quotient of v and other.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// AddAssign adds other to v in place.
func (v *Vec2) AddAssign(other Vec2) *Vec2 {
	v.X += other.X
	v.Y += other.Y
	return v
}

// SubAssign subtracts other from v in place.
func (v *Vec2) SubAssign(other Vec2) *Vec2 {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

// MulAssign multiplies v by other componentwise in place.
func (v *Vec2) MulAssign(other Vec2) *Vec2 {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

// DivAssign divides v by other componentwise in place.
func (v *Vec2) DivAssign(other Vec2) *Vec2 {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Negate returns -v.
func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return DotVec2(v, other)
}

// DotVec2 returns the dot product of a and b.
func DotVec2(a, b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// LengthSq returns the squared magnitude.
func (v Vec2) LengthSq() float32 {
	return DotVec2(v, v)
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return sqrtf(v.LengthSq())
}

// Normalize scales v to unit length in place. Vectors whose length is
// exactly 0 or 1 are left untouched.
func (v *Vec2) Normalize() *Vec2 {
	if f, ok := normalizeFactor(v.LengthSq()); ok {
		v.X *= f
		v.Y *= f
	}
	return v
}

// Normalized returns a normalized copy of v.
func (v Vec2) Normalized() Vec2 {
	return *v.Normalize()
}

// Resize scales v in place so its length becomes size.
func (v *Vec2) Resize(size float32) *Vec2 {
	v.Normalize()
	v.X *= size
	v.Y *= size
	return v
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// ApproxEqual reports whether every component of v is within tolerance of other.
func (v Vec2) ApproxEqual(other Vec2, tolerance float32) bool {
	return Equal(v.X, other.X, tolerance) && Equal(v.Y, other.Y, tolerance)
}

// Vec3 widens v to a Vec3 with the given z.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}
