package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, Vec3{}, tr.Position)
	assert.Equal(t, Vec3{}, tr.Scale)
	assert.Equal(t, QuatIdentity(), tr.Rotation)
}

func TestNewTransformInstancesAreIndependent(t *testing.T) {
	a := NewTransform()
	b := NewTransform()

	a.MoveGlobal(Vec3{1, 2, 3})
	a.Grow(Vec3{1, 1, 1})
	a.Rotate(0.5, 0, 0)

	assert.Equal(t, Vec3{}, b.Position)
	assert.Equal(t, Vec3{}, b.Scale)
	assert.Equal(t, QuatIdentity(), b.Rotation)
}

func TestTransformRotate(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(0.1, 0.2, 0.3)
	assert.Equal(t, QuatFromEuler(0.1, 0.2, 0.3), tr.Rotation)

	// Rotate replaces rather than accumulates
	tr.Rotate(0, 0, 0)
	assert.Equal(t, QuatIdentity(), tr.Rotation)
}

func TestTransformMoveLocal(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(math.Pi/2, 0, 0)
	tr.MoveLocal(Vec3{1, 0, 0})

	assert.True(t, tr.Position.ApproxEqual(Vec3{0, 0, -1}, 1e-6), "position %v", tr.Position)
}

func TestTransformTurn(t *testing.T) {
	a := QuatFromEuler(0.3, 0, 0)
	b := QuatFromEuler(0, 0.6, 0)

	local := NewTransform()
	local.Turn(a).Turn(b)
	assert.Equal(t, a.Mul(b), local.Rotation)

	global := NewTransform()
	global.TurnGlobal(a).TurnGlobal(b)
	assert.Equal(t, b.Mul(a), global.Rotation)
}
