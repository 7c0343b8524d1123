package algebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationMovesAPoint(t *testing.T) {
	f := Translation(NewVec3(1, 2, 3))
	p := f.TransformPoint(NewPoint3(0, 0, 0))
	assert.Equal(t, NewPoint3(1, 2, 3), p)
}

func TestTranslationDoesNotMoveAVector(t *testing.T) {
	f := Translation(NewVec3(1, 2, 3))
	v := f.TransformVector(NewVec3(5, 5, 5))
	assert.True(t, v.ApproxEqual(NewVec3(5, 5, 5)))
}

func TestComposeOrderMatchesTRS(t *testing.T) {
	translate := Translation(NewVec3(10, 0, 0))
	scale := NonUniformScale(NewVec3(2, 2, 2))
	f := Identity().Compose(translate).Compose(scale)

	// Scale first, then translate: (1,1,1)*2 + (10,0,0) = (12,2,2).
	p := f.TransformPoint(NewPoint3(1, 1, 1))
	assert.InDelta(t, 12, p.X(), 1e-9)
	assert.InDelta(t, 2, p.Y(), 1e-9)
	assert.InDelta(t, 2, p.Z(), 1e-9)
}

func TestInverseRoundTripsAPoint(t *testing.T) {
	f := Translation(NewVec3(3, -2, 7)).Compose(NonUniformScale(NewVec3(2, 0.5, 3)))
	assert.True(t, f.Invertible())

	p := NewPoint3(1, 1, 1)
	world := f.TransformPoint(p)
	back := f.Inverse().TransformPoint(world)
	assert.InDelta(t, p.X(), back.X(), 1e-9)
	assert.InDelta(t, p.Y(), back.Y(), 1e-9)
	assert.InDelta(t, p.Z(), back.Z(), 1e-9)
}

func TestZeroScaleIsNotInvertible(t *testing.T) {
	f := NonUniformScale(NewVec3(1, 0, 1))
	assert.False(t, f.Invertible())
}
