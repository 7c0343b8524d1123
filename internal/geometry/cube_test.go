package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustray/raytrace/internal/algebra"
)

func TestCubeDistanceHitsFace(t *testing.T) {
	c := Cube{}
	r := algebra.Ray{Origin: algebra.NewPoint3(0, 0, -5), Direction: algebra.NewVec3(0, 0, 1).Normalize()}
	d, ok := c.Distance(r)
	assert.True(t, ok)
	assert.InDelta(t, 4.5, d, 1e-9)
}

func TestCubeDistanceFromInsideMisses(t *testing.T) {
	c := Cube{}
	r := algebra.Ray{Origin: algebra.NewPoint3(0, 0, 0), Direction: algebra.NewVec3(0, 0, 1).Normalize()}
	_, ok := c.Distance(r)
	assert.False(t, ok)
}

func TestCubeDistanceMissesCorner(t *testing.T) {
	c := Cube{}
	r := algebra.Ray{Origin: algebra.NewPoint3(5, 5, -5), Direction: algebra.NewVec3(0, 0, 1).Normalize()}
	_, ok := c.Distance(r)
	assert.False(t, ok)
}

func TestCubeHitNormalOnEachFace(t *testing.T) {
	c := Cube{}

	front := algebra.Ray{Origin: algebra.NewPoint3(0, 0, -5), Direction: algebra.NewVec3(0, 0, 1).Normalize()}
	d, _ := c.Distance(front)
	hit := c.Hit(front, d)
	assert.InDelta(t, -1, hit.Normal.Z(), 1e-9)

	top := algebra.Ray{Origin: algebra.NewPoint3(0, 5, 0), Direction: algebra.NewVec3(0, -1, 0).Normalize()}
	d, _ = c.Distance(top)
	hit = c.Hit(top, d)
	assert.InDelta(t, 1, hit.Normal.Y(), 1e-9)
}

func TestCubeBoundingBox(t *testing.T) {
	bb := Cube{}.BoundingBox()
	assert.Equal(t, algebra.NewPoint3(-0.5, -0.5, -0.5), bb.Min)
	assert.Equal(t, algebra.NewPoint3(0.5, 0.5, 0.5), bb.Max)
}
