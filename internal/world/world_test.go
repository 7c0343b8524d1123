package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/geometry"
	"github.com/rustray/raytrace/internal/object"
	"github.com/rustray/raytrace/internal/octree"
	"github.com/rustray/raytrace/internal/texture"
	"github.com/rustray/raytrace/internal/transform"
)

func sphereAt(center algebra.Vec3, radius float64, surf texture.Surface) *object.Object {
	tr, err := transform.New(center, algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(radius, radius, radius))
	if err != nil {
		panic(err)
	}
	return object.New(geometry.Sphere{}, tr, texture.NewSolid(surf))
}

func TestCastMissReturnsBlack(t *testing.T) {
	w := New(nil, nil, octree.DefaultConfig)
	ray := algebra.Ray{Origin: algebra.NewPoint3(0, 0, 0), Direction: algebra.NewVec3(0, 0, 1).Normalize()}
	result := w.Cast(ray, 5)
	assert.True(t, result.IsBlack())
}

func TestCastAtZeroDepthReturnsBlackEvenOnAHit(t *testing.T) {
	objects := []*object.Object{sphereAt(algebra.NewVec3(0, 0, 5), 1, texture.White)}
	w := New(objects, nil, octree.DefaultConfig)
	ray := algebra.Ray{Origin: algebra.NewPoint3(0, 0, 0), Direction: algebra.NewVec3(0, 0, 1).Normalize()}
	result := w.Cast(ray, 0)
	assert.True(t, result.IsBlack())
}

func TestDirectLightingIsZeroWhenFacingAway(t *testing.T) {
	light := NewPointLight(algebra.NewPoint3(0, 10, 0), texture.Color{R: 1, G: 1, B: 1})
	w := New(nil, []Light{light}, octree.DefaultConfig)

	position := algebra.NewPoint3(0, 0, 0)
	normalAway := algebra.UnitVec3{Vec3: algebra.NewVec3(0, -1, 0)}
	result := w.DirectLighting(position, normalAway)
	assert.True(t, result.IsBlack())
}

func TestDirectLightingIsPositiveWhenFacingLight(t *testing.T) {
	light := NewPointLight(algebra.NewPoint3(0, 10, 0), texture.Color{R: 1, G: 1, B: 1})
	w := New(nil, []Light{light}, octree.DefaultConfig)

	position := algebra.NewPoint3(0, 0, 0)
	normalUp := algebra.UnitVec3{Vec3: algebra.NewVec3(0, 1, 0)}
	result := w.DirectLighting(position, normalUp)
	assert.Greater(t, result.R, 0.0)
}

func TestDirectLightingIsOccludedByAnObject(t *testing.T) {
	light := NewPointLight(algebra.NewPoint3(0, 10, 0), texture.Color{R: 1, G: 1, B: 1})
	blocker := sphereAt(algebra.NewVec3(0, 5, 0), 2, texture.White)
	w := New([]*object.Object{blocker}, []Light{light}, octree.DefaultConfig)

	position := algebra.NewPoint3(0, 0, 0)
	normalUp := algebra.UnitVec3{Vec3: algebra.NewVec3(0, 1, 0)}
	result := w.DirectLighting(position, normalUp)
	assert.True(t, result.IsBlack())
}

func TestNewCopiesTheLightSlice(t *testing.T) {
	lights := []Light{NewPointLight(algebra.NewPoint3(0, 1, 0), texture.White.Color)}
	w := New(nil, lights, octree.DefaultConfig)
	lights[0] = NewPointLight(algebra.NewPoint3(99, 99, 99), texture.Black)

	require.Len(t, w.lights, 1)
	assert.InDelta(t, 1, w.lights[0].Position().Y(), 1e-9)
}
