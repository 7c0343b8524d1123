// Package world is the ray caster: it holds the acceleration structure and
// the light list, and implements the two operations — Cast and
// DirectLighting — the shading model recurses through.
package world

import (
	"math"

	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/material"
	"github.com/rustray/raytrace/internal/object"
	"github.com/rustray/raytrace/internal/octree"
	"github.com/rustray/raytrace/internal/texture"
)

// directionalLightDistance stands in for "infinitely far away" when
// capping a shadow ray against a light, per the design notes on light
// distance semantics.
const directionalLightDistance = 1e8

// World is built once per frame: its octree and light list are read-only
// for the remainder of rendering, so Cast and DirectLighting need no
// locking on the hot path.
type World struct {
	tree   *octree.Octree
	lights []Light
}

// New builds a World from an object list and a light list, constructing
// the octree with the given configuration. Lights are queried in the
// order given.
func New(objects []*object.Object, lights []Light, octreeConfig octree.Config) *World {
	return &World{
		tree:   octree.Build(objects, octreeConfig),
		lights: append([]Light(nil), lights...),
	}
}

// Cast traces ray through the scene at the given recursion depth budget,
// returning black on depth exhaustion or a miss.
func (w *World) Cast(ray algebra.Ray, depth int) texture.Color {
	if depth == 0 {
		return texture.Black
	}
	hit, ok := w.tree.ClosestIntersection(ray, math.Inf(1))
	if !ok {
		return texture.Black
	}
	record := hit.Object.Hit(ray, hit.Distance)
	surface := hit.Object.SurfaceAt(record)
	return material.Shade(ray, record, surface.Color, surface.Material, w, depth)
}

// DirectLighting accumulates the contribution of every unoccluded light at
// position, weighted by the cosine of the angle to normal. Each channel is
// clamped to [0,1] as it is accumulated, per light.
func (w *World) DirectLighting(position algebra.Point3, normal algebra.UnitVec3) texture.Color {
	acc := texture.Black
	for _, light := range w.lights {
		toLightVec := light.Position().Sub(position)
		distance := toLightVec.Magnitude()
		if distance < 1e-9 {
			continue
		}
		toLight := toLightVec.Normalize()
		cos := normal.Dot(toLight.Vec3)
		if cos <= 0 {
			continue
		}

		shadowOrigin := position.Add(normal.Scale(material.ShadowBias))
		shadowRay := algebra.Ray{Origin: shadowOrigin, Direction: toLight}
		shadowLimit := distance
		if shadowLimit > directionalLightDistance {
			shadowLimit = directionalLightDistance
		}
		if w.tree.AnyIntersects(shadowRay, shadowLimit) {
			continue
		}

		acc = acc.Add(light.Color.Scale(cos)).ClampUnit()
	}
	return acc
}
