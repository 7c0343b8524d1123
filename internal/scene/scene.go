// Package scene supplies authoring convenience constructors for spheres,
// cubes, and planes — a thin builder layer rather than a scene file
// format, used by cmd/raytrace to assemble demo scenes.
package scene

import (
	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/geometry"
	"github.com/rustray/raytrace/internal/object"
	"github.com/rustray/raytrace/internal/texture"
	"github.com/rustray/raytrace/internal/transform"
	mathutil "github.com/rustray/raytrace/pkg/math"
)

// Sphere builds a sphere object of the given radius centered at center,
// textured with surf.
func Sphere(center algebra.Point3, radius float64, surf texture.Surface) *object.Object {
	t, _ := transform.New(center.Vec3, algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(radius, radius, radius))
	return object.New(geometry.Sphere{}, t, texture.NewSolid(surf))
}

// Cube builds an axis-aligned cube of the given side length centered at
// center, textured with surf.
func Cube(center algebra.Point3, side float64, surf texture.Surface) *object.Object {
	t, _ := transform.New(center.Vec3, algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(side, side, side))
	return object.New(geometry.Cube{}, t, texture.NewSolid(surf))
}

// Plane builds the infinite ground plane at the given height, textured
// with surf. Rotation/scale never apply meaningfully to an infinite
// plane's shape, so only the height (a translation along Y) is exposed.
func Plane(height float64, surf texture.Surface) *object.Object {
	t, _ := transform.New(algebra.NewVec3(0, height, 0), algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(1, 1, 1))
	return object.New(geometry.Plane{}, t, texture.NewSolid(surf))
}

// CheckeredPlane builds the infinite ground plane textured with an
// alternating checker pattern of the two given surfaces.
func CheckeredPlane(height, scale float64, even, odd texture.Surface) *object.Object {
	t, _ := transform.New(algebra.NewVec3(0, height, 0), algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(1, 1, 1))
	return object.New(geometry.Plane{}, t, texture.NewChecker(even, odd, scale))
}

// DiffuseSurface returns a plain diffuse surface of the given color.
func DiffuseSurface(color texture.Color) texture.Surface {
	return texture.Surface{Color: color, Material: texture.DefaultMaterial}
}

// MirrorSurface returns a purely specular surface of the given color
// (the color only matters if a future non-perfect-mirror reflectivity is
// dialed in; at reflectivity 1 the diffuse term is skipped entirely).
func MirrorSurface(color texture.Color) texture.Surface {
	return texture.Surface{Color: color, Material: texture.Mirror()}
}

// GlassSurface returns a dielectric surface with the given index of
// refraction.
func GlassSurface(color texture.Color, refractiveIndex float64) texture.Surface {
	return texture.Surface{Color: color, Material: texture.Glass(refractiveIndex)}
}

// RandomSpheres deterministically scatters count non-overlapping spheres
// of radius in [0.3, 1.0] inside a cube of the given bound centered on the
// origin, seeded by seed so the same call always produces the same
// scene — the random-scatter counterpart to the original scene builder's
// fixed pyramid of spheres. The octree's thousand-sphere stress test does
// not use it; it builds its own spheres with math/rand.
func RandomSpheres(seed int64, count int, bound float64) []*object.Object {
	rng := mathutil.NewSeededRNG(seed)
	palette := []texture.Color{
		{R: 0.8, G: 0.2, B: 0.2},
		{R: 0.2, G: 0.8, B: 0.2},
		{R: 0.2, G: 0.2, B: 0.8},
		{R: 0.8, G: 0.8, B: 0.2},
		{R: 0.8, G: 0.2, B: 0.8},
	}

	type placed struct {
		center algebra.Point3
		radius float64
	}
	placements := make([]placed, 0, count)
	objects := make([]*object.Object, 0, count)

	const maxAttemptsPerSphere = 64
	for len(placements) < count {
		placedOne := false
		for attempt := 0; attempt < maxAttemptsPerSphere; attempt++ {
			radius := rng.NextFloat(0.3, 1.0)
			center := algebra.NewPoint3(
				rng.NextFloat(-bound, bound),
				rng.NextFloat(-bound, bound),
				rng.NextFloat(-bound, bound),
			)
			overlaps := false
			for _, p := range placements {
				d := mathutil.Distance3D(center.X(), center.Y(), center.Z(), p.center.X(), p.center.Y(), p.center.Z())
				if d < radius+p.radius {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}
			placements = append(placements, placed{center: center, radius: radius})
			color := mathutil.Choose(rng, palette)
			objects = append(objects, Sphere(center, radius, DiffuseSurface(color)))
			placedOne = true
			break
		}
		if !placedOne {
			// The cube is saturated; stop rather than loop forever.
			break
		}
	}
	return objects
}
