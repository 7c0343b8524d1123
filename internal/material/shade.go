// Package material implements the recursive shading model: direct
// illumination blended with mirror reflection and dielectric refraction
// under a bounded recursion budget.
package material

import (
	"math"

	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/geometry"
	"github.com/rustray/raytrace/internal/texture"
	mathutil "github.com/rustray/raytrace/pkg/math"
)

// ShadowBias is the distance a spawned ray's origin is nudged along the
// surface normal to avoid immediately re-intersecting its own surface.
const ShadowBias = 1e-4

// Caster is the capability Shade needs from its World: casting a
// secondary ray, and evaluating direct lighting at a point. Depending on
// this interface rather than a concrete World type keeps the shading model
// decoupled from the acceleration structure and light list.
type Caster interface {
	Cast(r algebra.Ray, depth int) texture.Color
	DirectLighting(position algebra.Point3, normal algebra.UnitVec3) texture.Color
}

// Shade computes the outgoing color at a hit: diffuse direct lighting
// weighted by (1-reflectivity) (and, when a reflection is blended in,
// weighted by (1-reflectivity) once more in that blend), recursive mirror
// reflection weighted by reflectivity, recursive refraction weighted by
// (1-reflectivity) when the
// surface is refractive, plus emission. The result is not clamped; channel
// clamping happens only during direct-light accumulation and at final
// 8-bit conversion.
func Shade(ray algebra.Ray, hit geometry.HitRecord, surfaceColor texture.Color, mat texture.Material, caster Caster, depth int) texture.Color {
	result := diffuseTerm(hit, surfaceColor, mat, caster)

	if mat.Reflectivity > 0 && depth > 0 {
		reflected := reflectionTerm(ray, hit, mat, caster, depth)
		result = result.Scale(1 - mat.Reflectivity).Add(reflected.Scale(mat.Reflectivity))
	}

	if mat.Refractive > 1 && depth > 0 {
		refracted := refractionTerm(ray, hit, mat, caster, depth)
		result = result.Add(refracted.Scale(1 - mat.Reflectivity))
	}

	return result.Add(mat.Emission)
}

func diffuseTerm(hit geometry.HitRecord, surfaceColor texture.Color, mat texture.Material, caster Caster) texture.Color {
	if mat.Reflectivity == 1 || surfaceColor.IsBlack() {
		return texture.Black
	}
	direct := caster.DirectLighting(hit.Position, hit.Normal)
	return direct.Scale(1 - mat.Reflectivity).Mul(surfaceColor)
}

func reflectionTerm(ray algebra.Ray, hit geometry.HitRecord, mat texture.Material, caster Caster, depth int) texture.Color {
	reflected := algebra.Reflect(ray.Direction, hit.Normal)
	origin := hit.Position.Add(hit.Normal.Scale(ShadowBias))
	r := algebra.Ray{Origin: origin, Direction: reflected}
	return caster.Cast(r, depth-1)
}

// refractionTerm implements Snell's law with n1=1 (vacuum) and n2 =
// mat.Refractive, flipping the incident/exit indices and the normal when
// the ray is leaving the material, and returning black on total internal
// reflection.
func refractionTerm(ray algebra.Ray, hit geometry.HitRecord, mat texture.Material, caster Caster, depth int) texture.Color {
	n1, n2 := 1.0, mat.Refractive
	normal := hit.Normal
	cosI := mathutil.Clamp(-normal.Dot(ray.Direction.Vec3), -1, 1)
	if cosI < 0 {
		n1, n2 = n2, n1
		normal = normal.Negate()
		cosI = -cosI
	}
	eta := n1 / n2
	sin2T := eta * eta * (1 - cosI*cosI)
	if sin2T > 1 {
		return texture.Black
	}
	cosT := math.Sqrt(1 - sin2T)
	dirT := ray.Direction.Scale(eta).Add(normal.Scale(eta*cosI - cosT))
	origin := hit.Position.Sub(hit.Normal.Scale(ShadowBias))
	r := algebra.Ray{Origin: origin, Direction: dirT.Normalize()}
	return caster.Cast(r, depth-1)
}
