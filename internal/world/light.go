package world

import (
	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/texture"
)

// Light carries a ray (origin + direction) and a color. Per the design
// notes, the origin is treated as the position of a point light emitting
// isotropically; the ray's direction is unused for shadow-distance
// purposes (it exists so a future directional-light mode has somewhere to
// live without changing the type).
type Light struct {
	Ray   algebra.Ray
	Color texture.Color
}

// NewPointLight builds a light at a position with the given color. The
// direction is arbitrary (point lights are isotropic) and is fixed to -Y
// purely so the Ray's Direction field is always a valid unit vector.
func NewPointLight(position algebra.Point3, color texture.Color) Light {
	return Light{
		Ray:   algebra.Ray{Origin: position, Direction: algebra.UnitVec3{Vec3: algebra.NewVec3(0, -1, 0)}},
		Color: color,
	}
}

// Position returns the light's emission point.
func (l Light) Position() algebra.Point3 {
	return l.Ray.Origin
}
