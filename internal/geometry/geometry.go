// Package geometry defines the canonical-space analytic primitives: unit
// sphere, unit cube, and the y=0 plane. Each answers two questions — the
// nearest positive ray parameter, and the hit record at a given parameter —
// entirely in its own local frame.
package geometry

import "github.com/rustray/raytrace/internal/algebra"

// UV is a pair of texture coordinates in [0,1] (not clamped; callers that
// tile should wrap).
type UV struct {
	U, V float64
}

// HitRecord is the position, outward unit normal, and texture coordinates
// at a ray/geometry intersection, in the same space as the ray that
// produced it.
type HitRecord struct {
	Position algebra.Point3
	Normal   algebra.UnitVec3
	UV       UV
}

// Geometry is a shape defined in its own canonical local frame.
type Geometry interface {
	// Distance returns the smallest strictly positive ray parameter at
	// which the ray intersects the shape, and whether such a parameter
	// exists.
	Distance(r algebra.Ray) (t float64, ok bool)
	// Hit returns the hit record at the given parameter. The caller is
	// responsible for having obtained t from Distance (or otherwise
	// knowing it lies on the shape); Hit performs no re-validation.
	Hit(r algebra.Ray, t float64) HitRecord
	// BoundingBox returns the shape's axis-aligned bounding box in local
	// space.
	BoundingBox() algebra.BBox
}
