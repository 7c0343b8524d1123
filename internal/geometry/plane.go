package geometry

import (
	"math"

	"github.com/rustray/raytrace/internal/algebra"
)

// Plane is the infinite plane y=0 with outward normal (0,1,0).
type Plane struct{}

const planeParallelEpsilon = 1e-6

// Distance solves oy + t*dy = 0; nearly-parallel rays (|dy| below epsilon)
// and negative roots are reported as misses; a root of exactly zero is a hit.
func (Plane) Distance(r algebra.Ray) (float64, bool) {
	dy := r.Direction.Y()
	if math.Abs(dy) < planeParallelEpsilon {
		return 0, false
	}
	t := -r.Origin.Y() / dy
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Hit returns the position, the fixed normal (0,1,0), and UV = (x, z).
func (Plane) Hit(r algebra.Ray, t float64) HitRecord {
	pos := r.At(t)
	return HitRecord{
		Position: pos,
		Normal:   algebra.UnitVec3{Vec3: algebra.NewVec3(0, 1, 0)},
		UV:       UV{U: pos.X(), V: pos.Z()},
	}
}

// BoundingBox returns the unbounded sentinel box.
func (Plane) BoundingBox() algebra.BBox {
	return algebra.InfiniteBBox()
}
