package geometry

import (
	"math"

	"github.com/rustray/raytrace/internal/algebra"
	mathutil "github.com/rustray/raytrace/pkg/math"
)

// Sphere is the unit sphere centered at the local-space origin.
type Sphere struct{}

// Distance solves |o + t*d|^2 = 1 for the smallest strictly positive root,
// using the numerically stable tca/thc form rather than the naive quadratic
// formula.
func (Sphere) Distance(r algebra.Ray) (float64, bool) {
	o := r.Origin.AsVec3()
	d := r.Direction.Vec3
	dLenSq := d.MagnitudeSquared()
	tca := -o.Dot(d) / dLenSq
	dSq := o.MagnitudeSquared() - tca*tca*dLenSq
	if dSq > 1 {
		return 0, false
	}
	thc := math.Sqrt((1 - dSq) / dLenSq)
	t0 := tca - thc
	t1 := tca + thc
	if t0 > 0 {
		return t0, true
	}
	if t1 > 0 {
		return t1, true
	}
	return 0, false
}

// Hit returns the position, outward normal (the position itself, since the
// sphere is centered at the origin with radius 1), and a latitude/longitude
// UV.
func (Sphere) Hit(r algebra.Ray, t float64) HitRecord {
	pos := r.At(t)
	normal := pos.AsVec3().Normalize()
	u := 0.5 + math.Atan2(pos.Z(), pos.X())/(2*math.Pi)
	v := 0.5 - math.Asin(mathutil.Clamp(pos.Y(), -1, 1))/math.Pi
	return HitRecord{Position: pos, Normal: normal, UV: UV{U: u, V: v}}
}

// BoundingBox returns [-1,1]^3.
func (Sphere) BoundingBox() algebra.BBox {
	return algebra.BBox{Min: algebra.NewPoint3(-1, -1, -1), Max: algebra.NewPoint3(1, 1, 1)}
}
