package geometry

import (
	"math"

	"github.com/rustray/raytrace/internal/algebra"
)

// Cube is the axis-aligned box [-0.5, 0.5]^3 in local space.
type Cube struct{}

const cubeHalfExtent = 0.5

// Distance reuses the slab algorithm to find [tMin, tMax]; the cube is
// missed when tMax <= tMin. The nearest positive root is tMin, unless the
// ray origin is inside the box, in which case tMin is negative and there is
// no positive entry parameter to report, which is treated as a miss for
// every ray (the exit parameter tMax is not reported).
func (Cube) Distance(r algebra.Ray) (float64, bool) {
	tMin, tMax, ok := cubeSlab(r)
	if !ok || tMax <= tMin {
		return 0, false
	}
	if tMin > 0 {
		return tMin, true
	}
	return 0, false
}

func cubeSlab(r algebra.Ray) (tMin, tMax float64, ok bool) {
	tMin = math.Inf(-1)
	tMax = math.Inf(1)
	for i := 0; i < 3; i++ {
		invD := 1 / r.Direction.Component(i)
		t0 := (-cubeHalfExtent - r.Origin.Component(i)) * invD
		t1 := (cubeHalfExtent - r.Origin.Component(i)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}

// Hit returns the position, the canonical basis normal on the axis of
// maximum |position| (carrying that component's sign), and a constant
// placeholder UV — texturing a cube requires per-face UVs, which this
// canonical geometry does not derive (see design notes on cube UVs).
func (Cube) Hit(r algebra.Ray, t float64) HitRecord {
	pos := r.At(t)
	ax, ay, az := math.Abs(pos.X()), math.Abs(pos.Y()), math.Abs(pos.Z())
	var normal algebra.Vec3
	switch {
	case ax >= ay && ax >= az:
		normal = algebra.NewVec3(math.Copysign(1, pos.X()), 0, 0)
	case ay >= ax && ay >= az:
		normal = algebra.NewVec3(0, math.Copysign(1, pos.Y()), 0)
	default:
		normal = algebra.NewVec3(0, 0, math.Copysign(1, pos.Z()))
	}
	return HitRecord{Position: pos, Normal: algebra.UnitVec3{Vec3: normal}, UV: UV{U: 0, V: 0}}
}

// BoundingBox returns [-0.5,0.5]^3.
func (Cube) BoundingBox() algebra.BBox {
	return algebra.BBox{
		Min: algebra.NewPoint3(-cubeHalfExtent, -cubeHalfExtent, -cubeHalfExtent),
		Max: algebra.NewPoint3(cubeHalfExtent, cubeHalfExtent, cubeHalfExtent),
	}
}
