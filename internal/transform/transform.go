// Package transform lets each object reason in its own canonical local
// frame while the tracer casts rays in world space.
package transform

import (
	"fmt"
	"math"

	"github.com/rustray/raytrace/internal/algebra"
)

// ErrSingular is returned when a requested transform has a non-invertible
// matrix (most commonly a zero component of the scale).
var ErrSingular = fmt.Errorf("singular transform: matrix is not invertible")

// Transform decomposes a world placement into a Frame and its inverse.
// Forward = T * R * S; Inverse is the algebraic inverse of Forward,
// precomputed once since every object query needs it.
type Transform struct {
	Forward algebra.Frame
	Inverse algebra.Frame
}

// New builds a Transform from a translation, an axis-angle rotation, and a
// (possibly non-uniform) scale. It fails with ErrSingular if the resulting
// matrix cannot be inverted (e.g. any scale component is zero).
func New(translation algebra.Vec3, rotationAxis algebra.Vec3, rotationAngleRadians float64, scale algebra.Vec3) (Transform, error) {
	t := algebra.Translation(translation)
	r := algebra.AxisAngleRotation(rotationAxis, rotationAngleRadians)
	s := algebra.NonUniformScale(scale)
	forward := t.Compose(r).Compose(s)
	if !forward.Invertible() {
		return Transform{}, ErrSingular
	}
	return Transform{Forward: forward, Inverse: forward.Inverse()}, nil
}

// Identity is the transform that leaves world and local space identical.
func Identity() Transform {
	return Transform{Forward: algebra.Identity(), Inverse: algebra.Identity()}
}

// LocalRay is a ray expressed in an object's local space, plus the scalar
// factor needed to convert a local hit parameter back to a world-space
// distance.
type LocalRay struct {
	Ray algebra.Ray
	// Scale is the magnitude of the inverse frame applied to the world
	// ray's (unit) direction. Local hit parameters, computed against
	// Ray's renormalized direction, convert back via worldT = localT / Scale.
	Scale float64
}

// ToLocalRay converts a world-space ray into local space. The inverse
// frame may embed a non-uniform scale, so the raw inverse-transformed
// direction is not unit length in general; ToLocalRay renormalizes it and
// records the magnitude it divided out so t values can be converted back
// with ToWorldDistance.
func (t Transform) ToLocalRay(world algebra.Ray) LocalRay {
	localOrigin := t.Inverse.TransformPoint(world.Origin)
	rawDir := t.Inverse.TransformVector(world.Direction.Vec3)
	scale := rawDir.Magnitude()
	if scale < 1e-12 {
		scale = 1e-12
	}
	return LocalRay{
		Ray:   algebra.Ray{Origin: localOrigin, Direction: rawDir.Normalize()},
		Scale: scale,
	}
}

// ToWorldDistance converts a parameter measured along a LocalRay back to a
// world-space distance.
func (lr LocalRay) ToWorldDistance(localT float64) float64 {
	return localT / lr.Scale
}

// ToWorldPoint converts a local-space position to world space.
func (t Transform) ToWorldPoint(p algebra.Point3) algebra.Point3 {
	return t.Forward.TransformPoint(p)
}

// ToWorldNormal converts a local-space outward normal to world space using
// the inverse-transpose rule, which is required (not just a forward
// transform) whenever the object carries non-uniform scale.
func (t Transform) ToWorldNormal(n algebra.UnitVec3) algebra.UnitVec3 {
	transformed := t.Inverse.Transpose().TransformVector(n.Vec3)
	return transformed.Normalize()
}

// RotationTo computes the minimal rotation axis and angle mapping unit
// vector v1 onto unit vector v2.
func RotationTo(v1, v2 algebra.UnitVec3) (axis algebra.Vec3, angleRadians float64) {
	if v1.ApproxEqual(v2.Vec3) {
		return algebra.NewVec3(0, 1, 0), 0
	}
	if v1.ApproxEqual(v2.Negate().Vec3) {
		return orthogonalAxis(v1), math.Pi
	}
	cross := v2.Cross(v1.Vec3)
	dot := v2.Dot(v1.Vec3)
	clamped := dot
	if clamped > 1 {
		clamped = 1
	}
	if clamped < -1 {
		clamped = -1
	}
	return cross.Normalize().Vec3, math.Acos(clamped)
}

// orthogonalAxis returns a unit axis orthogonal to v: the cross product of
// v with the world axis along which v has its smallest absolute component,
// avoiding a near-parallel pick.
func orthogonalAxis(v algebra.UnitVec3) algebra.Vec3 {
	ax, ay, az := math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())
	switch {
	case ax <= ay && ax <= az:
		return algebra.NewVec3(1, 0, 0).Cross(v.Vec3).Normalize().Vec3
	case ay <= ax && ay <= az:
		return algebra.NewVec3(0, 1, 0).Cross(v.Vec3).Normalize().Vec3
	default:
		return algebra.NewVec3(0, 0, 1).Cross(v.Vec3).Normalize().Vec3
	}
}
