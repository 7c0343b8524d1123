// Package algebra provides the vector, point, matrix, ray and bounding-box
// primitives shared by every layer of the trace core.
package algebra

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a displacement in 3-space. Adding two Vec3 gives a Vec3; a Vec3
// added to a Point3 gives a Point3.
type Vec3 struct {
	mgl64.Vec3
}

// NewVec3 builds a vector from components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{mgl64.Vec3{x, y, z}}
}

// X, Y, Z return the components.
func (v Vec3) X() float64 { return v.Vec3[0] }
func (v Vec3) Y() float64 { return v.Vec3[1] }
func (v Vec3) Z() float64 { return v.Vec3[2] }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.Vec3.Add(w.Vec3)} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.Vec3.Sub(w.Vec3)} }

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.Vec3.Mul(s)} }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.Vec3.Dot(w.Vec3) }

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 { return Vec3{v.Vec3.Cross(w.Vec3)} }

// Magnitude returns |v|.
func (v Vec3) Magnitude() float64 { return v.Vec3.Len() }

// MagnitudeSquared returns |v|^2, avoiding the square root.
func (v Vec3) MagnitudeSquared() float64 { return v.Dot(v) }

// Normalize returns a UnitVec3 in the direction of v. The zero vector
// normalizes to the +Z axis rather than producing NaNs.
func (v Vec3) Normalize() UnitVec3 {
	m := v.Magnitude()
	if m < 1e-12 {
		return UnitVec3{NewVec3(0, 0, 1)}
	}
	return UnitVec3{v.Scale(1 / m)}
}

// Negate returns -v.
func (v Vec3) Negate() Vec3 { return Vec3{v.Vec3.Mul(-1)} }

// Abs returns the componentwise absolute value of v.
func (v Vec3) Abs() Vec3 {
	return NewVec3(math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z()))
}

// Min returns the componentwise minimum of v and w.
func (v Vec3) Min(w Vec3) Vec3 {
	return NewVec3(math.Min(v.X(), w.X()), math.Min(v.Y(), w.Y()), math.Min(v.Z(), w.Z()))
}

// Max returns the componentwise maximum of v and w.
func (v Vec3) Max(w Vec3) Vec3 {
	return NewVec3(math.Max(v.X(), w.X()), math.Max(v.Y(), w.Y()), math.Max(v.Z(), w.Z()))
}

// Component returns the i-th component (0=x, 1=y, 2=z).
func (v Vec3) Component(i int) float64 { return v.Vec3[i] }

// ApproxEqual reports whether v and w agree within a small epsilon.
func (v Vec3) ApproxEqual(w Vec3) bool {
	return v.Sub(w).Magnitude() < 1e-9
}

// Point3 is a location in 3-space. Subtracting two points gives a Vec3.
type Point3 struct {
	Vec3
}

// NewPoint3 builds a point from components.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{NewVec3(x, y, z)}
}

// Add returns the point translated by v.
func (p Point3) Add(v Vec3) Point3 { return Point3{p.Vec3.Add(v)} }

// Sub returns the vector from q to p.
func (p Point3) Sub(q Point3) Vec3 { return p.Vec3.Sub(q.Vec3) }

// AsVec3 reinterprets the point as a displacement from the origin. Used
// where geometry formulas treat a local-space position as a vector (e.g.
// sphere normals).
func (p Point3) AsVec3() Vec3 { return p.Vec3 }

// UnitVec3 is a Vec3 known to have unit magnitude. The zero value is not a
// valid UnitVec3; construct one with Vec3.Normalize.
type UnitVec3 struct {
	Vec3
}

// Negate returns the opposite unit vector.
func (u UnitVec3) Negate() UnitVec3 { return UnitVec3{u.Vec3.Negate()} }

// Reflect returns the reflection of incoming direction d about unit normal
// n: d - 2(d.n)n. Both d and n are expected to be unit vectors; the result
// is unit length whenever they are.
func Reflect(d, n UnitVec3) UnitVec3 {
	return UnitVec3{d.Vec3.Sub(n.Vec3.Scale(2 * d.Dot(n.Vec3)))}
}
