package algebra

import "math"

// BBox is an axis-aligned bounding box. The empty box has Min = +Inf and
// Max = -Inf componentwise, so that unioning it with anything yields that
// anything unchanged.
type BBox struct {
	Min, Max Point3
}

// EmptyBBox returns the sentinel empty box.
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		Min: NewPoint3(inf, inf, inf),
		Max: NewPoint3(-inf, -inf, -inf),
	}
}

// InfiniteBBox returns a box that spans all of space on every axis,
// representing an unbounded primitive such as a plane.
func InfiniteBBox() BBox {
	inf := math.Inf(1)
	return BBox{
		Min: NewPoint3(-inf, -inf, -inf),
		Max: NewPoint3(inf, inf, inf),
	}
}

// IsEmpty reports whether b is the empty-box sentinel (Min > Max on any
// axis, which only the empty sentinel produces).
func (b BBox) IsEmpty() bool {
	return b.Min.X() > b.Max.X() || b.Min.Y() > b.Max.Y() || b.Min.Z() > b.Max.Z()
}

// IsInfinite reports whether any component of the box sits at the float
// extreme, i.e. the box cannot be bounded (a plane's bbox).
func (b BBox) IsInfinite() bool {
	return isExtreme(b.Min.X()) || isExtreme(b.Min.Y()) || isExtreme(b.Min.Z()) ||
		isExtreme(b.Max.X()) || isExtreme(b.Max.Y()) || isExtreme(b.Max.Z())
}

func isExtreme(f float64) bool {
	return math.IsInf(f, 0)
}

// Union returns the smallest box containing both b and o. Union is
// idempotent (a.Union(a) == a) and commutative.
func (b BBox) Union(o BBox) BBox {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return BBox{
		Min: b.Min.Vec3.Min(o.Min.Vec3).asPoint(),
		Max: b.Max.Vec3.Max(o.Max.Vec3).asPoint(),
	}
}

func (v Vec3) asPoint() Point3 { return Point3{v} }

// Contains reports whether o lies entirely within b.
func (b BBox) Contains(o BBox) bool {
	if o.IsEmpty() {
		return true
	}
	for i := 0; i < 3; i++ {
		if o.Min.Component(i) < b.Min.Component(i) || o.Max.Component(i) > b.Max.Component(i) {
			return false
		}
	}
	return true
}

// ExpandByFactor scales the box about its center by factor, used by the
// loose octree's containment test.
func (b BBox) ExpandByFactor(factor float64) BBox {
	if b.IsEmpty() || b.IsInfinite() {
		return b
	}
	center := b.Center()
	halfExtent := b.Max.Sub(b.Min).Scale(0.5 * factor)
	return BBox{
		Min: center.Sub(halfExtent).asPoint(),
		Max: center.Add(halfExtent),
	}
}

// Center returns the midpoint of the box.
func (b BBox) Center() Point3 {
	return b.Min.Add(b.Max.Sub(b.Min).Scale(0.5))
}

// Corners returns the eight corners of the box, used when transforming a
// local bbox into world space.
func (b BBox) Corners() [8]Point3 {
	var c [8]Point3
	for i := 0; i < 8; i++ {
		x := b.Min.X()
		if i&1 != 0 {
			x = b.Max.X()
		}
		y := b.Min.Y()
		if i&2 != 0 {
			y = b.Max.Y()
		}
		z := b.Min.Z()
		if i&4 != 0 {
			z = b.Max.Z()
		}
		c[i] = NewPoint3(x, y, z)
	}
	return c
}

// IntersectsRay implements the slab test: for each axis, compute the two
// plane-crossing parameters, swap them if the direction component is
// negative, and narrow [tNear, tFar]. Division by a zero direction
// component yields +/-Inf, which leaves that axis unconstrained — the
// degenerate-slab case where the ray is parallel to a face. Equality at
// the boundary counts as an intersection. The box is reported hit when the
// ray's span inside it, [tNear, tFar], overlaps [0, max].
func (b BBox) IntersectsRay(r Ray, max float64) bool {
	if b.IsEmpty() {
		return false
	}
	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	origin := r.Origin
	dir := r.Direction
	for i := 0; i < 3; i++ {
		invD := 1 / dir.Component(i)
		t0 := (b.Min.Component(i) - origin.Component(i)) * invD
		t1 := (b.Max.Component(i) - origin.Component(i)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tNear {
			tNear = t0
		}
		if t1 < tFar {
			tFar = t1
		}
		if tNear > tFar {
			return false
		}
	}
	return tFar >= 0 && tNear <= max
}

// Subdivide reproduces the octant of the box selected by index (bit 0 = x
// half, bit 1 = y half, bit 2 = z half; 0 selects the half below center, 1
// the half at or above it) about the given center.
func (b BBox) Subdivide(index int, center Point3) BBox {
	lo := b.Min
	hi := b.Max
	minOut := NewPoint3(
		axisBound(index, 0, lo.X(), center.X()),
		axisBound(index, 1, lo.Y(), center.Y()),
		axisBound(index, 2, lo.Z(), center.Z()),
	)
	maxOut := NewPoint3(
		axisBoundHigh(index, 0, hi.X(), center.X()),
		axisBoundHigh(index, 1, hi.Y(), center.Y()),
		axisBoundHigh(index, 2, hi.Z(), center.Z()),
	)
	return BBox{Min: minOut, Max: maxOut}
}

func axisBound(index, bit int, lo, center float64) float64 {
	if index&(1<<uint(bit)) != 0 {
		return center
	}
	return lo
}

func axisBoundHigh(index, bit int, hi, center float64) float64 {
	if index&(1<<uint(bit)) != 0 {
		return hi
	}
	return center
}
