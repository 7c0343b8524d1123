// Package octree implements the loose octree spatial acceleration
// structure: it owns finite objects, reducing ray/object tests from linear
// to near-logarithmic; infinite objects (planes) are held on a sibling
// list and tested unconditionally on every query.
package octree

import (
	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/object"
)

// Config tunes the tree's construction.
type Config struct {
	MaxObjects int     // objects per leaf before it subdivides
	MaxDepth   int     // subdivision stops here regardless of occupancy
	LooseFactor float64 // > 1; how far a child's test box grows beyond its octant
}

// DefaultConfig is a reasonable balance for scenes of a few thousand
// objects.
var DefaultConfig = Config{MaxObjects: 8, MaxDepth: 16, LooseFactor: 1.5}

// Intersection is the result of a successful query: the nearest distance
// and the object hit there.
type Intersection struct {
	Distance float64
	Object   *object.Object
}

// Octree combines the finite-object tree with the list of objects whose
// bounding box is infinite (planes), which the tree cannot bound and so
// must test on every query.
type Octree struct {
	root    *node
	outside []*object.Object
	config  Config
}

// Build partitions objects into finite and infinite sets, unions the
// finite set's bounding boxes into the root, and inserts each finite
// object via the loose-containment procedure.
func Build(objects []*object.Object, config Config) *Octree {
	finite := make([]*object.Object, 0, len(objects))
	outside := make([]*object.Object, 0)
	rootBBox := algebra.EmptyBBox()
	for _, o := range objects {
		if o.BoundingBox().IsInfinite() {
			outside = append(outside, o)
			continue
		}
		finite = append(finite, o)
		rootBBox = rootBBox.Union(o.BoundingBox())
	}

	root := newLeaf(rootBBox, 0)
	for _, o := range finite {
		root.insert(o, config)
	}

	return &Octree{root: root, outside: outside, config: config}
}

// ClosestIntersection returns the nearest object hit within (0, max], or
// false if none. The root result and the infinite-object list are
// combined so planes always participate.
func (t *Octree) ClosestIntersection(r algebra.Ray, max float64) (Intersection, bool) {
	best, ok := t.root.closestIntersection(r, max)
	for _, o := range t.outside {
		limit := max
		if ok {
			limit = best.Distance
		}
		if d, hit := o.Distance(r); hit && d <= limit {
			best = Intersection{Distance: d, Object: o}
			ok = true
		}
	}
	return best, ok
}

// AnyIntersects reports whether any object (finite or infinite) is hit
// within (0, max].
func (t *Octree) AnyIntersects(r algebra.Ray, max float64) bool {
	if t.root.anyIntersects(r, max) {
		return true
	}
	for _, o := range t.outside {
		if d, hit := o.Distance(r); hit && d <= max {
			return true
		}
	}
	return false
}
