package octree

import (
	"math"

	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/object"
)

// node is an octree node. A nil children[0] means the node is a leaf;
// once subdivided, all eight children are populated at once and the node
// is internal from then on.
type node struct {
	bbox     algebra.BBox
	children [8]*node
	objects  []*object.Object
	depth    int
}

func newLeaf(bbox algebra.BBox, depth int) *node {
	return &node{bbox: bbox, depth: depth}
}

func (n *node) isLeaf() bool {
	return n.children[0] == nil
}

// insert implements the construction procedure: grow the node's loose
// bbox, then either accept the object as a leaf, subdivide, or route it to
// the single child that loosely contains it (falling back to this node's
// own list when no child does — a straddler).
func (n *node) insert(obj *object.Object, cfg Config) {
	n.bbox = n.bbox.Union(obj.BoundingBox())

	if n.isLeaf() {
		if len(n.objects) < cfg.MaxObjects || n.depth >= cfg.MaxDepth {
			n.objects = append(n.objects, obj)
			return
		}
		n.subdivide(cfg)
	}

	n.insertIntoChildOrSelf(obj, cfg)
}

func (n *node) subdivide(cfg Config) {
	center := n.bbox.Center()
	for i := 0; i < 8; i++ {
		n.children[i] = newLeaf(n.bbox.Subdivide(i, center), n.depth+1)
	}
	pending := n.objects
	n.objects = nil
	for _, o := range pending {
		n.insertIntoChildOrSelf(o, cfg)
	}
}

// insertIntoChildOrSelf routes obj into the first child whose loosened
// bbox contains it, ties broken by lowest index; an object contained by no
// child becomes a straddler on n's own list.
func (n *node) insertIntoChildOrSelf(obj *object.Object, cfg Config) {
	objBBox := obj.BoundingBox()
	for _, child := range n.children {
		if child.bbox.ExpandByFactor(cfg.LooseFactor).Contains(objBBox) {
			child.insert(obj, cfg)
			return
		}
	}
	n.objects = append(n.objects, obj)
}

// closestIntersection returns the nearest hit within (0, max] under this
// node, checking the node's own loose bbox first (a conservative test:
// missing it proves no descendant can be hit within range) and then its
// own objects before narrowing into children. Child visitation order does
// not affect correctness.
func (n *node) closestIntersection(r algebra.Ray, max float64) (Intersection, bool) {
	if !n.bbox.IntersectsRay(r, max) {
		return Intersection{}, false
	}

	best := Intersection{Distance: math.Inf(1)}
	found := false
	for _, o := range n.objects {
		if d, hit := o.Distance(r); hit && d <= max && d < best.Distance {
			best = Intersection{Distance: d, Object: o}
			found = true
		}
	}

	limit := max
	if found {
		limit = best.Distance
	}
	if n.isLeaf() {
		return best, found
	}
	for _, child := range n.children {
		if child == nil {
			continue
		}
		if ci, ok := child.closestIntersection(r, limit); ok {
			best = ci
			found = true
			limit = ci.Distance
		}
	}
	return best, found
}

// anyIntersects short-circuits as soon as any object or descendant
// reports a hit within (0, max].
func (n *node) anyIntersects(r algebra.Ray, max float64) bool {
	if !n.bbox.IntersectsRay(r, max) {
		return false
	}
	for _, o := range n.objects {
		if d, hit := o.Distance(r); hit && d <= max {
			return true
		}
	}
	for _, child := range n.children {
		if child == nil {
			continue
		}
		if child.anyIntersects(r, max) {
			return true
		}
	}
	return false
}
