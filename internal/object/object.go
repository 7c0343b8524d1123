// Package object composes a canonical-space Geometry with a Transform and
// a Texture into a placed, textured shape that the tracer queries in world
// space.
package object

import (
	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/geometry"
	"github.com/rustray/raytrace/internal/texture"
	"github.com/rustray/raytrace/internal/transform"
)

// Object is a geometry placed in world space and wrapped in a texture.
// Objects are shared by reference: the authored scene and the octree both
// hold the same handles, so Object is immutable once built.
type Object struct {
	Geometry  geometry.Geometry
	Transform transform.Transform
	Texture   texture.Texture

	bbox algebra.BBox
}

// New builds an Object and precomputes its world-space bounding box.
func New(g geometry.Geometry, t transform.Transform, tex texture.Texture) *Object {
	return &Object{
		Geometry:  g,
		Transform: t,
		Texture:   tex,
		bbox:      worldBBox(g, t),
	}
}

// worldBBox transforms the eight corners of the local bbox and unions
// them; an infinite local bbox propagates infinity regardless of the
// transform applied to it.
func worldBBox(g geometry.Geometry, t transform.Transform) algebra.BBox {
	local := g.BoundingBox()
	if local.IsInfinite() {
		return algebra.InfiniteBBox()
	}
	out := algebra.EmptyBBox()
	for _, corner := range local.Corners() {
		p := t.ToWorldPoint(corner)
		out = out.Union(algebra.BBox{Min: p, Max: p})
	}
	return out
}

// BoundingBox returns the object's world-space bounding box.
func (o *Object) BoundingBox() algebra.BBox {
	return o.bbox
}

// Distance returns the nearest positive world-space ray parameter at which
// the object is hit.
func (o *Object) Distance(world algebra.Ray) (float64, bool) {
	lr := o.Transform.ToLocalRay(world)
	localT, ok := o.Geometry.Distance(lr.Ray)
	if !ok {
		return 0, false
	}
	return lr.ToWorldDistance(localT), true
}

// Hit returns the world-space hit record at world-space parameter t
// (obtained from Distance on the same ray).
func (o *Object) Hit(world algebra.Ray, worldT float64) geometry.HitRecord {
	lr := o.Transform.ToLocalRay(world)
	localT := worldT * lr.Scale
	localHit := o.Geometry.Hit(lr.Ray, localT)
	return geometry.HitRecord{
		Position: o.Transform.ToWorldPoint(localHit.Position),
		Normal:   o.Transform.ToWorldNormal(localHit.Normal),
		UV:       localHit.UV,
	}
}

// SurfaceAt resolves the object's texture at a hit's UV.
func (o *Object) SurfaceAt(hit geometry.HitRecord) texture.Surface {
	return o.Texture.At(hit.UV)
}
