package scene

import (
	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/geometry"
	"github.com/df07/go-sppm/pkg/material"
)

// Intersect is a geometry hit tagged with the material of the object hit
type Intersect struct {
	Normal   core.Vec3
	Dist     float64
	Material material.Material
}

// Object is anything in a scene that can be hit
type Object interface {
	Intersect(ray core.Ray, upper float64) (Intersect, bool)
	BoundingBox() core.BoundingBox
}

// GeometryObject pairs a geometry with the material covering it
type GeometryObject struct {
	Geometry geometry.Geometry
	Material material.Material
}

// NewGeometryObject creates a new geometry object
func NewGeometryObject(g geometry.Geometry, m material.Material) *GeometryObject {
	return &GeometryObject{Geometry: g, Material: m}
}

// Intersect implements Object
func (o *GeometryObject) Intersect(ray core.Ray, upper float64) (Intersect, bool) {
	gi, ok := o.Geometry.Intersect(ray, upper)
	if !ok {
		return Intersect{}, false
	}
	return Intersect{Normal: gi.Normal, Dist: gi.Dist, Material: o.Material}, true
}

// BoundingBox implements Object
func (o *GeometryObject) BoundingBox() core.BoundingBox {
	return o.Geometry.BoundingBox()
}

// ObjectGroup finds the closest hit among its objects, skipping any whose
// cached bounding box the ray misses
type ObjectGroup struct {
	objects []Object
	boxes   []core.BoundingBox
}

// NewObjectGroup creates a group over the given objects
func NewObjectGroup(objects ...Object) *ObjectGroup {
	g := &ObjectGroup{objects: objects, boxes: make([]core.BoundingBox, len(objects))}
	for i, o := range objects {
		g.boxes[i] = o.BoundingBox()
	}
	return g
}

// Len returns the number of objects
func (g *ObjectGroup) Len() int {
	return len(g.objects)
}

// Intersect returns the closest hit with Dist ≤ upper. Equal distances go
// to the object added first.
func (g *ObjectGroup) Intersect(ray core.Ray, upper float64) (Intersect, bool) {
	var closest Intersect
	hit := false
	for i, o := range g.objects {
		if !g.boxes[i].Hit(ray, upper) {
			continue
		}
		if in, ok := o.Intersect(ray, upper); ok && (!hit || in.Dist < upper) {
			upper = in.Dist
			closest = in
			hit = true
		}
	}
	return closest, hit
}

// BoundingBox merges the object boxes; an empty group is unbounded
func (g *ObjectGroup) BoundingBox() core.BoundingBox {
	if len(g.boxes) == 0 {
		return core.Unbounded()
	}
	bbox := g.boxes[0]
	for _, b := range g.boxes[1:] {
		bbox = bbox.Merge(b)
	}
	return bbox
}
