package geometry

import "github.com/df07/go-sppm/pkg/core"

// Group is a geometry made of other geometries. Each member's bounding box is
// cached at construction and used to skip members the ray cannot reach.
type Group struct {
	members []Geometry
	boxes   []core.BoundingBox
	bbox    core.BoundingBox
}

// NewGroup creates a group over the given geometries
func NewGroup(members ...Geometry) *Group {
	g := &Group{
		members: members,
		boxes:   make([]core.BoundingBox, len(members)),
		bbox:    core.Unbounded(),
	}
	for i, m := range members {
		g.boxes[i] = m.BoundingBox()
		if i == 0 {
			g.bbox = g.boxes[i]
		} else {
			g.bbox = g.bbox.Merge(g.boxes[i])
		}
	}
	return g
}

// Len returns the number of members
func (g *Group) Len() int {
	return len(g.members)
}

// Intersect returns the closest member hit, shrinking the search bound as hits are found
func (g *Group) Intersect(ray core.Ray, upper float64) (GeometryIntersect, bool) {
	var closest GeometryIntersect
	hit := false
	for i, m := range g.members {
		if !g.boxes[i].Hit(ray, upper) {
			continue
		}
		// Ties keep the earlier member
		if gi, ok := m.Intersect(ray, upper); ok && (!hit || gi.Dist < upper) {
			upper = gi.Dist
			closest = gi
			hit = true
		}
	}
	return closest, hit
}

// BoundingBox returns the merged member boxes, or an unbounded box for an empty group
func (g *Group) BoundingBox() core.BoundingBox {
	return g.bbox
}
