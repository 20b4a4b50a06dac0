package geometry

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3        // Cached normal, normalize((v1-v0) × (v2-v0))
	bbox       core.BoundingBox // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2}
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewBoundingBoxFromPoints(v0, v1, v2)
	return t
}

// Normal returns the cached unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// det3 is the determinant of the matrix with columns a, b, c
func det3(a, b, c core.Vec3) float64 {
	return a.Dot(b.Cross(c))
}

// Intersect solves origin + t·dir = v0 - β·e1 - γ·e2 by Cramer's rule
func (t *Triangle) Intersect(ray core.Ray, upper float64) (GeometryIntersect, bool) {
	e1 := t.V0.Subtract(t.V1)
	e2 := t.V0.Subtract(t.V2)
	s := t.V0.Subtract(ray.Origin)

	if s.Length() < core.Eps {
		return GeometryIntersect{}, false
	}

	d := det3(ray.Direction, e1, e2)
	if math.Abs(d) < core.Eps {
		return GeometryIntersect{}, false
	}

	dist := det3(s, e1, e2) / d
	beta := det3(ray.Direction, s, e2) / d
	gamma := det3(ray.Direction, e1, s) / d

	if beta < 0 || gamma < 0 || beta+gamma > 1 {
		return GeometryIntersect{}, false
	}
	if dist < core.Eps || dist > upper {
		return GeometryIntersect{}, false
	}

	return GeometryIntersect{Normal: t.normal, Dist: dist}, true
}

// BoundingBox returns the cached bounding box
func (t *Triangle) BoundingBox() core.BoundingBox {
	return t.bbox
}
