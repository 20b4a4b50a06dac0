package geometry

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner core.Vec3 // One corner of the quad
	U      core.Vec3 // First edge vector
	V      core.Vec3 // Second edge vector
	Normal core.Vec3 // normalize(U × V)
	D      float64   // Plane equation constant: normal · p = D
	W      core.Vec3 // Cached scaled normal for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Normal: normal,
		D:      normal.Dot(corner),
		W:      normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Intersect tests the ray against the quad's plane and then its edges
func (q *Quad) Intersect(ray core.Ray, upper float64) (GeometryIntersect, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Parallel to the plane
	if math.Abs(denominator) < core.Eps {
		return GeometryIntersect{}, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < core.Eps || t > upper {
		return GeometryIntersect{}, false
	}

	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return GeometryIntersect{}, false
	}

	return GeometryIntersect{Normal: q.Normal, Dist: t}, true
}

// BoundingBox returns the bounding box of the four corners
func (q *Quad) BoundingBox() core.BoundingBox {
	return core.NewBoundingBoxFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
}
