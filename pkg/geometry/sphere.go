package geometry

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Intersect tests the ray against the sphere. The returned normal points from
// the hit point toward the center.
func (s *Sphere) Intersect(ray core.Ray, upper float64) (GeometryIntersect, bool) {
	// Project the center onto the ray and measure the miss distance
	sight := s.Center.Subtract(ray.Origin)
	projected := ray.Direction.Dot(sight)
	distSq := ray.Direction.Multiply(projected).Subtract(sight).LengthSquared()

	tanLenSq := s.Radius*s.Radius - distSq
	if tanLenSq <= core.Eps {
		return GeometryIntersect{}, false
	}

	// Only the near root is used; hits from inside come back negative and are rejected
	length := projected - math.Sqrt(tanLenSq)
	if length < core.Eps || length > upper {
		return GeometryIntersect{}, false
	}

	hitPoint := ray.At(length)
	return GeometryIntersect{
		Normal: s.Center.Subtract(hitPoint).Normalize(),
		Dist:   length,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.BoundingBox {
	radius := core.Splat(s.Radius)
	return core.NewBoundingBox(s.Center.Subtract(radius), s.Center.Add(radius))
}
