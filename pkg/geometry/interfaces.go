package geometry

import "github.com/df07/go-sppm/pkg/core"

// GeometryIntersect describes where a ray meets a surface
type GeometryIntersect struct {
	Normal core.Vec3 // Unit surface normal as stored by the geometry
	Dist   float64   // Ray parameter of the hit, always > core.Eps
}

// Geometry is anything a ray can be intersected with and bounded by a box
type Geometry interface {
	// Intersect returns the nearest hit with Dist in (Eps, upper]
	Intersect(ray core.Ray, upper float64) (GeometryIntersect, bool)
	BoundingBox() core.BoundingBox
}
