package scene

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/geometry"
	"github.com/df07/go-sppm/pkg/lights"
)

// Scene contains all the elements needed for rendering. It is read-only
// once built and shared by every render worker.
type Scene struct {
	Objects *ObjectGroup
	Lights  []lights.Light
	Camera  *geometry.Camera
}

// Params carries the render settings a scene's camera depends on
type Params struct {
	Width      int
	Height     int
	LensRadius float64
	Depth      float64
}

// NewScene assembles a scene
func NewScene(camera *geometry.Camera, ls []lights.Light, objects ...Object) *Scene {
	return &Scene{
		Objects: NewObjectGroup(objects...),
		Lights:  ls,
		Camera:  camera,
	}
}

// Intersect returns the closest hit along ray
func (s *Scene) Intersect(ray core.Ray) (Intersect, bool) {
	return s.Objects.Intersect(ray, math.Inf(1))
}

// camera builds a camera for the given pose and render params
func (p Params) camera(origin, direction core.Vec3, vfov float64) *geometry.Camera {
	return geometry.NewCamera(geometry.CameraConfig{
		Origin:     origin,
		Direction:  direction,
		Up:         core.NewVec3(0, 1, 0),
		Width:      p.Width,
		Height:     p.Height,
		VFov:       vfov,
		LensRadius: p.LensRadius,
		Depth:      p.Depth,
	})
}
