package geometry

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
	"pgregory.net/rand"
)

// CameraConfig describes a camera in world space
type CameraConfig struct {
	Origin     core.Vec3 // Eye position
	Direction  core.Vec3 // Viewing direction, need not be normalized
	Up         core.Vec3 // Approximate up vector
	Width      int       // Image width in pixels
	Height     int       // Image height in pixels
	VFov       float64   // Vertical field of view in degrees
	LensRadius float64   // 0 for a pinhole camera
	Depth      float64   // Distance to the plane in focus
}

// Camera turns pixel coordinates into primary rays
type Camera struct {
	origin     core.Vec3
	width      int
	height     int
	fx, fy     float64
	view       core.Basis // [horizontal | -up | dir]
	horizontal core.Vec3
	dir        core.Vec3
	lensRadius float64
	depth      float64
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	dir := config.Direction.Normalize()
	horizontal := dir.Cross(config.Up).Normalize()
	up := horizontal.Cross(dir)

	f := float64(config.Height) / (2 * math.Tan(config.VFov*math.Pi/180/2))

	return &Camera{
		origin:     config.Origin,
		width:      config.Width,
		height:     config.Height,
		fx:         f,
		fy:         f,
		view:       core.NewBasis(horizontal, up.Negate(), dir),
		horizontal: horizontal,
		dir:        dir,
		lensRadius: config.LensRadius,
		depth:      config.Depth,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// GenerateRay returns a jittered ray through pixel (x, y). With a lens radius
// the origin is moved across the lens and the ray still passes through the
// point on the focus plane.
func (c *Camera) GenerateRay(x, y int, random *rand.Rand) core.Ray {
	dx := random.Float64() - 0.5
	dy := random.Float64() - 0.5

	local := core.NewVec3(
		(dx+float64(x)-float64(c.width)/2)/c.fx,
		(dy+float64(y)-float64(c.height)/2)/c.fy,
		1,
	)
	dir := c.view.Apply(local)

	if c.lensRadius <= core.Eps {
		return core.NewRay(c.origin, dir)
	}

	shift := core.SampleDisk(c.horizontal, c.dir, c.lensRadius, random)
	return core.NewRay(c.origin.Add(shift), dir.Multiply(c.depth).Subtract(shift))
}
