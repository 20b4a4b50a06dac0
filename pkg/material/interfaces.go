package material

import (
	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/lights"
	"pgregory.net/rand"
)

// Reflection is the outcome of sampling a specular bounce
type Reflection struct {
	Out        core.Ray  // Continuation ray starting at the hit point
	Throughput core.Vec3 // Componentwise multiplier for the path
}

// Material describes how light leaves a surface. The norm passed to the
// samplers is the geometry's stored normal, not flipped toward the ray.
type Material interface {
	// IsLambertian reports whether the surface has a diffuse part that
	// stores photons and gathers radiance
	IsLambertian() bool

	// LambertianRatio is the color a photon's flux is scaled by when deposited
	LambertianRatio() core.Vec3

	// SampleVision continues an eye path through the specular part
	SampleVision(at, inc, norm core.Vec3, random *rand.Rand) Reflection

	// SamplePhoton continues a photon path; the returned Flux is a multiplier
	SamplePhoton(at, inc, norm core.Vec3, random *rand.Rand) lights.Photon
}
