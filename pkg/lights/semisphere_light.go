package lights

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
	"pgregory.net/rand"
)

// SemisphereLight is a point light emitting over the hemisphere around Towards
type SemisphereLight struct {
	At        core.Vec3 // Emission point
	Color     core.Vec3 // Spectral weight of the flux
	TotalFlux float64   // Flux shared by all photons of one pass
	Towards   core.Vec3 // Hemisphere axis
}

// NewSemisphereLight creates a new semisphere light
func NewSemisphereLight(at, color core.Vec3, totalFlux float64, towards core.Vec3) *SemisphereLight {
	return &SemisphereLight{At: at, Color: color, TotalFlux: totalFlux, Towards: towards}
}

// EmitPhoton samples a direction on the hemisphere. Directions come from a
// normalized cube sample, which favors the cube diagonals.
func (l *SemisphereLight) EmitPhoton(n int, random *rand.Rand) Photon {
	dir := core.SampleCubeDirection(random)
	if dir.Angle(l.Towards) > math.Pi/2 {
		dir = dir.Negate()
	}

	return Photon{
		Ray:  core.NewRay(l.At, dir),
		Flux: l.Color.Multiply(l.TotalFlux / float64(n)),
	}
}
