package lights

import (
	"github.com/df07/go-sppm/pkg/core"
	"pgregory.net/rand"
)

// Photon is a ray carrying flux. When returned by a material it carries the
// throughput multiplier to apply to the incoming photon's flux instead.
type Photon struct {
	Ray  core.Ray
	Flux core.Vec3
}

// Light emits photons for the photon pass
type Light interface {
	// EmitPhoton samples one photon. n is the number of photons planned for the
	// current pass, so that n photons together carry the light's total flux.
	EmitPhoton(n int, random *rand.Rand) Photon
}
