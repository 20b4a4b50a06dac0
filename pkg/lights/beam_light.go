package lights

import (
	"github.com/df07/go-sppm/pkg/core"
	"pgregory.net/rand"
)

// BeamLight emits parallel photons through a disk
type BeamLight struct {
	Origin     core.Vec3 // Center of the emitting disk
	Radius     float64
	Dir        core.Vec3 // Unit emission direction, also the disk normal
	Horizontal core.Vec3 // Unit vector in the disk plane
	TotalFlux  float64
	Color      core.Vec3
}

// NewBeamLight creates a beam light. reference is any vector not parallel to
// dir; it fixes the disk's in-plane basis.
func NewBeamLight(origin core.Vec3, radius float64, dir, reference core.Vec3, totalFlux float64, color core.Vec3) *BeamLight {
	dir = dir.Normalize()
	return &BeamLight{
		Origin:     origin,
		Radius:     radius,
		Dir:        dir,
		Horizontal: dir.Cross(reference).Normalize(),
		TotalFlux:  totalFlux,
		Color:      color,
	}
}

// EmitPhoton samples a uniform point on the disk and emits along Dir
func (l *BeamLight) EmitPhoton(n int, random *rand.Rand) Photon {
	offset := core.SampleDisk(l.Horizontal, l.Dir, l.Radius, random)
	return Photon{
		Ray:  core.NewRay(l.Origin.Add(offset), l.Dir),
		Flux: l.Color.Multiply(l.TotalFlux / float64(n)),
	}
}
