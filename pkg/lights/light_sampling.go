package lights

import "pgregory.net/rand"

// SampleLightEmission picks a light uniformly and emits one photon from it.
// The photon flux is not divided by the selection probability.
func SampleLightEmission(lights []Light, n int, random *rand.Rand) (Photon, bool) {
	if len(lights) == 0 {
		return Photon{}, false
	}
	light := lights[random.Intn(len(lights))]
	return light.EmitPhoton(n, random), true
}
