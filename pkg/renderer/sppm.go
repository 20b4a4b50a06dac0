package renderer

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/lights"
	"github.com/df07/go-sppm/pkg/photonmap"
	"github.com/df07/go-sppm/pkg/scene"
	"pgregory.net/rand"
)

// tracer runs the photon and radiance passes of one worker. Its photon map
// is replaced for every iteration.
type tracer struct {
	scene   *scene.Scene
	config  Config
	random  *rand.Rand
	photons *photonmap.Map
	scratch []photonmap.Entry
	stats   *WorkerStats
}

func newTracer(s *scene.Scene, config Config, random *rand.Rand, stats *WorkerStats) *tracer {
	return &tracer{scene: s, config: config, random: random, stats: stats}
}

// iterate runs one full iteration and accumulates it into buf
func (t *tracer) iterate(buf *Buffer, radius float64) {
	t.photons = photonmap.New()
	t.photonPass()
	t.radiancePass(buf, radius)
	t.photons = nil
}

// photonPass emits PhotonPerIter photons and stores them in the photon map
func (t *tracer) photonPass() {
	n := t.config.PhotonPerIter
	for i := 0; i < n; i++ {
		photon, ok := lights.SampleLightEmission(t.scene.Lights, n, t.random)
		if !ok {
			return
		}
		t.stats.PhotonsEmitted++
		t.tracePhoton(photon)
	}
}

func (t *tracer) tracePhoton(photon lights.Photon) {
	for bounce := 0; bounce < t.config.BounceLimit; bounce++ {
		if photon.Flux.MaxComponent() <= core.Eps {
			return
		}

		hit, ok := t.scene.Intersect(photon.Ray)
		if !ok {
			return
		}

		// At most one deposit in the medium, which ends the path
		if s := core.SampleFreePath(t.config.MeanDist, t.random); s < hit.Dist {
			t.photons.Add(photon.Ray.At(s), photon)
			t.stats.VolumePhotons++
			return
		}

		at := photon.Ray.At(hit.Dist)
		if hit.Material.IsLambertian() {
			stored := photon
			stored.Flux = photon.Flux.MultiplyVec(hit.Material.LambertianRatio())
			t.photons.Add(at, stored)
			t.stats.SurfacePhotons++
		}

		next := hit.Material.SamplePhoton(at, photon.Ray.Direction, hit.Normal, t.random)
		next.Flux = next.Flux.MultiplyVec(photon.Flux)
		photon = next

		// Russian roulette without compensation
		if t.random.Float64() >= photon.Flux.Mean() {
			return
		}
	}
}

// radiancePass traces Supersampling eye paths through every pixel
func (t *tracer) radiancePass(buf *Buffer, radius float64) {
	camera := t.scene.Camera
	samples := t.config.Supersampling
	for x := 0; x < buf.Width; x++ {
		for y := 0; y < buf.Height; y++ {
			var color core.Vec3
			for s := 0; s < samples; s++ {
				color = color.Add(t.traceEye(camera.GenerateRay(x, y, t.random), radius))
			}
			t.stats.EyePaths += samples
			buf.Add(x, y, color.Multiply(1/float64(samples)))
		}
	}
}

// traceEye follows an eye path and gathers photons at every vertex. Gathered
// radiance is not weighted by the path throughput.
func (t *tracer) traceEye(ray core.Ray, radius float64) core.Vec3 {
	throughput := core.Splat(1)
	var color core.Vec3

	for bounce := 0; bounce < t.config.BounceLimit; bounce++ {
		hit, ok := t.scene.Intersect(ray)
		if !ok {
			break
		}

		if t.config.MeanDist > 0 {
			color = color.Add(t.volumeEstimate(ray, hit.Dist, radius))
		}

		at := ray.At(hit.Dist)
		if hit.Material.IsLambertian() {
			color = color.Add(t.surfaceEstimate(at, ray.Direction, hit.Normal, radius))
		}

		reflection := hit.Material.SampleVision(at, ray.Direction, hit.Normal, t.random)
		throughput = throughput.MultiplyVec(reflection.Throughput)
		ray = reflection.Out

		if t.random.Float64() >= throughput.MaxComponent() {
			color = color.MultiplyVec(throughput.Add(core.Splat(1)))
			break
		}
	}
	return color
}

// surfaceEstimate is the cone-filtered photon density on a surface
func (t *tracer) surfaceEstimate(at, dir, normal core.Vec3, radius float64) core.Vec3 {
	t.scratch = t.photons.AppendWithin(t.scratch[:0], at, radius*radius*radius)
	if len(t.scratch) == 0 {
		return core.Vec3{}
	}

	k := t.config.K
	cos := math.Abs(dir.Dot(normal))
	var flux core.Vec3
	for _, e := range t.scratch {
		w := 1 - math.Sqrt(e.DistSq)/(k*radius)
		if w <= core.Eps {
			continue
		}
		flux = flux.Add(e.Photon.Flux.Multiply(w * cos))
	}
	return flux.Multiply(1 / ((1 - 2*k/3) * math.Pi * radius * radius))
}

// volumeEstimate samples up to VolumeSteps points along the first dist units
// of ray and sums the photon density around each
func (t *tracer) volumeEstimate(ray core.Ray, dist, radius float64) core.Vec3 {
	k := t.config.K
	vr := radius * t.config.VolumetricRadiusRatio
	norm := 1 / ((1 - 3*k/4) * math.Pi * vr * vr * vr)

	var color core.Vec3
	s := 0.0
	for step := 0; step < t.config.VolumeSteps; step++ {
		s += core.SampleFreePath(t.config.MeanDist, t.random)
		if s >= dist {
			break
		}

		t.scratch = t.photons.AppendWithin(t.scratch[:0], ray.At(s), vr*vr*vr)
		var flux core.Vec3
		for _, e := range t.scratch {
			w := 1 - math.Sqrt(e.DistSq)/(k*vr)
			if w <= core.Eps {
				continue
			}
			flux = flux.Add(e.Photon.Flux.Multiply(w))
		}
		color = color.Add(flux.Multiply(norm))
	}
	return color
}
