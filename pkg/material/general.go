package material

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/lights"
	"pgregory.net/rand"
)

// General mixes a diffuse part with mirror reflection and refraction.
// Ratios need not sum to one.
type General struct {
	DiffusionRatio       float64   // Weight of the diffuse part
	PureReflectionRatio  float64   // Weight of mirror reflection
	RefractionRatio      float64   // Weight of refraction
	RefractionThroughput core.Vec3 // Tint of the specular parts
	DiffusionThroughput  core.Vec3 // Diffuse albedo
	GlossyStddev         float64   // Gaussian jitter of reflected directions, 0 for a perfect mirror

	specularRatio float64 // PureReflectionRatio + RefractionRatio
	nratio        float64 // n1 / n2
	r0            float64 // Schlick reflectance at normal incidence
}

// NewGeneral creates a new general material. Refraction assumes the stored
// geometry normal points into the n2 side.
func NewGeneral(diffusion, pureReflection, refraction float64, refractionThroughput, diffusionThroughput core.Vec3, n1, n2, glossyStddev float64) *General {
	return &General{
		DiffusionRatio:       diffusion,
		PureReflectionRatio:  pureReflection,
		RefractionRatio:      refraction,
		RefractionThroughput: refractionThroughput,
		DiffusionThroughput:  diffusionThroughput,
		GlossyStddev:         glossyStddev,
		specularRatio:        pureReflection + refraction,
		nratio:               n1 / n2,
		r0:                   math.Pow((n1-n2)/(n1+n2), 2),
	}
}

// R0 returns the Schlick reflectance at normal incidence, ((n1-n2)/(n1+n2))².
// Sampling does not apply it.
func (g *General) R0() float64 {
	return g.r0
}

// IsLambertian returns true if the diffuse part is not negligible
func (g *General) IsLambertian() bool {
	return g.DiffusionRatio > core.Eps
}

// LambertianRatio returns the diffuse albedo scaled by the diffuse weight
func (g *General) LambertianRatio() core.Vec3 {
	return g.DiffusionThroughput.Multiply(g.DiffusionRatio)
}

// SampleVision picks mirror reflection with probability PureReflectionRatio / s,
// refraction otherwise. Fresnel reflectance is not applied.
func (g *General) SampleVision(at, inc, norm core.Vec3, random *rand.Rand) Reflection {
	if g.specularRatio < core.Eps {
		return Reflection{Out: core.NewRay(at, inc.Negate())}
	}

	if random.Float64() < g.PureReflectionRatio/g.specularRatio {
		return g.reflect(at, inc, norm, random)
	}
	return g.refract(at, inc, norm, random)
}

// SamplePhoton is SampleVision packaged as a photon
func (g *General) SamplePhoton(at, inc, norm core.Vec3, random *rand.Rand) lights.Photon {
	r := g.SampleVision(at, inc, norm, random)
	return lights.Photon{Ray: r.Out, Flux: r.Throughput}
}

func (g *General) throughput() core.Vec3 {
	return g.RefractionThroughput.Multiply(g.specularRatio)
}

func (g *General) reflect(at, inc, norm core.Vec3, random *rand.Rand) Reflection {
	out := inc.Subtract(norm.Multiply(2 * inc.Dot(norm)))
	out = core.JitterTangent(out.Normalize(), g.GlossyStddev, random)

	return Reflection{
		Out:        core.NewRay(at, out),
		Throughput: g.throughput(),
	}
}

func (g *General) refract(at, inc, norm core.Vec3, random *rand.Rand) Reflection {
	thetaI := inc.Angle(norm.Negate())
	axis := inc.Cross(norm)

	var out core.Vec3
	if thetaI < math.Pi/2 {
		// Leaving: the ray travels along -norm
		sinT := math.Sin(thetaI) / g.nratio
		if sinT > 1 {
			return g.reflect(at, inc, norm, random)
		}
		out = core.RotateAround(norm.Negate(), axis, math.Asin(sinT))
	} else {
		// Entering: the ray travels along norm
		sinT := math.Sin(thetaI) * g.nratio
		if sinT > 1 {
			return g.reflect(at, inc, norm, random)
		}
		out = core.RotateAround(norm, axis, -math.Asin(sinT))
	}

	return Reflection{
		Out:        core.NewRay(at, out),
		Throughput: g.throughput(),
	}
}
