package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rand"
)

// RotateAround rotates v by angle radians around axis (right-handed).
// A degenerate axis leaves v unchanged.
func RotateAround(v, axis Vec3, angle float64) Vec3 {
	if axis.Length() < Eps {
		return v
	}
	q := mgl64.QuatRotate(angle, axis.Normalize().mgl())
	return fromMgl(q.Rotate(v.mgl()))
}

// SampleDisk returns a uniformly distributed point on the disk of the given radius
// centered at the origin, lying in the plane with the given normal. basis must be a
// unit vector in that plane.
func SampleDisk(basis, normal Vec3, radius float64, random *rand.Rand) Vec3 {
	r := math.Sqrt(random.Float64()) * radius
	theta := 2 * math.Pi * random.Float64()
	return RotateAround(basis.Multiply(r), normal, theta)
}

// SampleCubeDirection normalizes a point drawn uniformly from [-1,1]³.
// The result is not uniform on the sphere: directions toward the cube corners
// are more likely.
func SampleCubeDirection(random *rand.Rand) Vec3 {
	for {
		d := NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		if d.LengthSquared() > Eps {
			return d.Normalize()
		}
	}
}

// JitterTangent perturbs the unit direction dir by a Gaussian offset of standard
// deviation sigma restricted to the plane perpendicular to dir, then renormalizes.
func JitterTangent(dir Vec3, sigma float64, random *rand.Rand) Vec3 {
	if sigma <= 0 {
		return dir
	}
	g := NewVec3(random.NormFloat64(), random.NormFloat64(), random.NormFloat64()).Multiply(sigma)
	tangent := g.Subtract(dir.Multiply(g.Dot(dir)))
	out := dir.Add(tangent).Normalize()
	if out.LengthSquared() == 0 {
		return dir
	}
	return out
}

// SampleFreePath draws a distance from the exponential distribution with the given mean.
// A non-positive mean means there is no medium and the path is infinite.
func SampleFreePath(meanDist float64, random *rand.Rand) float64 {
	if meanDist <= 0 {
		return math.Inf(1)
	}
	return random.ExpFloat64() * meanDist
}
