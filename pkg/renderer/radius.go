package renderer

import "math"

// Radius returns the gather radius of iteration i,
// R_i = R0 · ∏_{j<i} √((j+α)/(j+1)), in closed form through the gamma function.
func Radius(r0, alpha float64, i int) float64 {
	if i <= 0 {
		return r0
	}
	lg := func(x float64) float64 {
		v, _ := math.Lgamma(x)
		return v
	}
	return r0 * math.Exp(0.5*(lg(float64(i)+alpha)-lg(alpha)-lg(float64(i)+1)))
}

// radiusSchedule yields successive radii by the running product
type radiusSchedule struct {
	alpha float64
	iter  int
	r     float64
}

// newRadiusSchedule starts a schedule at iteration start
func newRadiusSchedule(r0, alpha float64, start int) *radiusSchedule {
	return &radiusSchedule{alpha: alpha, iter: start, r: Radius(r0, alpha, start)}
}

// next returns the radius of the current iteration and advances
func (s *radiusSchedule) next() (int, float64) {
	iter, r := s.iter, s.r
	s.r *= math.Sqrt((float64(s.iter) + s.alpha) / float64(s.iter+1))
	s.iter++
	return iter, r
}
