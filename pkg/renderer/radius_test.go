package renderer

import (
	"math"
	"testing"
)

func TestRadius_ClosedFormMatchesProduct(t *testing.T) {
	for _, alpha := range []float64{0.5, 0.7, 0.9, 1} {
		r0 := 5.0
		product := r0
		for i := 0; i <= 10; i++ {
			if got := Radius(r0, alpha, i); math.Abs(got-product) > 1e-12*r0 {
				t.Errorf("alpha=%g i=%d: expected %g, got %g", alpha, i, product, got)
			}
			product *= math.Sqrt((float64(i) + alpha) / float64(i+1))
		}
	}
}

func TestRadius_Shrinks(t *testing.T) {
	prev := Radius(2, 0.7, 0)
	if prev != 2 {
		t.Fatalf("Expected R0 at iteration 0, got %g", prev)
	}
	for i := 1; i < 100; i++ {
		r := Radius(2, 0.7, i)
		if r >= prev {
			t.Fatalf("Radius did not shrink at iteration %d: %g >= %g", i, r, prev)
		}
		prev = r
	}

	// alpha = 1 keeps the radius fixed
	if r := Radius(2, 1, 50); math.Abs(r-2) > 1e-9 {
		t.Errorf("Expected constant radius for alpha=1, got %g", r)
	}
}

func TestRadiusSchedule(t *testing.T) {
	tests := []struct {
		name  string
		start int
	}{
		{"from scratch", 0},
		{"resumed", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRadiusSchedule(5, 0.7, tt.start)
			for i := tt.start; i < tt.start+10; i++ {
				iter, r := s.next()
				if iter != i {
					t.Fatalf("Expected iteration %d, got %d", i, iter)
				}
				if want := Radius(5, 0.7, i); math.Abs(r-want) > 1e-12 {
					t.Errorf("Iteration %d: expected %g, got %g", i, want, r)
				}
			}
		})
	}
}
