package core

import (
	"math"
	"testing"
)

func TestBoundingBox_MergeLaws(t *testing.T) {
	a := NewBoundingBox(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewBoundingBox(NewVec3(-2, 0.5, 0), NewVec3(0.5, 3, 0.2))
	c := NewBoundingBox(NewVec3(5, -1, -1), NewVec3(6, 0, 4))

	if a.Merge(b) != b.Merge(a) {
		t.Errorf("Merge is not commutative: %v vs %v", a.Merge(b), b.Merge(a))
	}
	if a.Merge(b).Merge(c) != a.Merge(b.Merge(c)) {
		t.Errorf("Merge is not associative")
	}
	if a.Merge(a) != a {
		t.Errorf("Merge is not idempotent: %v", a.Merge(a))
	}
	if Unbounded().Merge(a) != Unbounded() {
		t.Errorf("Merging into the unbounded box should stay unbounded, got %v", Unbounded().Merge(a))
	}
}

func TestBoundingBox_Hit(t *testing.T) {
	box := NewBoundingBox(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		upper    float64
		expected bool
	}{
		{"through center", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), math.Inf(1), true},
		{"miss above", NewRay(NewVec3(-5, 1.5, 0), NewVec3(1, 0.5, 0)), math.Inf(1), false},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), math.Inf(1), true},
		{"cut short", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 3, false},
		{"just reaches", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0, 0)), 4.5, true},
		{"skew miss", NewRay(NewVec3(-5, 0, 0), NewVec3(1, 0.5, 0)), math.Inf(1), false},
		// Axes the ray does not move along are not tested, so the gate stays conservative
		{"flat axis skipped", NewRay(NewVec3(-5, 0, 3), NewVec3(1, 0.1, 0)), math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.upper); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBoundingBox_HitMonotoneInUpper(t *testing.T) {
	box := NewBoundingBox(NewVec3(2, -1, -1), NewVec3(4, 1, 1))
	directions := []Vec3{
		NewVec3(1, 0, 0), NewVec3(1, 0.3, -0.2), NewVec3(1, 1, 0), NewVec3(0, 1, 0),
	}
	uppers := []float64{0.5, 1, 2, 2.5, 3, 5, 10, math.Inf(1)}

	for _, d := range directions {
		ray := NewRay(Vec3{}, d)
		for i, u1 := range uppers {
			if box.Hit(ray, u1) {
				continue
			}
			for _, u2 := range uppers[:i] {
				if box.Hit(ray, u2) {
					t.Errorf("dir %v: miss at upper %v but hit at smaller upper %v", d, u1, u2)
				}
			}
		}
	}
}

func TestBoundingBox_FromPoints(t *testing.T) {
	box := NewBoundingBoxFromPoints(NewVec3(1, 5, -2), NewVec3(-1, 0, 3), NewVec3(0, 2, 0))
	want := NewBoundingBox(NewVec3(-1, 0, -2), NewVec3(1, 5, 3))
	if box != want {
		t.Errorf("Expected %v, got %v", want, box)
	}
	if !box.Contains(box.Center()) {
		t.Errorf("Box should contain its center")
	}
}
