package core

import (
	"math"
	"testing"

	"pgregory.net/rand"
)

func TestRotateAround(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		axis     Vec3
		angle    float64
		expected Vec3
	}{
		{"no rotation", NewVec3(1, 0, 0), NewVec3(0, 0, 1), 0, NewVec3(1, 0, 0)},
		{"90 degrees around Z", NewVec3(1, 0, 0), NewVec3(0, 0, 1), math.Pi / 2, NewVec3(0, 1, 0)},
		{"90 degrees around Y", NewVec3(1, 0, 0), NewVec3(0, 1, 0), math.Pi / 2, NewVec3(0, 0, -1)},
		{"unnormalized axis", NewVec3(0, 1, 0), NewVec3(5, 0, 0), math.Pi / 2, NewVec3(0, 0, 1)},
		{"degenerate axis", NewVec3(1, 2, 3), Vec3{}, 1.3, NewVec3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateAround(tt.vector, tt.axis, tt.angle)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSampleDisk_StaysInPlaneAndRadius(t *testing.T) {
	random := rand.New(7)
	normal := NewVec3(1, 1, 0).Normalize()
	basis := normal.Cross(NewVec3(0, 0, 1)).Normalize()

	for i := 0; i < 1000; i++ {
		p := SampleDisk(basis, normal, 3, random)
		if math.Abs(p.Dot(normal)) > 1e-9 {
			t.Fatalf("Sample %v leaves the disk plane", p)
		}
		if p.Length() > 3+1e-9 {
			t.Fatalf("Sample %v outside radius 3", p)
		}
	}
}

func TestSampleCubeDirection_IsUnit(t *testing.T) {
	random := rand.New(11)
	for i := 0; i < 1000; i++ {
		d := SampleCubeDirection(random)
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got %v", d)
		}
	}
}

func TestJitterTangent(t *testing.T) {
	random := rand.New(3)
	dir := NewVec3(0, 0, 1)

	if got := JitterTangent(dir, 0, random); got != dir {
		t.Errorf("Zero sigma should not perturb, got %v", got)
	}

	for i := 0; i < 500; i++ {
		got := JitterTangent(dir, 0.3, random)
		if math.Abs(got.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit output, got %v", got)
		}
		if got.Dot(dir) <= 0 {
			t.Fatalf("Tangent jitter flipped the direction: %v", got)
		}
	}
}

func TestSampleFreePath(t *testing.T) {
	random := rand.New(5)
	if !math.IsInf(SampleFreePath(0, random), 1) {
		t.Errorf("Expected infinite free path without a medium")
	}

	const n = 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += SampleFreePath(5, random)
	}
	if mean := sum / n; math.Abs(mean-5) > 0.25 {
		t.Errorf("Expected mean free path near 5, got %v", mean)
	}
}
