package lights

import (
	"math"
	"testing"

	"github.com/df07/go-sppm/pkg/core"
	"pgregory.net/rand"
)

func TestSemisphereLight_EmitPhoton(t *testing.T) {
	light := NewSemisphereLight(core.NewVec3(1, 2, 3), core.NewVec3(10, 5, 1), 1024, core.NewVec3(0, -1, 0))
	random := rand.New(11)

	const n = 256
	for i := 0; i < 1000; i++ {
		photon := light.EmitPhoton(n, random)

		if photon.Ray.Origin != light.At {
			t.Fatalf("Expected origin %v, got %v", light.At, photon.Ray.Origin)
		}
		if math.Abs(photon.Ray.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got %v", photon.Ray.Direction)
		}
		if photon.Ray.Direction.Y > 1e-12 {
			t.Fatalf("Direction %v leaves the hemisphere around -Y", photon.Ray.Direction)
		}
		expected := core.NewVec3(40, 20, 4)
		if photon.Flux.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("Expected flux %v, got %v", expected, photon.Flux)
		}
	}
}

func TestBeamLight_EmitPhoton(t *testing.T) {
	tests := []struct {
		name      string
		dir       core.Vec3
		reference core.Vec3
	}{
		{"along x", core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{"oblique", core.NewVec3(1, -1, 0.5), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin := core.NewVec3(0, 10, -4)
			light := NewBeamLight(origin, 3, tt.dir, tt.reference, 100, core.NewVec3(1, 1, 1))
			random := rand.New(12)
			dir := tt.dir.Normalize()

			for i := 0; i < 500; i++ {
				photon := light.EmitPhoton(50, random)
				offset := photon.Ray.Origin.Subtract(origin)

				if math.Abs(offset.Dot(dir)) > 1e-9 {
					t.Fatalf("Photon origin %v is off the disk plane", photon.Ray.Origin)
				}
				if offset.Length() > light.Radius+1e-9 {
					t.Fatalf("Photon origin %v is outside the disk", photon.Ray.Origin)
				}
				if photon.Ray.Direction.Subtract(dir).Length() > 1e-9 {
					t.Fatalf("Expected direction %v, got %v", dir, photon.Ray.Direction)
				}
				if photon.Flux != core.NewVec3(2, 2, 2) {
					t.Fatalf("Expected flux 2, got %v", photon.Flux)
				}
			}
		})
	}
}

func TestSampleLightEmission(t *testing.T) {
	random := rand.New(13)
	if _, ok := SampleLightEmission(nil, 10, random); ok {
		t.Error("Expected no photon without lights")
	}

	a := NewSemisphereLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 1, core.NewVec3(0, 1, 0))
	b := NewSemisphereLight(core.NewVec3(5, 0, 0), core.NewVec3(1, 1, 1), 1, core.NewVec3(0, 1, 0))
	counts := map[core.Vec3]int{}
	for i := 0; i < 2000; i++ {
		photon, ok := SampleLightEmission([]Light{a, b}, 10, random)
		if !ok {
			t.Fatal("Expected a photon")
		}
		counts[photon.Ray.Origin]++
	}
	if counts[a.At] < 800 || counts[b.At] < 800 {
		t.Errorf("Expected uniform light selection, got %v", counts)
	}
}
