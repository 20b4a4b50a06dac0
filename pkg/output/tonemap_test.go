package output

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/renderer"
)

func TestToImage(t *testing.T) {
	buf := renderer.NewBuffer(3, 2)
	buf.Add(0, 0, core.NewVec3(4, 0, 1))   // (1, 0, 0.25) after averaging over 4
	buf.Add(2, 1, core.NewVec3(40, 8, 4))  // clamps to white
	buf.Add(1, 0, core.NewVec3(0.5, 2, 3)) // (0.125, 0.5, 0.75)

	img := ToImage(buf, 4)
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
	}

	gamma := func(v float64) uint8 { return uint8(math.Pow(v, 1/2.2) * 255) }

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"saturated red", 0, 0, color.RGBA{255, 0, gamma(0.25), 255}},
		{"overexposed", 2, 1, color.RGBA{255, 255, 255, 255}},
		{"gamma encoded", 1, 0, color.RGBA{gamma(0.125), gamma(0.5), gamma(0.75), 255}},
		{"black", 0, 1, color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestToImage_ZeroIterations(t *testing.T) {
	buf := renderer.NewBuffer(1, 1)
	buf.Add(0, 0, core.Splat(0.25))
	if got := ToImage(buf, 0).RGBAAt(0, 0); got.R != uint8(math.Pow(0.25, 1/2.2)*255) {
		t.Errorf("Expected zero iterations to be treated as one, got %v", got)
	}
}

func TestAverageLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	// Red, green and blue weights sum to one
	if avg := AverageLuminance(img); math.Abs(avg-0.25) > 1e-4 {
		t.Errorf("Expected average luminance 0.25, got %f", avg)
	}

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.RGBA{255, 255, 255, 255})
	if avg := AverageLuminance(white); math.Abs(avg-1) > 1e-4 {
		t.Errorf("Expected average luminance 1, got %f", avg)
	}

	if avg := AverageLuminance(image.NewRGBA(image.Rect(0, 0, 0, 0))); avg != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", avg)
	}
}
