// Package output turns accumulated render buffers into images and
// checkpoints and stores them in a blob bucket.
package output

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/renderer"
)

// Gamma of the 8-bit output images
const Gamma = 2.2

// ToImage averages buf over iter iterations and gamma-encodes every channel
// into 0..255
func ToImage(buf *renderer.Buffer, iter int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	scale := 1 / math.Max(float64(iter), 1)

	for x := 0; x < buf.Width; x++ {
		for y := 0; y < buf.Height; y++ {
			c := buf.At(x, y).Multiply(scale).GammaCorrect(Gamma).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	return uint8(v * 255)
}

// AverageLuminance returns the mean luminance of img in [0, 1]
func AverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n == 0 {
		return 0
	}

	var total float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			total += core.NewVec3(float64(r), float64(g), float64(b)).Multiply(1.0 / 65535).Luminance()
		}
	}
	return total / float64(n)
}
