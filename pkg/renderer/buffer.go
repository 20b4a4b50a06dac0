package renderer

import (
	"github.com/df07/go-sppm/pkg/core"
	"github.com/pkg/errors"
)

// Buffer is a width × height grid of accumulated linear colors
type Buffer struct {
	Width, Height int
	pixels        []core.Vec3 // Column-major: pixels[x*Height+y]
}

// NewBuffer creates a zeroed buffer
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, pixels: make([]core.Vec3, width*height)}
}

// At returns the accumulated color of pixel (x, y)
func (b *Buffer) At(x, y int) core.Vec3 {
	return b.pixels[x*b.Height+y]
}

// Add accumulates c into pixel (x, y)
func (b *Buffer) Add(x, y int, c core.Vec3) {
	i := x*b.Height + y
	b.pixels[i] = b.pixels[i].Add(c)
}

// Columns returns the buffer as data[x][y] = [r, g, b]
func (b *Buffer) Columns() [][][3]float64 {
	data := make([][][3]float64, b.Width)
	for x := range data {
		data[x] = make([][3]float64, b.Height)
		for y := range data[x] {
			data[x][y] = b.At(x, y).Array()
		}
	}
	return data
}

// BufferFromColumns is the inverse of Columns
func BufferFromColumns(data [][][3]float64) (*Buffer, error) {
	if len(data) == 0 {
		return nil, errors.New("empty pixel data")
	}
	b := NewBuffer(len(data), len(data[0]))
	for x, column := range data {
		if len(column) != b.Height {
			return nil, errors.Errorf("column %d has %d pixels, expected %d", x, len(column), b.Height)
		}
		for y, c := range column {
			b.pixels[x*b.Height+y] = core.FromArray(c)
		}
	}
	return b, nil
}

// SumBuffers adds equally sized buffers pixel by pixel with compensated
// summation, so the result does not depend on how much each buffer holds.
func SumBuffers(buffers ...*Buffer) (*Buffer, error) {
	if len(buffers) == 0 {
		return nil, errors.New("no buffers to sum")
	}
	width, height := buffers[0].Width, buffers[0].Height
	for _, b := range buffers[1:] {
		if b.Width != width || b.Height != height {
			return nil, errors.Errorf("buffer is %dx%d, expected %dx%d", b.Width, b.Height, width, height)
		}
	}

	sum := NewBuffer(width, height)
	for i := range sum.pixels {
		var total, comp [3]float64
		for _, b := range buffers {
			v := b.pixels[i].Array()
			for c := 0; c < 3; c++ {
				// Kahan summation
				y := v[c] - comp[c]
				t := total[c] + y
				comp[c] = (t - total[c]) - y
				total[c] = t
			}
		}
		sum.pixels[i] = core.FromArray(total)
	}
	return sum, nil
}
