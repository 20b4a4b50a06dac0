package core

import "math"

// BoundingBox is an axis-aligned box stored as (lo, hi) pairs per axis
type BoundingBox struct {
	Min Vec3 // Lower corner
	Max Vec3 // Upper corner
}

// NewBoundingBox creates a box from its two corners
func NewBoundingBox(min, max Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// Unbounded returns the box covering all of space
func Unbounded() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{Min: Splat(-inf), Max: Splat(inf)}
}

// NewBoundingBoxFromPoints creates a box that bounds all given points
func NewBoundingBoxFromPoints(points ...Vec3) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Merge(BoundingBox{Min: p, Max: p})
	}
	return box
}

// Merge returns the componentwise min/max of two boxes
func (b BoundingBox) Merge(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Vec3{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

// Hit tests the ray against the box with the slab method.
// Axes along which the ray barely moves are skipped; upper bounds the ray
// parameter (pass math.Inf(1) for an unbounded ray).
func (b BoundingBox) Hit(ray Ray, upper float64) bool {
	tMin := math.Inf(-1)
	tMax := upper

	for axis := 0; axis < 3; axis++ {
		if math.Abs(ray.Direction.Index(axis)) < Eps {
			continue
		}

		origin := ray.Origin.Index(axis)
		inv := ray.InvDirection.Index(axis)
		t1 := (b.Min.Index(axis) - origin) * inv
		t2 := (b.Max.Index(axis) - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return tMin <= upper
}

// Center returns the center point of the box
func (b BoundingBox) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the extent of the box along each axis
func (b BoundingBox) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// Contains reports whether p lies inside the box (boundary included)
func (b BoundingBox) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
