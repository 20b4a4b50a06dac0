package geometry

import "github.com/df07/go-sppm/pkg/core"

// boxFaces lists the 12 triangles of a box as indices into its corners.
// Corner i takes upper on axis k when bit k of i is set (x=1, y=2, z=4).
// Every triangle is wound so its normal points into the box.
var boxFaces = [12][3]int{
	{2, 3, 6}, {3, 7, 6}, // top
	{1, 0, 4}, {5, 1, 4}, // bottom
	{0, 2, 4}, {2, 6, 4}, // x = lower
	{3, 1, 5}, {7, 3, 5}, // x = upper
	{1, 3, 0}, {3, 2, 0}, // z = lower
	{7, 5, 4}, {6, 7, 4}, // z = upper
}

// NewBox creates an axis-aligned box spanning lower to upper as a group of 12 triangles
func NewBox(lower, upper core.Vec3) *Group {
	var corners [8]core.Vec3
	for i := range corners {
		c := lower
		if i&1 != 0 {
			c.X = upper.X
		}
		if i&2 != 0 {
			c.Y = upper.Y
		}
		if i&4 != 0 {
			c.Z = upper.Z
		}
		corners[i] = c
	}

	faces := make([]Geometry, 0, len(boxFaces))
	for _, f := range boxFaces {
		faces = append(faces, NewTriangle(corners[f[0]], corners[f[1]], corners[f[2]]))
	}
	return NewGroup(faces...)
}
