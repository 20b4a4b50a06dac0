// Package photonmap stores photons in a 3-d tree for radius queries.
package photonmap

import (
	"math"

	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/lights"
)

// Leaf capacity: a leaf holding more points than this is split
const bucketSize = 16

// Entry is a photon returned by a radius query
type Entry struct {
	DistSq float64 // Squared distance from the query point
	Photon lights.Photon
}

// node is either a leaf holding points or an internal split plane.
// Nodes live in Map.nodes and refer to their children by index.
type node struct {
	min, max [3]float64 // Bounds of every point under this node

	// Leaf
	points  [][3]float64
	photons []lights.Photon

	// Internal
	leaf        bool
	axis        int
	split       float64
	left, right int
	depth       int
}

// Map is an incrementally built k-d tree keyed by photon position.
// It is not safe for concurrent use.
type Map struct {
	nodes []node
	size  int
}

// New creates an empty photon map
func New() *Map {
	return &Map{}
}

// Len returns the number of stored photons
func (m *Map) Len() int {
	return m.size
}

// Add stores photon at point
func (m *Map) Add(point core.Vec3, photon lights.Photon) {
	p := point.Array()
	if len(m.nodes) == 0 {
		m.nodes = append(m.nodes, node{leaf: true, min: p, max: p})
	}

	idx := 0
	for {
		n := &m.nodes[idx]
		for a := 0; a < 3; a++ {
			n.min[a] = math.Min(n.min[a], p[a])
			n.max[a] = math.Max(n.max[a], p[a])
		}
		if n.leaf {
			break
		}
		if p[n.axis] < n.split {
			idx = n.left
		} else {
			idx = n.right
		}
	}

	n := &m.nodes[idx]
	n.points = append(n.points, p)
	n.photons = append(n.photons, photon)
	m.size++

	if len(n.points) > bucketSize {
		m.split(idx)
	}
}

// split turns a full leaf into an internal node. Axes alternate with depth;
// an axis along which every point coincides is skipped.
func (m *Map) split(idx int) {
	n := m.nodes[idx]

	axis := -1
	for i := 0; i < 3; i++ {
		a := (n.depth + i) % 3
		if n.max[a] > n.min[a] {
			axis = a
			break
		}
	}
	if axis < 0 {
		// All points coincide; the leaf just grows
		return
	}
	split := (n.min[axis] + n.max[axis]) / 2

	left := node{leaf: true, depth: n.depth + 1, min: inf(1), max: inf(-1)}
	right := node{leaf: true, depth: n.depth + 1, min: inf(1), max: inf(-1)}
	for i, p := range n.points {
		child := &right
		if p[axis] < split {
			child = &left
		}
		child.points = append(child.points, p)
		child.photons = append(child.photons, n.photons[i])
		for a := 0; a < 3; a++ {
			child.min[a] = math.Min(child.min[a], p[a])
			child.max[a] = math.Max(child.max[a], p[a])
		}
	}

	m.nodes = append(m.nodes, left, right)
	m.nodes[idx] = node{
		min:   n.min,
		max:   n.max,
		axis:  axis,
		split: split,
		left:  len(m.nodes) - 2,
		right: len(m.nodes) - 1,
		depth: n.depth,
	}
}

func inf(sign int) [3]float64 {
	v := math.Inf(sign)
	return [3]float64{v, v, v}
}

// Within returns every photon whose position q satisfies ‖point − q‖² ≤ radiusSq
func (m *Map) Within(point core.Vec3, radiusSq float64) []Entry {
	return m.AppendWithin(nil, point, radiusSq)
}

// AppendWithin is Within appending to dst, so a caller can reuse one slice across queries
func (m *Map) AppendWithin(dst []Entry, point core.Vec3, radiusSq float64) []Entry {
	if len(m.nodes) == 0 {
		return dst
	}
	return m.within(dst, 0, point.Array(), radiusSq)
}

func (m *Map) within(dst []Entry, idx int, p [3]float64, radiusSq float64) []Entry {
	n := &m.nodes[idx]
	if boxDistSq(n.min, n.max, p) > radiusSq {
		return dst
	}

	if n.leaf {
		for i, q := range n.points {
			dx, dy, dz := q[0]-p[0], q[1]-p[1], q[2]-p[2]
			if d := dx*dx + dy*dy + dz*dz; d <= radiusSq {
				dst = append(dst, Entry{DistSq: d, Photon: n.photons[i]})
			}
		}
		return dst
	}

	dst = m.within(dst, n.left, p, radiusSq)
	return m.within(dst, n.right, p, radiusSq)
}

// boxDistSq is the squared distance from p to the box [min, max], 0 inside
func boxDistSq(min, max, p [3]float64) float64 {
	d := 0.0
	for a := 0; a < 3; a++ {
		if p[a] < min[a] {
			d += (min[a] - p[a]) * (min[a] - p[a])
		} else if p[a] > max[a] {
			d += (p[a] - max[a]) * (p[a] - max[a])
		}
	}
	return d
}

// stats describes the tree shape
type stats struct {
	nodes    int
	leaves   int
	maxDepth int
}

func (m *Map) stats() stats {
	var s stats
	for _, n := range m.nodes {
		s.nodes++
		if n.leaf {
			s.leaves++
			if n.depth > s.maxDepth {
				s.maxDepth = n.depth
			}
		}
	}
	return s
}
