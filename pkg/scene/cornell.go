package scene

import (
	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/geometry"
	"github.com/df07/go-sppm/pkg/lights"
)

// NewCornellScene creates a classic Cornell box scene with quad walls and a
// semisphere light just under the ceiling
func NewCornellScene(p Params) *Scene {
	// Create materials
	whiteWall := diffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := diffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := diffuse(core.NewVec3(0.12, 0.45, 0.15))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	// Floor (white) - XZ plane at y=0
	floor := geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
	)

	// Ceiling (white) - XZ plane at y=boxSize
	ceiling := geometry.NewQuad(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
	)

	// Back wall (white) - XY plane at z=boxSize
	backWall := geometry.NewQuad(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
	)

	// Left wall (red) - YZ plane at x=0
	leftWall := geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
	)

	// Right wall (green) - YZ plane at x=boxSize
	rightWall := geometry.NewQuad(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
	)

	objects := []Object{
		NewGeometryObject(floor, whiteWall),
		NewGeometryObject(ceiling, whiteWall),
		NewGeometryObject(backWall, whiteWall),
		NewGeometryObject(leftWall, red),
		NewGeometryObject(rightWall, green),

		// Left sphere (smaller, mirror) and right sphere (larger, glass)
		NewGeometryObject(geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5), mirror()),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(370, 90, 351), 90), glass(1.5)),
	}

	light := lights.NewSemisphereLight(
		core.NewVec3(boxSize/2, boxSize-1, boxSize/2),
		core.NewVec3(10, 10, 10),
		256*1024,
		core.NewVec3(0, -1, 0),
	)

	camera := p.camera(core.NewVec3(278, 278, -800), core.NewVec3(0, 0, 1), 40)
	return NewScene(camera, []lights.Light{light}, objects...)
}
