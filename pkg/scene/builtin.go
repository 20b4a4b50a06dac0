package scene

import (
	"github.com/df07/go-sppm/pkg/core"
	"github.com/df07/go-sppm/pkg/geometry"
	"github.com/df07/go-sppm/pkg/lights"
	"github.com/df07/go-sppm/pkg/material"
)

func white() core.Vec3 { return core.NewVec3(1, 1, 1) }

// diffuse is a matte material with the given albedo
func diffuse(albedo core.Vec3) *material.General {
	return material.NewGeneral(1, 0, 0, white(), albedo, 1, 1, 0)
}

// mirror is a perfect metal
func mirror() *material.General {
	return material.NewGeneral(0, 1, 0, white(), core.NewVec3(0.7, 0.7, 1), 1, 1, 0)
}

// glass refracts everything with index of refraction ior
func glass(ior float64) *material.General {
	return material.NewGeneral(0, 0, 1, white(), core.NewVec3(0.7, 0.7, 1), 1, ior, 0)
}

// NewBoxScene creates a room holding a refractive box with four slabs inside,
// a diffuse sphere, a metal sphere and a glass sphere, lit from above
func NewBoxScene(p Params) *Scene {
	light := lights.NewSemisphereLight(
		core.NewVec3(10, 60, 20),
		core.NewVec3(10, 10, 10),
		8*1024,
		core.NewVec3(0, -1, 0),
	)

	room := material.NewGeneral(0.2, 0, 0.5, white(), core.NewVec3(0.4, 0.4, 0.4), 1, 1, 0)
	boxMat := material.NewGeneral(0, 0, 1, white(), core.NewVec3(0, 0, 1), 1, 1.5, 0)
	slab := diffuse(core.NewVec3(1, 0.7, 0.7))

	objects := []Object{
		NewGeometryObject(geometry.NewBox(core.NewVec3(-50, 0, -50), core.NewVec3(50, 100, 50)), room),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(20, 20, 0), 8), diffuse(core.NewVec3(0.7, 0.7, 1))),
		NewGeometryObject(geometry.NewBox(core.NewVec3(10, 10, -10), core.NewVec3(30, 30, 10)), boxMat),
		NewGeometryObject(geometry.NewBox(core.NewVec3(11, 11, -9), core.NewVec3(29, 12, -8)), slab),
		NewGeometryObject(geometry.NewBox(core.NewVec3(11, 28, -9), core.NewVec3(29, 29, -8)), slab),
		NewGeometryObject(geometry.NewBox(core.NewVec3(11, 11, 8), core.NewVec3(29, 12, 9)), slab),
		NewGeometryObject(geometry.NewBox(core.NewVec3(11, 28, 8), core.NewVec3(29, 29, 9)), slab),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(20, 5, 20), 5), mirror()),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(35, 5, 20), 7), glass(1.2)),
	}

	camera := p.camera(core.NewVec3(-40, 50, 30), core.NewVec3(1, -0.5, -0.5), 50)
	return NewScene(camera, []lights.Light{light}, objects...)
}

// NewFocusScene creates three spheres lined up along Z in a glossy room
func NewFocusScene(p Params) *Scene {
	light := lights.NewSemisphereLight(
		core.NewVec3(0, 50, 120),
		core.NewVec3(10, 10, 10),
		8*1024,
		core.NewVec3(0, 0, -1),
	)

	room := material.NewGeneral(0.6, 0.4, 0, white(), white(), 1, 1, 0.5)

	objects := []Object{
		NewGeometryObject(geometry.NewBox(core.NewVec3(-80, 0, -20), core.NewVec3(20, 60, 200)), room),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(0, 10, 30), 10), diffuse(core.NewVec3(0.5, 1, 0.5))),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(0, 10, 0), 10), mirror()),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(0, 10, 60), 10), glass(1.4)),
	}

	camera := p.camera(core.NewVec3(-60, 30, 80), core.NewVec3(60, -20, -50), 50)
	return NewScene(camera, []lights.Light{light}, objects...)
}

// NewVolumetricScene creates an open room with a water plane, a glossy table
// and a metal sphere, lit by a wide semisphere light and a narrow beam
func NewVolumetricScene(p Params) *Scene {
	room := diffuse(core.NewVec3(0.1, 0.1, 0.1))
	table := material.NewGeneral(0.8, 0.2, 0, white(), white(), 1, 1, 0.2)
	water := material.NewGeneral(0, 0.6, 0, white(), white(), 1, 1.333, 0)

	objects := []Object{
		NewGeometryObject(geometry.NewBox(core.NewVec3(-1e20, 0, 0), core.NewVec3(1e20, 1e20, 1e20)), room),
		NewGeometryObject(geometry.NewBox(core.NewVec3(-100, 0, 200), core.NewVec3(100, 20, 300)), table),
		NewGeometryObject(geometry.NewBox(core.NewVec3(-1e20, -10, 0), core.NewVec3(1e20, 10, 1e20)), water),
		NewGeometryObject(geometry.NewSphere(core.NewVec3(30, 60, 250), 20), mirror()),
	}

	env := lights.NewSemisphereLight(
		core.NewVec3(100, 300, 500),
		core.NewVec3(10, 10, 10),
		64*1024,
		core.NewVec3(0, -1, -1),
	)
	beam := lights.NewBeamLight(
		core.NewVec3(150, 200, 250),
		10,
		core.NewVec3(-1, -1, 0),
		core.NewVec3(0, -1, 0),
		1024*1024,
		core.NewVec3(10, 10, 10),
	)

	camera := p.camera(core.NewVec3(-50, 60, 500), core.NewVec3(50, 0, -250), 50)
	return NewScene(camera, []lights.Light{env, beam}, objects...)
}

// NewEmptyScene creates a scene with a camera and nothing to see
func NewEmptyScene(p Params) *Scene {
	camera := p.camera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 50)
	return NewScene(camera, nil)
}
