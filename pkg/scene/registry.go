package scene

import (
	"sort"

	"github.com/pkg/errors"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	Description string
	build       func(Params) *Scene
}

var builtins = []SceneInfo{
	{
		ID:          "box",
		Description: "Room with a refractive box, diffuse, metal and glass spheres",
		build:       NewBoxScene,
	},
	{
		ID:          "focus",
		Description: "Three spheres in depth for depth-of-field renders",
		build:       NewFocusScene,
	},
	{
		ID:          "volumetric",
		Description: "Open room with water, a table and a light beam for participating media",
		build:       NewVolumetricScene,
	},
	{
		ID:          "cornell",
		Description: "Cornell box with a mirror and a glass sphere",
		build:       NewCornellScene,
	},
	{
		ID:          "empty",
		Description: "Camera only, renders black",
		build:       NewEmptyScene,
	},
}

// List returns the built-in scenes sorted by ID
func List() []SceneInfo {
	list := make([]SceneInfo, len(builtins))
	copy(list, builtins)
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Names returns the IDs of the built-in scenes, sorted
func Names() []string {
	var names []string
	for _, info := range List() {
		names = append(names, info.ID)
	}
	return names
}

// New builds the built-in scene with the given ID
func New(name string, params Params) (*Scene, error) {
	for _, info := range builtins {
		if info.ID == name {
			return info.build(params), nil
		}
	}
	return nil, errors.Errorf("unknown scene %q (available: %v)", name, Names())
}
