package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-diffuse-tracer/pkg/core"
	"github.com/df07/go-diffuse-tracer/pkg/geometry"
	"github.com/df07/go-diffuse-tracer/pkg/renderer"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *World
	Camera *renderer.Camera
}

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
	Objects     int
}

type builder struct {
	description string
	build       func(aspectRatio float64) (*Scene, error)
}

var builtins = map[string]builder{
	"default": {
		description: "one sphere resting on a large ground sphere",
		build:       NewDefaultScene,
	},
	"floor": {
		description: "one sphere resting on an infinite ground plane",
		build:       NewFloorScene,
	},
	"trio": {
		description: "three spheres in a row on a ground sphere, seen from above",
		build:       NewTrioScene,
	},
}

// New builds the named scene for the given image aspect ratio
func New(name string, aspectRatio float64) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.build(aspectRatio)
}

// List returns the registered scenes sorted by name
func List() []SceneInfo {
	var infos []SceneInfo
	for name, b := range builtins {
		info := SceneInfo{Name: name, Description: b.description}
		if s, err := b.build(16.0 / 9.0); err == nil {
			info.Objects = s.World.Len()
		}
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// NewDefaultScene creates the small sphere over a ground sphere, seen from
// the origin through the standard viewport
func NewDefaultScene(aspectRatio float64) (*Scene, error) {
	world := NewWorld(
		geometry.MustSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.MustSphere(core.NewVec3(0, -100.5, -1), 100),
	)

	return &Scene{
		Name:   "default",
		World:  world,
		Camera: renderer.NewDefaultCamera(aspectRatio),
	}, nil
}

// NewTrioScene creates three spheres in a row on a ground sphere
func NewTrioScene(aspectRatio float64) (*Scene, error) {
	camera, err := NewLookAtCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 1, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: aspectRatio,
	})
	if err != nil {
		return nil, err
	}

	world := NewWorld(
		geometry.MustSphere(core.NewVec3(0, -100.5, -1), 100),
		geometry.MustSphere(core.NewVec3(-1.1, 0, -1), 0.5),
		geometry.MustSphere(core.NewVec3(0, 0, -1), 0.5),
		geometry.MustSphere(core.NewVec3(1.1, 0, -1), 0.5),
	)

	return &Scene{
		Name:   "trio",
		World:  world,
		Camera: camera,
	}, nil
}

// NewFloorScene creates the default sphere resting on an infinite plane
func NewFloorScene(aspectRatio float64) (*Scene, error) {
	floor, err := geometry.NewPlane(core.NewVec3(0, -0.5, 0), core.NewVec3(0, 1, 0))
	if err != nil {
		return nil, err
	}

	world := NewWorld(
		geometry.MustSphere(core.NewVec3(0, 0, -1), 0.5),
		floor,
	)

	return &Scene{
		Name:   "floor",
		World:  world,
		Camera: renderer.NewDefaultCamera(aspectRatio),
	}, nil
}
