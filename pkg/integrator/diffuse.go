package integrator

import (
	"errors"
	"math/rand"

	"github.com/df07/go-diffuse-tracer/pkg/core"
	"github.com/df07/go-diffuse-tracer/pkg/material"
)

// ErrMaxDepthExceeded reports a path that was still bouncing when its depth
// budget ran out. The path is treated as fully absorbed.
var ErrMaxDepthExceeded = errors.New("integrator: max depth exceeded")

// DefaultMaxDepth is the number of rays traced per path before absorption
const DefaultMaxDepth = 50

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// SkyGradient blends from sky blue (looking straight down) to white
// (looking straight up) using the y component of the unit ray direction.
func SkyGradient(ray core.Ray) core.Vec3 {
	unitDirection, err := ray.Direction.Normalize()
	if err != nil {
		return core.Vec3{}
	}
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBlue.Lerp(skyWhite, t)
}

// DiffuseIntegrator traces paths that scatter off every surface they hit,
// as directed by the surface material, until they escape to the
// background or run out of depth.
type DiffuseIntegrator struct {
	MaxDepth        int
	Background      BackgroundFunc
	DefaultMaterial material.Material // Used for hits that carry no material
}

// NewDiffuseIntegrator creates a diffuse integrator with the sky gradient
// background. A non-positive maxDepth selects DefaultMaxDepth.
func NewDiffuseIntegrator(maxDepth int) *DiffuseIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &DiffuseIntegrator{
		MaxDepth:        maxDepth,
		Background:      SkyGradient,
		DefaultMaterial: material.NewDefaultLambertian(),
	}
}

// Trace follows ray through world. The bounce recursion is unrolled into a
// loop carrying the accumulated attenuation and the remaining depth.
func (d *DiffuseIntegrator) Trace(ray core.Ray, world core.Hitable, tMin, tMax float64, random *rand.Rand) (core.Vec3, error) {
	background := d.Background
	if background == nil {
		background = SkyGradient
	}

	throughput := core.NewVec3(1, 1, 1)
	for depth := 0; depth < d.MaxDepth; depth++ {
		hit, isHit := world.Hit(ray, tMin, tMax)
		if !isHit {
			return background(ray).MultiplyVec(throughput), nil
		}

		mat := hit.Material
		if mat == nil {
			mat = d.fallbackMaterial()
		}

		scatter, err := mat.Scatter(ray, hit, random)
		if err != nil {
			return core.Vec3{}, err
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{}, ErrMaxDepthExceeded
}

func (d *DiffuseIntegrator) fallbackMaterial() material.Material {
	if d.DefaultMaterial == nil {
		return material.NewDefaultLambertian()
	}
	return d.DefaultMaterial
}
