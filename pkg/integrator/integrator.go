package integrator

import (
	"math/rand"

	"github.com/df07/go-diffuse-tracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace computes the color carried back along ray. Intersections are
	// only considered inside (tMin, tMax). A non-nil error reports why a
	// path was terminated early; the returned color is still usable.
	Trace(ray core.Ray, world core.Hitable, tMin, tMax float64, random *rand.Rand) (core.Vec3, error)
}

// BackgroundFunc returns the color seen along a ray that escapes the scene
type BackgroundFunc func(ray core.Ray) core.Vec3
