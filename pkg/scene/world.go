package scene

import (
	"github.com/df07/go-diffuse-tracer/pkg/core"
)

// World is an ordered collection of hitable objects. It is assembled once
// before rendering and only read while tracing.
type World struct {
	objects []core.Hitable
}

// NewWorld creates a world holding the given objects in order
func NewWorld(objects ...core.Hitable) *World {
	w := &World{}
	w.Add(objects...)
	return w
}

// Add appends objects to the world
func (w *World) Add(objects ...core.Hitable) {
	w.objects = append(w.objects, objects...)
}

// Objects returns the objects in insertion order
func (w *World) Objects() []core.Hitable {
	return w.objects
}

// Len returns the number of objects in the world
func (w *World) Len() int {
	return len(w.objects)
}

// Hit returns the closest intersection among all objects. Each object is
// tested against the closest t found so far, so a farther object can never
// replace a nearer one whatever the insertion order.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, object := range w.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
