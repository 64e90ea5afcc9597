package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-diffuse-tracer/pkg/core"
	"github.com/df07/go-diffuse-tracer/pkg/material"
)

// ErrInvalidRadius is returned when a sphere is built with a non-positive radius
var ErrInvalidRadius = errors.New("geometry: sphere radius must be positive")

// Sphere represents a sphere shape
type Sphere struct {
	center   core.Vec3
	radius   float64
	material material.Material
}

// NewSphere creates a new sphere with the default diffuse material
func NewSphere(center core.Vec3, radius float64) (*Sphere, error) {
	return NewSphereWithMaterial(center, radius, material.NewDefaultLambertian())
}

// NewSphereWithMaterial creates a new sphere with the given material
func NewSphereWithMaterial(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return &Sphere{center: center, radius: radius, material: mat}, nil
}

// MustSphere is like NewSphere but panics on an invalid radius. Meant for
// hard-coded scene tables.
func MustSphere(center core.Vec3, radius float64) *Sphere {
	s, err := NewSphere(center, radius)
	if err != nil {
		panic(err)
	}
	return s
}

// Center returns the sphere center
func (s *Sphere) Center() core.Vec3 { return s.center }

// Radius returns the sphere radius
func (s *Sphere) Radius() float64 { return s.radius }

// Material returns the sphere material
func (s *Sphere) Material() material.Material { return s.material }

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.center)

	// Quadratic a*t^2 + 2*halfB*t + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius

	// A tangent ray (zero discriminant) counts as a miss
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root > tMin && root < tMax {
		return s.hitAt(ray, root), true
	}

	// Then the farther one
	root = (-halfB + sqrtD) / a
	if root > tMin && root < tMax {
		return s.hitAt(ray, root), true
	}

	return core.HitRecord{}, false
}

func (s *Sphere) hitAt(ray core.Ray, t float64) core.HitRecord {
	point := ray.At(t)
	return core.HitRecord{
		Point:    point,
		Normal:   point.Subtract(s.center).Divide(s.radius),
		T:        t,
		Material: s.material,
	}
}
