package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-diffuse-tracer/pkg/core"
	"github.com/df07/go-diffuse-tracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal.
// The normal marks the exterior side and is reported for hits from either side.
type Plane struct {
	point    core.Vec3
	normal   core.Vec3
	material material.Material
}

// NewPlane creates a new plane with the default diffuse material
func NewPlane(point, normal core.Vec3) (*Plane, error) {
	return NewPlaneWithMaterial(point, normal, material.NewDefaultLambertian())
}

// NewPlaneWithMaterial creates a new plane with the given material
func NewPlaneWithMaterial(point, normal core.Vec3, mat material.Material) (*Plane, error) {
	unit, err := normal.Normalize()
	if err != nil {
		return nil, fmt.Errorf("geometry: plane normal: %w", err)
	}
	return &Plane{point: point, normal: unit, material: mat}, nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.normal)

	// Parallel rays never cross the plane
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := p.point.Subtract(ray.Origin).Dot(p.normal) / denominator
	if t <= tMin || t >= tMax {
		return core.HitRecord{}, false
	}

	return core.HitRecord{
		Point:    ray.At(t),
		Normal:   p.normal,
		T:        t,
		Material: p.material,
	}, true
}
