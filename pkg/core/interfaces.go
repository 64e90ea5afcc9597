package core

import "math/rand"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit surface normal, pointing away from the interior
	T        float64  // Ray parameter at intersection
	Material Material // Material of the hit object, nil when the object has none
}

// Hitable is implemented by every geometric primitive a ray can be tested
// against. A hit is only reported for parameters strictly inside (tMin, tMax).
type Hitable interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
}

// HitableFunc adapts a plain function to the Hitable interface
type HitableFunc func(ray Ray, tMin, tMax float64) (HitRecord, bool)

// Hit calls f(ray, tMin, tMax)
func (f HitableFunc) Hit(ray Ray, tMin, tMax float64) (HitRecord, bool) {
	return f(ray, tMin, tMax)
}

// Material decides where light goes after it reaches a surface.
// It is declared here next to HitRecord so that hits can carry it.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, error)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Fraction of light kept per channel
}
