package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-diffuse-tracer/pkg/core"
	"github.com/df07/go-diffuse-tracer/pkg/material"
)

func TestNewSphere_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewSphere(core.NewVec3(0, 0, 0), radius); !errors.Is(err, ErrInvalidRadius) {
			t.Errorf("Expected ErrInvalidRadius for radius %v, got %v", radius, err)
		}
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := MustSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_NearRoot(t *testing.T) {
	sphere := MustSphere(core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0, 1e30)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.T != 4 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if hit.Point != core.NewVec3(0, 0, -4) {
		t.Errorf("Expected hit point (0, 0, -4), got %v", hit.Point)
	}
	if hit.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0, 0, 1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_FarRoot(t *testing.T) {
	sphere := MustSphere(core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"near root excluded by tMin", 4.5, 1e30, true, 6},
		{"near root on open bound", 4, 1e30, true, 6},
		{"both roots beyond tMax", 0, 3.9, false, 0},
		{"tMax equal to near root", 0, 4, false, 0},
		{"both roots behind tMin", 6, 1e30, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t (t=%f)", tt.expectHit, isHit, hit.T)
			}
			if isHit && hit.T != tt.expectedT {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	sphere := MustSphere(core.NewVec3(0, 0, 0), 2.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if hit.T != 2 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
	// Normals always point away from the interior
	if hit.Normal != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected outward normal (1, 0, 0), got %v", hit.Normal)
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := MustSphere(core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_UnnormalizedDirection(t *testing.T) {
	sphere := MustSphere(core.NewVec3(0, 0, -5), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -2))

	hit, isHit := sphere.Hit(ray, 0, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	// t scales inversely with direction magnitude
	if hit.T != 2 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}
}

func TestSphere_Hit_NormalIsUnitLength(t *testing.T) {
	sphere := MustSphere(core.NewVec3(1, 2, -3), 0.75)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1.1, 2.05, -3))

	hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestSphere_Hit_CarriesMaterial(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	sphere := MustSphere(core.NewVec3(0, 0, -5), 1.0)
	hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	lambertian, ok := hit.Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected default *material.Lambertian, got %T", hit.Material)
	}
	if lambertian.Albedo != core.NewVec3(0.5, 0.5, 0.5) {
		t.Errorf("Expected default albedo 0.5, got %v", lambertian.Albedo)
	}

	red := material.NewLambertian(core.NewVec3(0.8, 0.1, 0.1))
	redSphere, err := NewSphereWithMaterial(core.NewVec3(0, 0, -5), 1.0, red)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	hit, _ = redSphere.Hit(ray, 0.001, math.MaxFloat64)
	if hit.Material != red {
		t.Errorf("Expected hit to carry the sphere material, got %v", hit.Material)
	}
	if redSphere.Material() != red {
		t.Errorf("Expected Material() to return the sphere material")
	}
}
