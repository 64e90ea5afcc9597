package material

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-diffuse-tracer/pkg/core"
)

func TestLambertian_Scatter(t *testing.T) {
	lambertian := NewDefaultLambertian()
	hit := core.HitRecord{
		Point:  core.NewVec3(1, 2, 3),
		Normal: core.NewVec3(0, 0, 1),
		T:      1,
	}
	rayIn := core.NewRay(core.NewVec3(1, 2, 5), core.NewVec3(0, 0, -1))
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		result, err := lambertian.Scatter(rayIn, hit, random)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Attenuation != core.NewVec3(0.5, 0.5, 0.5) {
			t.Fatalf("Expected attenuation (0.5, 0.5, 0.5), got %v", result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point {
			t.Fatalf("Expected scattered ray to start at the hit point, got %v", result.Scattered.Origin)
		}
		if math.Abs(result.Scattered.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected normalized direction, got length %f", result.Scattered.Direction.Length())
		}
		if result.Scattered.Direction.Z < 0 {
			t.Fatalf("Expected direction on the normal side, got %v", result.Scattered.Direction)
		}
	}
}

func TestLambertian_ScatterIsDeterministic(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.2, 0.4, 0.6))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0), T: 1}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	a, _ := lambertian.Scatter(rayIn, hit, rand.New(rand.NewSource(7)))
	b, _ := lambertian.Scatter(rayIn, hit, rand.New(rand.NewSource(7)))
	if a != b {
		t.Errorf("Expected identical scatter for identical seeds, got %v and %v", a, b)
	}
	if a.Attenuation != core.NewVec3(0.2, 0.4, 0.6) {
		t.Errorf("Expected albedo as attenuation, got %v", a.Attenuation)
	}
}

func TestLambertian_DegenerateNormal(t *testing.T) {
	// A NaN normal can never produce a usable direction
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(math.NaN(), 0, 0), T: 1}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	_, err := NewDefaultLambertian().Scatter(rayIn, hit, rand.New(rand.NewSource(1)))
	if !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}

func TestLambertian_ImplementsMaterial(t *testing.T) {
	var _ Material = NewDefaultLambertian()
}
