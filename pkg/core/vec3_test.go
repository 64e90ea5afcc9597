package core

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func vecApproxEqual(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Z-b.Z) < tolerance
}

func randomVec(random *rand.Rand) Vec3 {
	return NewVec3(random.Float64()*200-100, random.Float64()*200-100, random.Float64()*200-100)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 0, 2)
	b := NewVec3(2, 1, 2)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(3, 1, 4)},
		{"subtract", a.Subtract(b), NewVec3(-1, -1, 0)},
		{"negate", NewVec3(1, -2, 3).Negate(), NewVec3(-1, 2, -3)},
		{"multiply", NewVec3(1, 2, 3).Multiply(3), NewVec3(3, 6, 9)},
		{"divide", NewVec3(3, 6, 9).Divide(3), NewVec3(1, 2, 3)},
		{"hadamard", NewVec3(1, 1, 1).MultiplyVec(NewVec3(2, 3, 4)), NewVec3(2, 3, 4)},
		{"cross", a.Cross(b), NewVec3(-2, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if dot := a.Dot(b); dot != 6 {
		t.Errorf("Expected dot product 6, got %f", dot)
	}
}

func TestVec3_Length(t *testing.T) {
	v := NewVec3(-2, -2, -1)
	if v.LengthSquared() != 9 {
		t.Errorf("Expected squared length 9, got %f", v.LengthSquared())
	}
	if v.Length() != 3 {
		t.Errorf("Expected length 3, got %f", v.Length())
	}
	if l := NewVec3(0, 0, -1).Length(); l != 1 {
		t.Errorf("Expected length 1, got %f", l)
	}
}

func TestVec3_VectorSpaceProperties(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	zero := Vec3{}

	for i := 0; i < 100; i++ {
		a, b, c := randomVec(random), randomVec(random), randomVec(random)

		if a.Add(b) != b.Add(a) {
			t.Fatalf("Addition not commutative for %v, %v", a, b)
		}
		if !vecApproxEqual(a.Add(b).Add(c), a.Add(b.Add(c)), 1e-9) {
			t.Fatalf("Addition not associative for %v, %v, %v", a, b, c)
		}
		if a.Add(zero) != a {
			t.Fatalf("Zero is not the additive identity for %v", a)
		}
	}
}

func TestVec3_Normalize(t *testing.T) {
	random := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		v := randomVec(random)
		if v.LengthSquared() == 0 {
			continue
		}
		unit, err := v.Normalize()
		if err != nil {
			t.Fatalf("Unexpected error normalizing %v: %v", v, err)
		}
		if math.Abs(unit.Length()-1) > 1e-9 {
			t.Errorf("Expected unit length for normalized %v, got %f", v, unit.Length())
		}
	}
}

func TestVec3_NormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"zero vector", Vec3{}},
		{"infinite component", NewVec3(math.Inf(1), 0, 0)},
		{"nan component", NewVec3(math.NaN(), 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.v.Normalize()
			if !errors.Is(err, ErrDegenerateVector) {
				t.Errorf("Expected ErrDegenerateVector, got %v", err)
			}
		})
	}
}

func TestVec3_ClampAndLerp(t *testing.T) {
	clamped := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if clamped != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0, 0.5, 1), got %v", clamped)
	}

	nonFinite := NewVec3(math.NaN(), math.Inf(1), math.Inf(-1)).Clamp(0, 1)
	if nonFinite != NewVec3(0, 1, 0) {
		t.Errorf("Expected (0, 1, 0) for NaN, +Inf, -Inf, got %v", nonFinite)
	}

	white := NewVec3(1, 1, 1)
	sky := NewVec3(0.5, 0.7, 1.0)
	if got := white.Lerp(sky, 0); got != white {
		t.Errorf("Expected lerp at t=0 to return start, got %v", got)
	}
	if got := white.Lerp(sky, 1); got != sky {
		t.Errorf("Expected lerp at t=1 to return end, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))

	if p := ray.At(0); p != ray.Origin {
		t.Errorf("Expected origin at t=0, got %v", p)
	}
	if p := ray.At(1.5); p != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1, 2, 0) at t=1.5, got %v", p)
	}
}
