package material

import (
	"math/rand"

	"github.com/df07/go-diffuse-tracer/pkg/core"
)

// DefaultAlbedo is the reflectance of the default diffuse surface
const DefaultAlbedo = 0.5

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Fraction of light kept per channel on every bounce
}

// NewLambertian creates a new lambertian material with a solid albedo
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewDefaultLambertian creates the grey diffuse material every surface
// uses unless told otherwise
func NewDefaultLambertian() *Lambertian {
	return NewLambertian(core.NewVec3(DefaultAlbedo, DefaultAlbedo, DefaultAlbedo))
}

// Scatter aims the bounce at a random point in the unit sphere tangent to
// the surface at the hit point. The scattered direction is normalized; a
// zero-length direction yields core.ErrDegenerateVector.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (ScatterResult, error) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(random))
	direction, err := target.Subtract(hit.Point).Normalize()
	if err != nil {
		return ScatterResult{}, err
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, nil
}
