package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-diffuse-tracer/pkg/core"
	"github.com/df07/go-diffuse-tracer/pkg/renderer"
)

// CameraConfig describes a camera by where it stands and what it looks at.
// It is converted once into the fixed viewport a renderer.Camera uses.
type CameraConfig struct {
	LookFrom    core.Vec3 // Eye position
	LookAt      core.Vec3 // Point at the center of the image
	Up          core.Vec3 // World up, used to orient the viewport
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
}

// NewLookAtCamera builds a camera whose viewport sits one unit in front of
// the eye, facing LookAt.
func NewLookAtCamera(config CameraConfig) (*renderer.Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) || !(config.AspectRatio > 0) {
		return nil, fmt.Errorf("scene: invalid camera fov %v or aspect %v", config.VFov, config.AspectRatio)
	}

	from := toMgl(config.LookFrom)
	back := from.Sub(toMgl(config.LookAt))
	if back.Len() == 0 {
		return nil, fmt.Errorf("scene: camera looks at its own position: %w", core.ErrDegenerateVector)
	}
	w := back.Normalize()

	side := toMgl(config.Up).Cross(w)
	if side.Len() == 0 {
		return nil, fmt.Errorf("scene: camera up is parallel to view direction: %w", core.ErrDegenerateVector)
	}
	u := side.Normalize()
	v := w.Cross(u)

	halfHeight := math.Tan(mgl64.DegToRad(config.VFov) / 2)
	halfWidth := config.AspectRatio * halfHeight

	lowerLeft := from.Sub(u.Mul(halfWidth)).Sub(v.Mul(halfHeight)).Sub(w)
	horizontal := u.Mul(2 * halfWidth)
	vertical := v.Mul(2 * halfHeight)

	return renderer.NewCamera(config.LookFrom, fromMgl(lowerLeft), fromMgl(horizontal), fromMgl(vertical)), nil
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
