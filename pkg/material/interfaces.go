package material

import (
	"github.com/df07/go-diffuse-tracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material = core.Material

// ScatterResult contains the result of material scattering
type ScatterResult = core.ScatterResult
