package renderer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-diffuse-tracer/pkg/core"
	"github.com/df07/go-diffuse-tracer/pkg/integrator"
	"github.com/df07/go-diffuse-tracer/pkg/log"
)

var (
	ErrInvalidDimensions  = errors.New("renderer: width and height must be positive")
	ErrInvalidSampleCount = errors.New("renderer: samples per pixel must be positive")
	ErrNilScene           = errors.New("renderer: world and camera are required")
)

const (
	// Primary and bounce rays ignore intersections closer than this to
	// their origin so a bounce does not re-hit the surface it left.
	rayEpsilon = 0.001

	// Unbounded far clip
	rayFar = math.MaxFloat64
)

var logger = log.New("renderer")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum rays traced per path
	Workers         int   // Parallel scanline workers, 0 selects runtime.NumCPU
	Seed            int64 // Base seed for the per-pixel random streams
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		MaxDepth:        integrator.DefaultMaxDepth,
		Workers:         0,
		Seed:            42,
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	world      core.Hitable
	camera     *Camera
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world core.Hitable, camera *Camera, width, height int) *Raytracer {
	config := DefaultSamplingConfig()
	return &Raytracer{
		world:      world,
		camera:     camera,
		width:      width,
		height:     height,
		config:     config,
		integrator: integrator.NewDiffuseIntegrator(config.MaxDepth),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	if d, ok := rt.integrator.(*integrator.DiffuseIntegrator); ok {
		rt.integrator = &integrator.DiffuseIntegrator{
			MaxDepth:        depthOrDefault(config.MaxDepth),
			Background:      d.Background,
			DefaultMaterial: d.DefaultMaterial,
		}
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

func depthOrDefault(depth int) int {
	if depth <= 0 {
		return integrator.DefaultMaxDepth
	}
	return depth
}

func (rt *Raytracer) validate() error {
	if rt.width <= 0 || rt.height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rt.width, rt.height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, rt.config.SamplesPerPixel)
	}
	if rt.world == nil || rt.camera == nil {
		return ErrNilScene
	}
	return nil
}

// RenderInto renders a full frame into buffer, which is reused when it holds
// exactly width*height pixels and reallocated otherwise. Pixels are stored
// row by row with row 0 at the top of the image.
func (rt *Raytracer) RenderInto(buffer []uint32) ([]uint32, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return buffer, RenderStats{}, err
	}

	if len(buffer) != rt.width*rt.height {
		buffer = make([]uint32, rt.width*rt.height)
	}

	start := time.Now()
	logger.Debugf("rendering %dx%d frame at %d spp", rt.width, rt.height, rt.config.SamplesPerPixel)

	pool := NewWorkerPool(rt, buffer, rt.config.Workers)
	stats := pool.Run()
	stats.Duration = time.Since(start)

	logger.Debugf("rendered frame in %s using %d workers", stats.Duration, stats.Workers)
	return buffer, stats, nil
}

// renderRow fills one scanline of buffer
func (rt *Raytracer) renderRow(y int, buffer []uint32) RenderStats {
	stats := RenderStats{}
	row := buffer[y*rt.width : (y+1)*rt.width]

	for x := 0; x < rt.width; x++ {
		random := rand.New(rand.NewSource(core.PixelSeed(rt.config.Seed, x, y)))
		color, pixelStats := rt.samplePixel(x, y, random)
		row[x] = EncodeARGB(color)
		stats.add(pixelStats)
	}

	return stats
}

// samplePixel averages SamplesPerPixel jittered samples for pixel (x, y).
// v is flipped so that row 0 maps to the top of the viewport.
func (rt *Raytracer) samplePixel(x, y int, random *rand.Rand) (core.Vec3, RenderStats) {
	stats := RenderStats{TotalPixels: 1}
	colorAccum := core.Vec3{}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(x) + random.Float64()) / float64(rt.width)
		v := 1.0 - (float64(y)+random.Float64())/float64(rt.height)

		ray := rt.camera.GetRay(u, v)
		color, err := rt.integrator.Trace(ray, rt.world, rayEpsilon, rayFar, random)
		switch {
		case errors.Is(err, integrator.ErrMaxDepthExceeded):
			stats.AbsorbedPaths++
		case errors.Is(err, core.ErrDegenerateVector):
			stats.DegeneratePaths++
		}

		colorAccum = colorAccum.Add(color)
		stats.TotalSamples++
	}

	return colorAccum.Divide(float64(rt.config.SamplesPerPixel)), stats
}

// EncodeARGB packs a linear color into 0xAARRGGBB with full opacity.
// Components are clamped to [0, 1] before scaling so overbright or negative
// values saturate instead of wrapping. NaN channels encode as 0.
func EncodeARGB(color core.Vec3) uint32 {
	c := color.Clamp(0.0, 1.0)
	r := uint32(255 * c.X)
	g := uint32(255 * c.Y)
	b := uint32(255 * c.Z)
	return 255<<24 | r<<16 | g<<8 | b
}

// DecodeARGB unpacks a 0xAARRGGBB pixel into its channels
func DecodeARGB(pixel uint32) (a, r, g, b uint8) {
	return uint8(pixel >> 24), uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}

// Render is the single-call entry point used by frame consumers: it renders
// world as seen by camera into buffer and returns the filled buffer.
func Render(buffer []uint32, width, height int, world core.Hitable, camera *Camera, config SamplingConfig) ([]uint32, RenderStats, error) {
	rt := NewRaytracer(world, camera, width, height)
	rt.SetSamplingConfig(config)
	return rt.RenderInto(buffer)
}
