package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/df07/go-diffuse-tracer/pkg/output"
	"github.com/df07/go-diffuse-tracer/pkg/renderer"
)

// ErrInvalidOption is returned by Validate for out of range settings
var ErrInvalidOption = errors.New("config: invalid option")

// Environment variables recognized as option defaults
const (
	EnvWidth     = "TRACER_WIDTH"
	EnvHeight    = "TRACER_HEIGHT"
	EnvSPP       = "TRACER_SPP"
	EnvMaxDepth  = "TRACER_MAX_DEPTH"
	EnvWorkers   = "TRACER_WORKERS"
	EnvSeed      = "TRACER_SEED"
	EnvScene     = "TRACER_SCENE"
	EnvOut       = "TRACER_OUT"
	EnvThumbnail = "TRACER_THUMBNAIL"

	EnvS3Bucket    = "S3_BUCKET"
	EnvS3Region    = "S3_REGION"
	EnvS3Endpoint  = "S3_ENDPOINT"
	EnvS3AccessKey = "S3_ACCESS_KEY"
	EnvS3SecretKey = "S3_SECRET_KEY"
)

// Options holds everything a render run needs. It is fixed before the
// frame starts and never changes mid-render.
type Options struct {
	Width          int
	Height         int
	Sampling       renderer.SamplingConfig
	Scene          string
	Out            string
	ThumbnailWidth int
	S3             output.S3Config
}

// Default returns the options used when nothing is configured
func Default() Options {
	return Options{
		Width:    640,
		Height:   360,
		Sampling: renderer.DefaultSamplingConfig(),
		Scene:    "default",
		Out:      "frame.png",
	}
}

// LoadEnv loads variables from the given .env files into the process
// environment. Variables that are already set win. Missing files are
// ignored; malformed ones are reported.
func LoadEnv(filenames ...string) error {
	var existing []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: failed to load env file: %w", err)
	}
	return nil
}

// AspectRatio returns width / height
func (o Options) AspectRatio() float64 {
	return float64(o.Width) / float64(o.Height)
}

// Validate rejects settings the renderer cannot honor
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: resolution %dx%d", ErrInvalidOption, o.Width, o.Height)
	case o.Sampling.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidOption, o.Sampling.SamplesPerPixel)
	case o.Sampling.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidOption, o.Sampling.MaxDepth)
	case o.Sampling.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidOption, o.Sampling.Workers)
	case o.ThumbnailWidth < 0:
		return fmt.Errorf("%w: thumbnail width %d", ErrInvalidOption, o.ThumbnailWidth)
	case o.Scene == "":
		return fmt.Errorf("%w: empty scene name", ErrInvalidOption)
	case o.Out == "":
		return fmt.Errorf("%w: empty output filename", ErrInvalidOption)
	}
	return nil
}
