package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-diffuse-tracer/pkg/config"
)

// NewApp assembles the command line interface
func NewApp() *cli.App {
	defaults := config.Default()

	// -v selects verbose logging, so --version gets no short alias
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-diffuse-tracer"
	app.Usage = "render sphere scenes with diffuse path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame to a png file",
			Description: `
Trace the selected built-in scene and write the frame as a PNG image.

Options may also be supplied through the environment or a .env file in the
working directory; command line flags take precedence.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:   "width",
					Value:  defaults.Width,
					Usage:  "frame width",
					EnvVar: config.EnvWidth,
				},
				cli.IntFlag{
					Name:   "height",
					Value:  defaults.Height,
					Usage:  "frame height",
					EnvVar: config.EnvHeight,
				},
				cli.IntFlag{
					Name:   "spp",
					Value:  defaults.Sampling.SamplesPerPixel,
					Usage:  "samples per pixel",
					EnvVar: config.EnvSPP,
				},
				cli.IntFlag{
					Name:   "max-depth",
					Value:  defaults.Sampling.MaxDepth,
					Usage:  "maximum rays traced per path",
					EnvVar: config.EnvMaxDepth,
				},
				cli.IntFlag{
					Name:   "workers",
					Value:  defaults.Sampling.Workers,
					Usage:  "parallel scanline workers (0 = one per cpu)",
					EnvVar: config.EnvWorkers,
				},
				cli.Int64Flag{
					Name:   "seed",
					Value:  defaults.Sampling.Seed,
					Usage:  "base random seed",
					EnvVar: config.EnvSeed,
				},
				cli.StringFlag{
					Name:   "scene",
					Value:  defaults.Scene,
					Usage:  "built-in scene name (see the scenes command)",
					EnvVar: config.EnvScene,
				},
				cli.StringFlag{
					Name:   "out, o",
					Value:  defaults.Out,
					Usage:  "image filename for the rendered frame",
					EnvVar: config.EnvOut,
				},
				cli.IntFlag{
					Name:   "thumbnail",
					Usage:  "also write a thumbnail of this width (0 = disabled)",
					EnvVar: config.EnvThumbnail,
				},
				cli.StringFlag{
					Name:   "s3-bucket",
					Usage:  "upload the frame to this bucket",
					EnvVar: config.EnvS3Bucket,
				},
				cli.StringFlag{
					Name:   "s3-region",
					Value:  "us-east-1",
					Usage:  "bucket region",
					EnvVar: config.EnvS3Region,
				},
				cli.StringFlag{
					Name:   "s3-endpoint",
					Usage:  "custom endpoint for S3 compatible stores",
					EnvVar: config.EnvS3Endpoint,
				},
				cli.StringFlag{
					Name:   "s3-access-key",
					Usage:  "static access key",
					EnvVar: config.EnvS3AccessKey,
				},
				cli.StringFlag{
					Name:   "s3-secret-key",
					Usage:  "static secret key",
					EnvVar: config.EnvS3SecretKey,
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
