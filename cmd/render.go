package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-diffuse-tracer/pkg/config"
	"github.com/df07/go-diffuse-tracer/pkg/output"
	"github.com/df07/go-diffuse-tracer/pkg/renderer"
	"github.com/df07/go-diffuse-tracer/pkg/scene"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := optionsFromContext(ctx)
	if err := opts.Validate(); err != nil {
		return err
	}

	sc, err := scene.New(opts.Scene, opts.AspectRatio())
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q at %dx%d with %d spp", sc.Name, opts.Width, opts.Height, opts.Sampling.SamplesPerPixel)
	buffer, stats, err := renderer.Render(nil, opts.Width, opts.Height, sc.World, sc.Camera, opts.Sampling)
	if err != nil {
		return err
	}
	displayFrameStats(sc.Name, stats)

	img, err := output.BufferToImage(buffer, opts.Width, opts.Height)
	if err != nil {
		return err
	}

	start := time.Now()
	if err = output.WritePNG(opts.Out, img); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %s", opts.Out, time.Since(start))

	if opts.ThumbnailWidth > 0 {
		thumbName := output.ThumbnailName(opts.Out)
		if err = output.WritePNG(thumbName, output.Thumbnail(img, opts.ThumbnailWidth)); err != nil {
			return err
		}
		logger.Infof("wrote thumbnail to %s", thumbName)
	}

	if opts.S3.Enabled() {
		return publishFrame(opts, img)
	}
	return nil
}

// Upload the frame under its output file name.
func publishFrame(opts config.Options, img image.Image) error {
	publisher, err := output.NewS3Publisher(opts.S3)
	if err != nil {
		return err
	}

	data, err := output.EncodePNG(img)
	if err != nil {
		return err
	}

	return publisher.PublishPNG(context.Background(), filepath.Base(opts.Out), data)
}

func optionsFromContext(ctx *cli.Context) config.Options {
	opts := config.Default()
	opts.Width = ctx.Int("width")
	opts.Height = ctx.Int("height")
	opts.Sampling = renderer.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		Workers:         ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}
	opts.Scene = ctx.String("scene")
	opts.Out = ctx.String("out")
	opts.ThumbnailWidth = ctx.Int("thumbnail")
	opts.S3 = output.S3Config{
		Bucket:    ctx.String("s3-bucket"),
		Region:    ctx.String("s3-region"),
		Endpoint:  ctx.String("s3-endpoint"),
		AccessKey: ctx.String("s3-access-key"),
		SecretKey: ctx.String("s3-secret-key"),
	}
	return opts
}

func displayFrameStats(sceneName string, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Pixels", "Samples", "Avg spp", "Absorbed", "Degenerate", "Workers"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%.1f", stats.AverageSamples()),
		fmt.Sprintf("%d (%02.2f %%)", stats.AbsorbedPaths, 100*stats.AbsorbedFraction()),
		fmt.Sprintf("%d", stats.DegeneratePaths),
		fmt.Sprintf("%d", stats.Workers),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
