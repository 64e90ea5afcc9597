package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-diffuse-tracer/pkg/scene"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Name", "Objects", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{
			info.Name,
			fmt.Sprintf("%d", info.Objects),
			info.Description,
		})
	}
	table.Render()

	return nil
}
