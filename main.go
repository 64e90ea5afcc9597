package main

import (
	"fmt"
	"os"

	"github.com/df07/go-diffuse-tracer/cmd"
	"github.com/df07/go-diffuse-tracer/pkg/config"
)

func main() {
	// .env values become flag defaults through each flag's EnvVar
	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	if err := cmd.NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
