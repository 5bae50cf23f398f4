// Command goldberg evaluates a scene script and writes its polyhedra to a
// mesh file.
//
// Usage:
//
//	go run ./cmd/goldberg [flags] [script.goldberg]
//
// Without a script a single default sphere is exported.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/chazu/goldberg"
	"github.com/chazu/goldberg/pkg/config"
	"github.com/chazu/goldberg/pkg/polyhedron"
)

const defaultScript = `(sphere)`

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	radius := flag.Float64("radius", 0, "Default shape radius (default: 1)")
	detail := flag.Int("detail", -1, "Default subdivision level (default: 1)")
	shape := flag.String("shape", "", "Default shape: goldberg or icosahedron")
	format := flag.String("format", "", "Output format: stl, glb or dae (default: from -output, else glb)")
	output := flag.String("output", "", "Output file (default: out/sphere.glb)")
	seed := flag.Int64("seed", 0, "Vertex color seed (default: 1)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Radius: *radius,
		Detail: *detail,
		Shape:  *shape,
		Format: *format,
		Output: *output,
		Seed:   *seed,
	})

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	polyhedron.SetLogger(logger)

	source := defaultScript
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
			os.Exit(1)
		}
		source = string(data)
	}

	app, err := goldberg.NewApp(cfg, goldberg.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	result, err := app.Export(source, "", "")

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: line %d: %s\n", w.Line, w.Message)
	}
	if !result.OK() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: line %d:%d: %s\n", e.Line, e.Col, e.Message)
		}
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	resolved := app.Config()
	triangles := 0
	for _, m := range result.Meshes {
		triangles += len(m.Indices) / 3
	}
	fmt.Printf("Parts: %d, Triangles: %d\n", len(result.Meshes), triangles)
	fmt.Printf("Output: %s (%s)\n", resolved.Export.Path, resolved.Export.Format)
	fmt.Printf("Elapsed: %s\n", time.Since(start).Round(time.Millisecond))
}
