// Package goldberg turns scene scripts into render-ready Goldberg and
// geodesic polyhedron meshes and writes them to mesh files.
package goldberg

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/chazu/goldberg/pkg/config"
	"github.com/chazu/goldberg/pkg/engine"
	"github.com/chazu/goldberg/pkg/export"
	"github.com/chazu/goldberg/pkg/kernel"
	"github.com/chazu/goldberg/pkg/kernel/geodesic"
	"github.com/chazu/goldberg/pkg/polyhedron"
	"github.com/chazu/goldberg/pkg/tessellate"
)

// App runs the script → graph → mesh → file pipeline.
type App struct {
	cfg     config.Config
	engine  *engine.Engine
	kernel  kernel.Kernel
	logger  *slog.Logger
	palette []string
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger for pipeline errors. The default is
// polyhedron.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// WithKernel replaces the geodesic kernel.
func WithKernel(k kernel.Kernel) Option {
	return func(a *App) {
		a.kernel = k
	}
}

// MeshData is the JSON-serializable mesh format handed to consumers.
type MeshData struct {
	Vertices []float32  `json:"vertices"`
	Normals  []float32  `json:"normals"`
	Indices  []uint32   `json:"indices"`
	Faces    [][]uint32 `json:"faces,omitempty"`
	PartName string     `json:"partName"`
	Color    string     `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// OK reports whether the evaluation produced no errors.
func (r EvalResult) OK() bool {
	return len(r.Errors) == 0
}

// NewApp resolves cfg and wires an engine and a geodesic kernel from it.
func NewApp(cfg config.Config, opts ...Option) (*App, error) {
	cfg.Resolve(config.Flags{Detail: -1})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defaults, err := cfg.GraphDefaults()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		engine:  engine.NewEngine(engine.WithTimeout(timeout), engine.WithDefaults(defaults)),
		kernel:  geodesic.New(polyhedron.WithPrecision(cfg.Precision)),
		palette: cfg.Palette,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = polyhedron.Logger()
	}
	return a, nil
}

// Config returns the resolved configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Evaluate takes scene source and returns mesh data, errors and warnings.
func (a *App) Evaluate(source string) EvalResult {
	result, _ := a.evaluate(source)
	return result
}

// evaluate also returns the kernel meshes for export.
func (a *App) evaluate(source string) (EvalResult, []*kernel.Mesh) {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the source into a scene graph.
	full, err := a.engine.EvaluateFull(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		a.logger.Error("evaluate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result, nil
	}

	for _, w := range full.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{
			Line:    w.Line,
			Col:     w.Col,
			Message: w.Message,
		})
	}

	// Step 2: Convert eval errors.
	if len(full.Errors) > 0 {
		for _, e := range full.Errors {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result, nil
	}

	// Step 3: Tessellate the graph into triangle meshes.
	meshes, err := tessellate.Tessellate(full.Graph, a.kernel)
	if err != nil {
		a.logger.Error("tessellate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result, nil
	}

	// Step 4: Convert kernel meshes, one palette color per part.
	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Faces:    m.Faces,
			PartName: m.PartName,
			Color:    export.PaletteColor(a.palette, i).Hex(),
		})
	}

	return result, meshes
}

// Export evaluates source and writes its parts to path. An empty format
// or path falls back to the configured export settings. Script errors are
// reported in the result and yield a nil error with nothing written.
func (a *App) Export(source string, format export.Format, path string) (EvalResult, error) {
	if format == "" {
		f, err := a.cfg.Format()
		if err != nil {
			return EvalResult{}, err
		}
		format = f
	}
	if path == "" {
		path = a.cfg.Export.Path
	}

	result, meshes := a.evaluate(source)
	if !result.OK() {
		return result, nil
	}

	parts := make([]export.Part, len(meshes))
	for i, m := range meshes {
		parts[i] = export.Part{Mesh: m, Color: export.PaletteColor(a.palette, i)}
	}

	var colors export.ColorSource
	if a.cfg.Export.VertexColors {
		colors = rand.New(rand.NewSource(a.cfg.Seed))
	}

	if err := export.Export(format, path, parts, colors); err != nil {
		a.logger.Error("export failed", "format", format, "path", path, "err", err)
		return result, fmt.Errorf("goldberg: export %s: %w", path, err)
	}
	a.logger.Info("exported", "format", format, "path", path, "parts", len(parts))
	return result, nil
}
