package apicov

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Standard input locations, relative to the project root. The tool takes no
// flags or environment variables; these mirror the repository layout it
// reports on.
const (
	SpecFile     = "swagger.yaml"
	ImplFile     = "crates/mcp-server/src/main.rs"
	RegistryFile = "crates/core/src/tools/registry.rs"
)

// Analyzer runs the whole pipeline: parse the swagger spec, scan the server
// and registry sources, join them through the route mapping, and render the
// report.
type Analyzer struct {
	SpecPath     string
	ImplPath     string
	RegistryPath string
	Out          io.Writer
	Logger       func(format string, args ...any)
}

// NewAnalyzer returns an Analyzer wired to the standard input files under
// root, reporting to stdout. The logger is silent by default so the report
// stays byte-identical across runs; inject one for diagnostics.
func NewAnalyzer(root string) *Analyzer {
	return &Analyzer{
		SpecPath:     filepath.Join(root, SpecFile),
		ImplPath:     filepath.Join(root, filepath.FromSlash(ImplFile)),
		RegistryPath: filepath.Join(root, filepath.FromSlash(RegistryFile)),
		Out:          os.Stdout,
		Logger:       func(format string, args ...any) {},
	}
}

// Run executes the analysis and renders the report. It returns the number of
// mapped routes with at least one missing tool. Any error is fatal and
// produces no partial report.
func (a *Analyzer) Run() (missing int, err error) {
	routes, err := ParseSwaggerFile(a.SpecPath)
	if err != nil {
		return 0, err
	}
	a.Logger("parsed %d swagger routes from %s\n", len(routes), a.SpecPath)

	implSource, err := os.ReadFile(a.ImplPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceRead, err)
	}
	implemented, tools := ScanImplementation(string(implSource))
	a.Logger("found %d implemented tools, %d with endpoints\n", len(implemented), len(tools))

	registrySource, err := os.ReadFile(a.RegistryPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSourceRead, err)
	}
	registry := ScanRegistry(string(registrySource))
	a.Logger("found %d registry tools\n", len(registry))

	cov := Analyze(routes, implemented, RouteMapping(), registry)
	if err := cov.WriteReport(a.Out); err != nil {
		return 0, err
	}

	return len(cov.Missing), nil
}

// FindProjectRoot walks up from start until it finds a directory holding the
// swagger spec.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, SpecFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s found above %s", ErrSpecLoad, SpecFile, start)
		}
		dir = parent
	}
}
