package generate

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cmmoran/restresult/pkg/fixture"
	"github.com/cmmoran/restresult/pkg/generator"
)

// Generate loads the fixture named by opts.InFile and writes the generated
// expected-results file. It returns the written path and the number of
// resources emitted.
func Generate(opts *generator.Options) (string, int, error) {
	g, err := generator.NewWithOpts(opts)
	if err != nil {
		return "", 0, err
	}

	set, err := fixture.Load(g.Opts.InFile)
	if err != nil {
		return "", 0, err
	}
	results, err := set.Build()
	if err != nil {
		return "", 0, fmt.Errorf("build resources: %w", err)
	}

	resources := make([]generator.Resource, len(results))
	for i, r := range results {
		resources[i] = generator.Resource{Name: set.Resources[i].Key(), Result: r}
	}

	var buf bytes.Buffer
	if err := g.Render(&buf, resources); err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(g.Opts.OutDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("create output directory: %w", err)
	}
	outFile := filepath.Clean(filepath.Join(g.Opts.OutDir, g.Opts.OutFile))
	if err := os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
		return "", 0, fmt.Errorf("write output file: %w", err)
	}

	slog.Info("generated expected results", "file", outFile, "resources", len(resources))
	return outFile, len(resources), nil
}
