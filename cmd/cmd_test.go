package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "trace", want: LevelTrace},
		{in: "TRACE", want: LevelTrace},
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "debug+1", want: slog.LevelDebug + 1},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "resources.yaml")
	require.NoError(t, os.WriteFile(in, []byte("resources:\n  - resource_path: users\n"), 0o644))
	outDir := filepath.Join(dir, "fixtures")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "-i", in, "-o", outDir, "-p", "fixtures"})
	require.NoError(t, rootCmd.Execute())

	assert.FileExists(t, filepath.Join(outDir, "expected_gen.go"))
	assert.Contains(t, out.String(), "wrote 1 resource(s)")
}

func TestPrintDiff(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	printDiff(&buf, "  string(\n- \t\"a\",\n+ \t\"b\",\n  )\n")
	assert.Equal(t, "  string(\n- \t\"a\",\n+ \t\"b\",\n  )\n", buf.String())
}
