package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/restresult/pkg/action/generate"
	"github.com/cmmoran/restresult/pkg/generator"
	"github.com/cmmoran/restresult/pkg/manifest"
)

var (
	ErrNoPrevious     = errors.New("no current/previous snapshots recorded")
	ErrInvalidVersion = errors.New("invalid snapshot version")
)

// Create generates expected results into <OutDir>/<version>/ and records the
// snapshot in the manifest.
func Create(opts *generator.Options, manifestPath, snapshotName, snapshotVersion string) (string, error) {
	if snapshotVersion == "" || snapshotVersion == ".." || strings.ContainsAny(snapshotVersion, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, snapshotVersion)
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	o := *opts
	o.Normalize()
	o.OutDir = filepath.Join(o.OutDir, snapshotVersion)

	outFile, n, err := generate.Generate(&o)
	if err != nil {
		return "", err
	}

	m.AddSnapshot(manifest.Snapshot{
		Name:      snapshotName,
		Version:   snapshotVersion,
		File:      outFile,
		Source:    o.InFile,
		Resources: n,
	})
	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious returns a textual diff from the previous snapshot's
// generated source to the current one. An empty string means no change.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", ErrNoPrevious
	}
	previous, current, ok := m.Pair()
	if !ok {
		return "", fmt.Errorf("snapshots %s and %s not both found in manifest", m.PreviousVersion, m.CurrentVersion)
	}

	cur, err := os.ReadFile(current.File)
	if err != nil {
		return "", fmt.Errorf("read current snapshot: %w", err)
	}
	prev, err := os.ReadFile(previous.File)
	if err != nil {
		return "", fmt.Errorf("read previous snapshot: %w", err)
	}

	return cmp.Diff(string(prev), string(cur)), nil
}
