// Package manifest persists the list of generated expected-result snapshots.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Snapshot is one generated expected-results file and the fixture it came from.
type Snapshot struct {
	Name      string `yaml:"name" json:"name"`
	Version   string `yaml:"version" json:"version"`
	File      string `yaml:"file" json:"file"`
	Source    string `yaml:"source,omitempty" json:"source,omitempty"`
	Resources int    `yaml:"resources" json:"resources"`
}

func (s Snapshot) same(o Snapshot) bool {
	return s.Name == o.Name && s.Version == o.Version
}

// Manifest lists snapshots and points at the current and previous versions.
type Manifest struct {
	CurrentVersion  string     `yaml:"current_version" json:"current_version"`
	PreviousVersion string     `yaml:"previous_version" json:"previous_version"`
	Snapshots       []Snapshot `yaml:"snapshots" json:"snapshots"`
}

// Load reads the manifest at path. Missing and empty files give an empty
// manifest.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m := &Manifest{}
	if err := yaml.NewDecoder(f).Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	return m, nil
}

// Save encodes the manifest and writes it to path.
func (m *Manifest) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create manifest directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// AddSnapshot makes s the current version. Recording a version that is
// already current replaces its entry and leaves PreviousVersion alone.
func (m *Manifest) AddSnapshot(s Snapshot) {
	if m.CurrentVersion != s.Version {
		if m.CurrentVersion != "" {
			m.PreviousVersion = m.CurrentVersion
		}
		m.CurrentVersion = s.Version
	}

	if i := slices.IndexFunc(m.Snapshots, s.same); i >= 0 {
		m.Snapshots[i] = s
		return
	}
	m.Snapshots = append(m.Snapshots, s)
}

// Find returns the snapshot recorded for version.
func (m *Manifest) Find(version string) (Snapshot, bool) {
	i := slices.IndexFunc(m.Snapshots, func(s Snapshot) bool { return s.Version == version })
	if i < 0 {
		return Snapshot{}, false
	}
	return m.Snapshots[i], true
}

// Pair returns the previous and current snapshots. ok is false until two
// distinct versions have been recorded and both are still listed.
func (m *Manifest) Pair() (previous, current Snapshot, ok bool) {
	if m.PreviousVersion == "" || m.CurrentVersion == "" {
		return Snapshot{}, Snapshot{}, false
	}
	previous, okPrev := m.Find(m.PreviousVersion)
	current, okCur := m.Find(m.CurrentVersion)
	return previous, current, okPrev && okCur
}

// Role reports "current" or "previous" for the versions the manifest points
// at, and "" for any other version.
func (m *Manifest) Role(version string) string {
	switch version {
	case "":
		return ""
	case m.CurrentVersion:
		return "current"
	case m.PreviousVersion:
		return "previous"
	}
	return ""
}
