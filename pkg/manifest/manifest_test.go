package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSnapshot(t *testing.T) {
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Name: "api", Version: "v1", File: "a_v1.go"})
	assert.Equal(t, "v1", m.CurrentVersion)
	assert.Empty(t, m.PreviousVersion)

	m.AddSnapshot(Snapshot{Name: "api", Version: "v2", File: "a_v2.go"})
	assert.Equal(t, "v2", m.CurrentVersion)
	assert.Equal(t, "v1", m.PreviousVersion)

	m.AddSnapshot(Snapshot{Name: "api", Version: "v2", File: "a_v2b.go"})
	assert.Equal(t, "v1", m.PreviousVersion, "re-recording keeps the previous pointer")
	require.Len(t, m.Snapshots, 2)

	s, ok := m.Find("v2")
	require.True(t, ok)
	assert.Equal(t, "a_v2b.go", s.File)

	_, ok = m.Find("v3")
	assert.False(t, ok)
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manifest.yaml")

	empty, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, empty.Snapshots)

	m := &Manifest{}
	m.AddSnapshot(Snapshot{Name: "api", Version: "v1", File: "f.go", Source: "resources.yaml", Resources: 3})
	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(m, loaded); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, m.CurrentVersion)
	assert.Empty(t, m.Snapshots)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snapshots: {"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPairAndRole(t *testing.T) {
	m := &Manifest{}
	_, _, ok := m.Pair()
	assert.False(t, ok)

	m.AddSnapshot(Snapshot{Name: "api", Version: "v1", File: "v1/f.go", Source: "a.yaml", Resources: 1})
	_, _, ok = m.Pair()
	assert.False(t, ok, "a single version has nothing to pair with")

	m.AddSnapshot(Snapshot{Name: "api", Version: "v2", File: "v2/f.go", Source: "a.yaml", Resources: 2})
	prev, cur, ok := m.Pair()
	require.True(t, ok)
	assert.Equal(t, "v1/f.go", prev.File)
	assert.Equal(t, 2, cur.Resources)

	assert.Equal(t, "current", m.Role("v2"))
	assert.Equal(t, "previous", m.Role("v1"))
	assert.Empty(t, m.Role("v0"))
	assert.Empty(t, m.Role(""))

	m.Snapshots = m.Snapshots[1:]
	_, _, ok = m.Pair()
	assert.False(t, ok, "previous entry no longer listed")
}
