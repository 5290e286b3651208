package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	infrafs "ifc2frag/internal/infra/fs"
)

func TestDiscoverMatchesExtensionCaseInsensitively(t *testing.T) {
	ws := newWorkspace(t)
	ws.addInput(t, "b.IFC", 20)
	ws.addInput(t, "a.ifc", 10)
	ws.addInput(t, "c.Ifc", 30)
	writeFile(t, filepath.Join(ws.source, "notes.txt"), 1)
	writeFile(t, filepath.Join(ws.source, "a.ifczip"), 1)
	require.NoError(t, os.Mkdir(filepath.Join(ws.source, "nested.ifc"), 0o755))

	inputs, err := Discover(infrafs.OSFS{}, ws.source)
	require.NoError(t, err)

	var names []string
	for _, in := range inputs {
		names = append(names, in.Name)
	}
	require.Equal(t, []string{"a.ifc", "b.IFC", "c.Ifc"}, names)
	require.Equal(t, int64(20), inputs[1].SizeBytes)
	require.Equal(t, "b", inputs[1].Stem)
	require.Equal(t, int64(60), totalInputBytes(inputs))
}

func TestDiscoverEmptyDirectory(t *testing.T) {
	ws := newWorkspace(t)

	inputs, err := Discover(infrafs.OSFS{}, ws.source)
	require.NoError(t, err)
	require.Empty(t, inputs)
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := Discover(infrafs.OSFS{}, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
