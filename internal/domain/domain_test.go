package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInputFile(t *testing.T) {
	in := NewInputFile("/data/ifc/Tower.Block-A.IFC", 2048)

	require.Equal(t, "Tower.Block-A.IFC", in.Name)
	require.Equal(t, "Tower.Block-A", in.Stem)
	require.Equal(t, int64(2048), in.SizeBytes)
	require.Equal(t, "Tower.Block-A.frag", FragmentName(in))
}

func TestIsInputExtension(t *testing.T) {
	require.True(t, IsInputExtension(".ifc"))
	require.True(t, IsInputExtension(".IFC"))
	require.True(t, IsInputExtension(".Ifc"))
	require.False(t, IsInputExtension(".ifczip"))
	require.False(t, IsInputExtension(".frag"))
	require.False(t, IsInputExtension(""))
}

func TestCompressionRatio(t *testing.T) {
	tests := []struct {
		name    string
		in, out int64
		want    float64
	}{
		{name: "quarter size", in: 1000, out: 250, want: 75},
		{name: "same size", in: 1000, out: 1000, want: 0},
		{name: "larger output", in: 100, out: 150, want: -50},
		{name: "empty input", in: 0, out: 10, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, CompressionRatio(tt.in, tt.out), 1e-9)
		})
	}
}

func TestCountsAdd(t *testing.T) {
	var c Counts
	for _, r := range []ConversionResult{
		Succeeded{File: "a.ifc"},
		Failed{File: "b.ifc"},
		Skipped{File: "c.ifc"},
		Succeeded{File: "d.ifc"},
	} {
		c.Add(r)
	}

	require.Equal(t, Counts{Successful: 2, Failed: 1, Skipped: 1}, c)
	require.Equal(t, 4, c.Total())
}

func TestResultStatus(t *testing.T) {
	require.Equal(t, StatusSuccess, Succeeded{}.Status())
	require.Equal(t, StatusFailed, Failed{}.Status())
	require.Equal(t, StatusSkipped, Skipped{}.Status())
}
