package render

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdfx-labs/tetvox/tetvox"
	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

func sampleGrid(t *testing.T) *tetvox.Grid {
	t.Helper()
	v0 := v3.Vec{}
	v1 := v3.Vec{X: 1}
	v2 := v3.Vec{Y: 1}
	v3_ := v3.Vec{Z: 1}
	faces, err := tetvox.FacesFromTet(v0, v1, v2, v3_)
	require.NoError(t, err)

	g := tetvox.NewGrid(v3.Vec{X: 0.25, Y: 0.25, Z: 0.25}, v3i.Vec{X: 4, Y: 4, Z: 4}, 0)
	require.NoError(t, tetvox.VoxelizeDense(faces, g, nil))
	return g
}

func TestHeatColorClamps(t *testing.T) {
	r, g, b := heatColor(-1)
	assert.Equal(t, uint8(0), r)
	_ = g
	_ = b
	r, _, b2 := heatColor(2)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), b2)
}

func TestWriteSliceSVG(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSliceSVG(&buf, g, 0, 8))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "<rect")
}

func TestWriteSliceSVGRejectsOutOfRangeLayer(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	assert.Error(t, WriteSliceSVG(&buf, g, 99, 8))
}

func TestWriteSlicePNG(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSlicePNG(&buf, g, 0, 8))
	assert.Greater(t, buf.Len(), 0)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestWriteSliceDXF(t *testing.T) {
	g := sampleGrid(t)
	path := filepath.Join(t.TempDir(), "slice.dxf")
	require.NoError(t, WriteSliceDXF(path, g, 0))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWrite3MF(t *testing.T) {
	g := sampleGrid(t)
	var buf bytes.Buffer
	require.NoError(t, Write3MF(&buf, g))
	assert.Greater(t, buf.Len(), 0)
}
