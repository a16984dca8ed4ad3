package matrixio_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spanforest/matrixio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_RoundTrip(t *testing.T) {
	rows := [][]float64{
		{0, 1.5, 0},
		{1.5, 0, 2},
		{0, 2, 0},
	}
	for _, name := range []string{"m.npy", "m.json", "m.yaml", "m.yml", "m.csv", "m.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, matrixio.Save(path, rows))

			got, err := matrixio.Load(path)
			require.NoError(t, err)
			assert.Equal(t, rows, got)
		})
	}
}

func TestWrite_TextLayouts(t *testing.T) {
	rows := [][]float64{{0, 2}, {2, 0}}

	var buf bytes.Buffer
	require.NoError(t, matrixio.Write(&buf, rows, matrixio.FormatYAML))
	assert.Equal(t, "- [0, 2]\n- [2, 0]\n", buf.String())

	buf.Reset()
	require.NoError(t, matrixio.Write(&buf, rows, matrixio.FormatCSV))
	assert.Equal(t, "0,2\n2,0\n", buf.String())

	buf.Reset()
	require.NoError(t, matrixio.Write(&buf, rows, matrixio.FormatText))
	assert.Equal(t, "0 2\n2 0\n", buf.String())
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, matrixio.Write(&buf, nil, matrixio.FormatNPY), matrixio.ErrBadDims)
	assert.ErrorIs(t, matrixio.Write(&buf, [][]float64{{0, 1}, {1}}, matrixio.FormatNPY), matrixio.ErrBadDims)
	assert.ErrorIs(t, matrixio.Write(&buf, nil, matrixio.Format("xls")), matrixio.ErrUnsupportedFormat)
	assert.ErrorIs(t, matrixio.Save(filepath.Join(t.TempDir(), "m.xls"), nil), matrixio.ErrUnsupportedFormat)
}
