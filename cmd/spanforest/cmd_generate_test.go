package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/internal/logging"
	"github.com/katalvlaran/spanforest/matrixio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate_RoundTripThroughMSF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "c.npy")
	spec := generateSpec{
		Shape: "clusters", Vertices: 9, Seed: 3,
		MinWeight: 1, MaxWeight: 9, Clusters: 3, Bridge: 50,
		Output: out,
	}

	var report bytes.Buffer
	require.NoError(t, runGenerate(&report, logging.Discard(), testConfig(), spec))
	assert.Equal(t, "wrote 9×9 clusters matrix with 11 edges to "+out+"\n", report.String())

	var msf bytes.Buffer
	require.NoError(t, runMSF(&msf, logging.Discard(), testConfig(), out, 3))
	assert.Contains(t, msf.String(), "trees: [[1 2 3] [4 5 6] [7 8 9]]")
}

func TestRunGenerate_ConnectedRandom(t *testing.T) {
	out := filepath.Join(t.TempDir(), "r.csv")
	spec := generateSpec{
		Shape: "random", Vertices: 30, Seed: 5, MinWeight: 1, MaxWeight: 20,
		Probability: 0.05, Connected: true, Output: out,
	}
	require.NoError(t, runGenerate(&bytes.Buffer{}, logging.Discard(), testConfig(), spec))

	m, err := matrixio.LoadWeighted(out)
	require.NoError(t, err)
	assert.Equal(t, 30, m.Order())
	require.NoError(t, runMST(&bytes.Buffer{}, logging.Discard(), testConfig(), out))
}

func TestRunGenerate_Errors(t *testing.T) {
	dir := t.TempDir()
	base := generateSpec{Shape: "cycle", Vertices: 5, MinWeight: 1, MaxWeight: 3, Output: filepath.Join(dir, "g.json")}

	bad := base
	bad.Shape = "torus"
	assert.ErrorContains(t, runGenerate(&bytes.Buffer{}, logging.Discard(), testConfig(), bad), "unknown --shape")

	bad = base
	bad.MinWeight = 0
	assert.ErrorContains(t, runGenerate(&bytes.Buffer{}, logging.Discard(), testConfig(), bad), "weight range")

	bad = base
	bad.Vertices = 2
	assert.ErrorIs(t, runGenerate(&bytes.Buffer{}, logging.Discard(), testConfig(), bad), builder.ErrTooFewVertices)

	bad = base
	bad.Output = filepath.Join(dir, "g.xlsx")
	assert.ErrorIs(t, runGenerate(&bytes.Buffer{}, logging.Discard(), testConfig(), bad), matrixio.ErrUnsupportedFormat)

	// a disconnected random graph is generated fine but has no MST
	sparse := generateSpec{Shape: "random", Vertices: 6, Probability: 0, MinWeight: 1, MaxWeight: 1, Output: filepath.Join(dir, "s.txt")}
	require.NoError(t, runGenerate(&bytes.Buffer{}, logging.Discard(), testConfig(), sparse))
	assert.ErrorIs(t, runMST(&bytes.Buffer{}, logging.Discard(), testConfig(), sparse.Output), core.ErrDisconnected)
}
