package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/internal/logging"
	"github.com/katalvlaran/spanforest/matrix"
	"github.com/katalvlaran/spanforest/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangleCSV holds 0—1 (1), 1—2 (2), 0—2 (3).
const triangleCSV = "0,1,3\n1,0,2\n3,2,0\n"

func writeMatrix(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func testConfig() *config.Config {
	return &config.Config{Format: "text", OneIndexed: true, LogLevel: "warn", Epsilon: matrix.DefaultEpsilon}
}

func TestRunMST_Text(t *testing.T) {
	path := writeMatrix(t, "tri.csv", triangleCSV)

	for _, alg := range []string{"", prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		c := testConfig()
		c.Algorithm = alg

		var out bytes.Buffer
		require.NoError(t, runMST(&out, logging.Discard(), c, path))
		assert.Equal(t, "MST edges for "+path+": [(2, 1) (3, 2)]\ncost: 3\n", out.String(), alg)
	}
}

func TestRunMST_JSONZeroIndexed(t *testing.T) {
	path := writeMatrix(t, "tri.json", "[[0,1,3],[1,0,2],[3,2,0]]")
	c := testConfig()
	c.Format, c.OneIndexed = "json", false

	var out bytes.Buffer
	require.NoError(t, runMST(&out, logging.Discard(), c, path))

	var got treeReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "mst", got.Command)
	assert.Equal(t, prim_kruskal.MethodKruskal, got.Algorithm)
	assert.Equal(t, []core.Edge{{From: 1, To: 0, Weight: 1}, {From: 2, To: 1, Weight: 2}}, got.Edges)
	assert.Equal(t, 3.0, got.Cost)
}

func TestRunMST_Disconnected(t *testing.T) {
	path := writeMatrix(t, "islands.txt", "0 2 0 0\n2 0 0 0\n0 0 0 4\n0 0 4 0\n")

	var out, logs bytes.Buffer
	log, err := logging.New(&logs, "error")
	require.NoError(t, err)

	err = runMST(&out, log, testConfig(), path)
	assert.ErrorIs(t, err, core.ErrDisconnected)
	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "[ERROR]")
}

func TestRunMSF_Text(t *testing.T) {
	path := writeMatrix(t, "tri.csv", triangleCSV)

	var out bytes.Buffer
	require.NoError(t, runMSF(&out, logging.Discard(), testConfig(), path, 2))
	assert.Equal(t, "MSF with 2 trees for "+path+": [(2, 1)]\ncost: 1\ntrees: [[1 2] [3]]\n", out.String())
}

func TestRunMSF_JSON(t *testing.T) {
	path := writeMatrix(t, "tri.csv", triangleCSV)
	c := testConfig()
	c.Format = "json"

	var out bytes.Buffer
	require.NoError(t, runMSF(&out, logging.Discard(), c, path, 3))

	var got treeReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, prim_kruskal.MethodPrim, got.Algorithm)
	assert.Equal(t, 3, got.Trees)
	assert.Empty(t, got.Edges)
	assert.Equal(t, [][]int{{1}, {2}, {3}}, got.Components)
}

func TestRunMSF_InvalidSize(t *testing.T) {
	path := writeMatrix(t, "tri.csv", triangleCSV)

	err := runMSF(&bytes.Buffer{}, logging.Discard(), testConfig(), path, 4)
	assert.ErrorIs(t, err, core.ErrInvalidForestSize)
}

func TestRunPath_Text(t *testing.T) {
	path := writeMatrix(t, "tri.csv", triangleCSV)

	var out bytes.Buffer
	require.NoError(t, runPath(&out, logging.Discard(), testConfig(), path, 1, 3))
	assert.Equal(t, "Shortest path from 1 to 3: [1 3]\ncost: 3\nedges: [(1, 3)]\n", out.String())
}

func TestRunPath_JSONZeroIndexed(t *testing.T) {
	path := writeMatrix(t, "tri.csv", triangleCSV)
	c := testConfig()
	c.Format, c.OneIndexed = "json", false

	var out bytes.Buffer
	require.NoError(t, runPath(&out, logging.Discard(), c, path, 2, 0))

	var got pathReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []int{2, 0}, got.Vertices)
	assert.Equal(t, []core.Edge{{From: 2, To: 0, Weight: 3}}, got.Edges)
	assert.Equal(t, 3.0, got.Cost)
}

func TestRunPath_InvalidVertex(t *testing.T) {
	path := writeMatrix(t, "tri.csv", triangleCSV)

	err := runPath(&bytes.Buffer{}, logging.Discard(), testConfig(), path, 0, 3)
	require.ErrorIs(t, err, core.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "--source 0 not in [1, 3]")

	c := testConfig()
	c.OneIndexed = false
	err = runPath(&bytes.Buffer{}, logging.Discard(), c, path, 0, 3)
	require.ErrorIs(t, err, core.ErrInvalidIndex)
	assert.Contains(t, err.Error(), "--destination 3 not in [0, 2]")
}

func TestRunPath_BadMatrix(t *testing.T) {
	path := writeMatrix(t, "neg.csv", "0,-1\n-1,0\n")

	err := runPath(&bytes.Buffer{}, logging.Discard(), testConfig(), path, 1, 2)
	assert.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

// TestExecute drives the real command tree once, including config resolution.
func TestExecute(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	path := writeMatrix(t, "tri.csv", triangleCSV)
	t.Setenv("SPANFOREST_ALGORITHM", "prim")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"mst", "-m", path, "--format", "json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var got treeReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, prim_kruskal.MethodPrim, got.Algorithm)
	assert.Equal(t, []core.Edge{{From: 2, To: 1, Weight: 1}, {From: 3, To: 2, Weight: 2}}, got.Edges)
	assert.Empty(t, errOut.String())
}
