package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/orbitview"
)

const dragTrace = `view_width: 200
view_height: 100
events:
  - action: down
    pointers: [[100, 50]]
  - action: move
    pointers: [[100, 50]]
  - action: move
    pointers: [[90, 50]]
  - action: move
    pointers: [[80, 50]]
  - action: up
    pointers: [[80, 50]]
`

const tapTrace = `view_width: 50
view_height: 50
events:
  - action: down
    pointers: [[10, 10]]
  - action: up
    pointers: [[10, 10]]
`

func writeTrace(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	drag := writeTrace(t, dir, "drag.yaml", dragTrace)
	tap := writeTrace(t, dir, "tap.yaml", tapTrace)

	var out bytes.Buffer
	require.NoError(t, run(&out, orbitview.NewNopLogger(), "", []string{drag, tap}, dir))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "# "+drag, lines[0])
	assert.Contains(t, lines[3], "none")
	assert.Contains(t, lines[4], "orbit")
	assert.Contains(t, lines[5], "up")
	assert.Equal(t, "# "+tap, lines[6])

	f, err := os.Open(filepath.Join(dir, "drag.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
	assert.FileExists(t, filepath.Join(dir, "tap.png"))
}

func TestRun_MissingTraceStillReportsOthers(t *testing.T) {
	dir := t.TempDir()
	tap := writeTrace(t, dir, "tap.yaml", tapTrace)

	var out bytes.Buffer
	err := run(&out, orbitview.NewNopLogger(), "", []string{filepath.Join(dir, "missing.yaml"), tap}, "")
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, out.String(), "# "+tap)
}

func TestRun_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "viewer.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[camera]\nnear = -1.0\n"), 0o644))

	err := run(&bytes.Buffer{}, orbitview.NewNopLogger(), cfgPath, []string{filepath.Join(dir, "x.yaml")}, "")
	assert.ErrorIs(t, err, orbitview.ErrInvalidConfig)
}

func TestPlotNames(t *testing.T) {
	names := plotNames([]string{"a/drag.yaml", "b/drag.yaml", "tap.yml", "c/drag.yaml", "drag-2"})
	assert.Equal(t, []string{"drag", "drag-2", "tap", "drag-4", "drag-2-5"}, names)

	assert.Equal(t, []string{"x-3", "x", "x-4"}, plotNames([]string{"x-3.yaml", "x.yaml", "x.yaml"}))
}

func TestRun_SameBaseNameGetsSeparatePlots(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o755))
	first := writeTrace(t, filepath.Join(dir, "a"), "t.yaml", dragTrace)
	second := writeTrace(t, filepath.Join(dir, "b"), "t.yaml", tapTrace)

	plots := t.TempDir()
	require.NoError(t, run(&bytes.Buffer{}, orbitview.NewNopLogger(), "", []string{first, second}, plots))

	for name, width := range map[string]int{"t.png": 200, "t-2.png": 50} {
		f, err := os.Open(filepath.Join(plots, name))
		require.NoError(t, err, name)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, name)
		assert.Equal(t, width, img.Bounds().Dx(), name)
	}
}
