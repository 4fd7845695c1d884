// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"polyui.org/layout"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestTransforms(t *testing.T) {
	out, err := execute(t, "--format", "transforms", "-W", "80", "-H", "24")
	require.NoError(t, err)
	want := []string{
		"toolbar  Leaf   (0,0)-(20,3)",
		"sidebar  Leaf   (0,3)-(20,21)",
		"content  Grid   (20,3)-(80,21)",
		"editor   Leaf   (20,3)-(60,21)",
		"preview  Leaf   (60,3)-(80,21)",
		"status   Leaf   (0,21)-(20,24)",
	}
	require.Equal(t, strings.Join(want, "\n")+"\n", out)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("POLYUI_FORMAT", "transforms")
	t.Setenv("POLYUI_WIDTH", "80")
	t.Setenv("POLYUI_HEIGHT", "24")
	out, err := execute(t)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "toolbar  Leaf   (0,0)-(20,3)\n"))

	// Flags win over the environment.
	out, err = execute(t, "-W", "40")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "toolbar  Leaf   (0,0)-(10,3)\n"))
}

func TestText(t *testing.T) {
	out, err := execute(t, "-W", "80", "-H", "24", "--color", "never")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 24)
	require.True(t, strings.HasPrefix(lines[0], "┌──"))
	require.Contains(t, lines[1], "toolbar")
	require.Contains(t, lines[4], "editor")
	require.NotContains(t, out, "\x1b[")
}

func TestImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	_, err := execute(t, "--format", "png", "-W", "320", "-H", "200", "-o", path)
	require.NoError(t, err)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 320, 200), img.Bounds())
}

func TestGridFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
columns:
  - max: 10
cells:
  - {name: a, column: 0, row: 0}
`), 0o644))
	_, err := execute(t, path, "--format", "transforms", "-W", "80", "-H", "24")
	require.True(t, errors.Is(err, layout.ErrInvalidConstraints))

	out, err := execute(t, path, "--format", "transforms", "-W", "10", "-H", "4")
	require.NoError(t, err)
	require.Equal(t, "a  Leaf   (0,0)-(10,4)\n", out)
}

func TestBadFlags(t *testing.T) {
	_, err := execute(t, "--format", "svg")
	require.Error(t, err)
	_, err = execute(t, "--color", "sometimes", "-W", "10", "-H", "10")
	require.Error(t, err)
	_, err = execute(t, "--log-level", "loud")
	require.Error(t, err)
}

func TestErrorHints(t *testing.T) {
	var buf bytes.Buffer
	handleError(&buf, errors.Wrap(layout.ErrInvalidConstraints, "solve columns"))
	require.Contains(t, buf.String(), "Error: solve columns: layout: invalid constraints\n")
	require.Contains(t, buf.String(), "raise a max or lower --width/--height")

	buf.Reset()
	handleError(&buf, errors.Wrap(layout.ErrDuplicateAssignment, "cell 1"))
	require.Contains(t, buf.String(), "share a column and row")

	buf.Reset()
	handleError(&buf, nil)
	require.Empty(t, buf.String())
}
