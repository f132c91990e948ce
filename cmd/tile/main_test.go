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

	"github.com/grindlemire/go-tile/internal/layout"
)

const workspacePlan = `
name: workspace
width: 1920
height: 1080
root:
  split: {side: left, percent: 30}
  first: {name: sidebar}
  second:
    split: {side: top, percent: 70}
    first: {name: editor, center: 96}
    second: {name: terminal, shave: {side: top, percent: 90}}
`

// Nested odd splits push "b" one row into "c".
const overlappingPlan = `
width: 10
height: 10
root:
  split: {side: top, percent: 50}
  first:
    split: {side: top, percent: 50}
    first: {name: a}
    second: {name: b}
  second: {name: c}
`

// isolate keeps tests away from any tile.yaml on the machine.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Chdir(dir)
	return dir
}

func writePlan(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRectCommands(t *testing.T) {
	type tc struct {
		command  string
		args     []string
		expected string
	}

	tests := map[string]tc{
		"split top": {
			command:  "split",
			args:     []string{"--percent", "50", "--side", "top", "0", "0", "100", "100"},
			expected: "{0, 0, 100, 50}\n{0, 50, 100, 50}\n",
		},
		"split left odd width": {
			command:  "split",
			args:     []string{"-p", "50", "-s", "lef", "0", "0", "101", "40"},
			expected: "{0, 0, 51, 40}\n{51, 0, 51, 40}\n",
		},
		"center": {
			command:  "center",
			args:     []string{"-p", "50", "0", "0", "100", "100"},
			expected: "{25, 25, 50, 50}\n",
		},
		"center configured screen": {
			command:  "center",
			args:     []string{"-p", "50", "--width", "200", "--height", "100"},
			expected: "{50, 25, 100, 50}\n",
		},
		"shave negative origin": {
			command:  "shave",
			args:     []string{"-p", "40", "-s", "left", "--", "-100", "-100", "100", "100"},
			expected: "{-40, -100, 40, 100}\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			var out bytes.Buffer
			require.NoError(t, run(tt.command, tt.args, &out))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestRectCommands_Errors(t *testing.T) {
	type tc struct {
		command string
		args    []string
		invalid bool
		wantErr string
	}

	tests := map[string]tc{
		"split at zero":   {command: "split", args: []string{"-p", "0", "0", "0", "10", "10"}, invalid: true},
		"split at 150":    {command: "split", args: []string{"-p", "150", "0", "0", "10", "10"}, invalid: true},
		"shave all":       {command: "shave", args: []string{"-p", "100", "-s", "top", "0", "0", "10", "10"}, invalid: true},
		"center at zero":  {command: "center", args: []string{"-p", "0"}, invalid: true},
		"unknown side":    {command: "split", args: []string{"-s", "middle"}, wantErr: "unknown side"},
		"missing height":  {command: "split", args: []string{"0", "0", "10"}, wantErr: "expected X Y W H"},
		"bad width":       {command: "center", args: []string{"0", "0", "wide", "10"}, wantErr: "invalid width"},
		"unknown command": {command: "explode", wantErr: "unknown command: explode"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			var out bytes.Buffer
			err := run(tt.command, tt.args, &out)
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, layout.ErrInvalidArgument)
			}
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			}
			assert.Empty(t, out.String())
		})
	}
}

func TestRender_Text(t *testing.T) {
	dir := isolate(t)
	path := writePlan(t, dir, "workspace.yaml", workspacePlan)

	var out bytes.Buffer
	require.NoError(t, run("render", []string{"--cols", "10", "--rows", "4", path}, &out))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "SSSEEEEEE.", lines[0])
	assert.Contains(t, out.String(), "{602, 15, 1291, 726}")
	assert.Contains(t, out.String(), "terminal")
}

func TestRender_MultipleTextToDirectory(t *testing.T) {
	dir := isolate(t)
	a := writePlan(t, dir, "a.yaml", workspacePlan)
	b := writePlan(t, dir, "b.yaml", overlappingPlan)
	outDir := filepath.Join(dir, "out")

	var out bytes.Buffer
	require.NoError(t, run("render", []string{"-o", outDir, "-j", "2", a, b}, &out))
	assert.Empty(t, out.String())

	for _, name := range []string{"a.txt", "b.txt"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}

func TestRender_PNG(t *testing.T) {
	dir := isolate(t)
	path := writePlan(t, dir, "workspace.yaml", workspacePlan)
	outDir := filepath.Join(dir, "previews")

	var out bytes.Buffer
	require.NoError(t, run("render", []string{"-f", "png", "-o", outDir, "--max-side", "480", path}, &out))

	f, err := os.Open(filepath.Join(outDir, "workspace.png"))
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 480, img.Bounds().Dx())
	assert.Equal(t, 270, img.Bounds().Dy())
}

func TestRender_Errors(t *testing.T) {
	dir := isolate(t)
	a := writePlan(t, dir, "a.yaml", workspacePlan)
	bad := writePlan(t, dir, "bad.yaml", "width: 10\nheight: 10\nroot: {name: a, center: 0}\n")

	var out bytes.Buffer
	assert.ErrorContains(t, run("render", nil, &out), "no plan files")
	assert.ErrorContains(t, run("render", []string{"-f", "screen", a, a}, &out), "one plan")
	assert.ErrorIs(t, run("render", []string{a, bad}, &out), layout.ErrInvalidArgument)
}

func TestRender_OutputNameClash(t *testing.T) {
	dir := isolate(t)
	for _, sub := range []string{"home", "work"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, sub), 0o755))
	}
	a := writePlan(t, dir, "home/workspace.yaml", workspacePlan)
	b := writePlan(t, dir, "work/workspace.yaml", workspacePlan)
	outDir := filepath.Join(dir, "out")

	type tc struct {
		args []string
	}

	tests := map[string]tc{
		"png":  {args: []string{"-f", "png", "-o", outDir, a, b}},
		"text": {args: []string{"-o", outDir, a, b}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := run("render", tt.args, &out)
			assert.ErrorContains(t, err, "would both write")
			assert.NoDirExists(t, outDir)
		})
	}

	var out bytes.Buffer
	require.NoError(t, run("render", []string{a, b}, &out))
	assert.Contains(t, out.String(), "== "+b)
}

func TestCheck(t *testing.T) {
	dir := isolate(t)
	good := writePlan(t, dir, "good.yaml", workspacePlan)
	bad := writePlan(t, dir, "overlap.yaml", overlappingPlan)

	var out bytes.Buffer
	require.NoError(t, run("check", []string{good}, &out))
	assert.Equal(t, good+": ok, 3 panes\n", out.String())

	out.Reset()
	err := run("check", []string{good, bad}, &out)
	assert.ErrorContains(t, err, "1 plan(s) failed")
	assert.Contains(t, out.String(), bad+": b overlaps c")
}

func TestVersionAndHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run("version", nil, &out))
	assert.Equal(t, "tile version "+version+"\n", out.String())

	out.Reset()
	require.NoError(t, run("help", nil, &out))
	assert.Contains(t, out.String(), "Commands:")
}

func TestSubcommandHelp(t *testing.T) {
	for _, command := range []string{"center", "shave", "split", "render", "check"} {
		t.Run(command, func(t *testing.T) {
			isolate(t)
			var out bytes.Buffer
			require.NoError(t, run(command, []string{"--help"}, &out))
			assert.Contains(t, out.String(), "Usage of tile "+command)
			assert.Contains(t, out.String(), "--width")
		})
	}
}
