package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-pixelgrid/images"
	"github.com/nvr-ai/go-pixelgrid/pipeline"
	"github.com/nvr-ai/go-pixelgrid/util"
)

func writeGrid(t *testing.T, path string) {
	t.Helper()
	g, err := images.NewGridFilled(2, 3, images.Red)
	require.NoError(t, err)
	require.NoError(t, util.Save(path, g))
}

func TestBuildConfigSingleOp(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "beach.png")
	writeGrid(t, in)

	cfg, err := buildConfig(Flags{
		Input:   in,
		Output:  filepath.Join(dir, "out.png"),
		Op:      "composite",
		Overlay: "robot.png",
		At:      "3, 4",
		Fit:     "16,8",
	})
	require.NoError(t, err)
	require.Len(t, cfg.Steps, 1)
	assert.Equal(t, pipeline.Step{
		Op: pipeline.OpComposite, Overlay: "robot.png", At: []int{3, 4}, Fit: []int{16, 8},
	}, cfg.Steps[0])
	assert.Equal(t, in, cfg.Input)
}

func TestBuildConfigPipelineOverrides(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "other.png")
	writeGrid(t, in)
	path := filepath.Join(dir, "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: beach.png\nsteps:\n  - op: grayscale\n"), 0o644))

	cfg, err := buildConfig(Flags{Pipeline: path, Input: in, Parallel: true})
	require.NoError(t, err)
	assert.Equal(t, in, cfg.Input)
	assert.True(t, cfg.Parallel)
	assert.Equal(t, []pipeline.Step{{Op: pipeline.OpGrayscale}}, cfg.Steps)
}

func TestBuildConfigErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "beach.png")
	writeGrid(t, in)
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("x"), 0o644))

	tests := []struct {
		name  string
		flags Flags
	}{
		{"nothing to do", Flags{Input: in}},
		{"pipeline and op", Flags{Input: in, Op: "negative", Pipeline: "p.yaml"}},
		{"input and input dir", Flags{Input: in, InputDir: dir, Op: "negative"}},
		{"missing input file", Flags{Input: filepath.Join(dir, "nope.png"), Op: "negative"}},
		{"unsupported input", Flags{Input: notes, Op: "negative"}},
		{"unsupported output", Flags{Input: in, Output: "out.gif", Op: "negative"}},
		{"no input", Flags{Op: "negative"}},
		{"unknown op", Flags{Input: in, Op: "sharpen"}},
		{"bad angle", Flags{Input: in, Op: "rotate-matrix", Angle: 30}},
		{"bad at", Flags{Input: in, Op: "composite", Overlay: "o.png", At: "1"}},
		{"bad fit", Flags{Input: in, Op: "resize", Fit: "a,b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildConfig(tt.flags)
			assert.Error(t, err)
		})
	}
}

func TestParsePair(t *testing.T) {
	got, err := parsePair("-2, 7")
	require.NoError(t, err)
	assert.Equal(t, []int{-2, 7}, got)

	for _, s := range []string{"", "1", "1,2,3", "x,1"} {
		_, err := parsePair(s)
		assert.Error(t, err, s)
	}
}

func TestRunDirectory(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "rotated")
	for _, name := range []string{"frame-2.png", "frame-10.png"} {
		writeGrid(t, filepath.Join(in, name))
	}

	p, err := pipeline.New(&pipeline.Config{Steps: []pipeline.Step{{Op: pipeline.OpRotateCW}}}, nil, nil)
	require.NoError(t, err)
	require.NoError(t, runDirectory(context.Background(), p, in, out))

	for _, name := range []string{"frame-2.png", "frame-10.png"} {
		g, err := util.Load(filepath.Join(out, name))
		require.NoError(t, err)
		assert.Equal(t, 3, g.Height())
		assert.Equal(t, 2, g.Width())
	}

	assert.Error(t, runDirectory(context.Background(), p, in, ""))
}
