package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelgrid/images"
	"github.com/nvr-ai/go-pixelgrid/pipeline"
)

// Flags holds the parsed command line.
type Flags struct {
	Input     string
	Output    string
	InputDir  string
	OutputDir string
	Op        string
	Overlay   string
	At        string
	Fit       string
	Angle     float64
	Pipeline  string
	Parallel  bool
	Demo      bool
}

// buildConfig turns the flags into a validated pipeline config. A -pipeline
// file takes its steps from YAML; -input/-output and -parallel given on the
// command line override the file.
func buildConfig(f Flags) (*pipeline.Config, error) {
	if f.Pipeline != "" && f.Op != "" {
		return nil, fmt.Errorf("error: cannot specify both -pipeline and -op")
	}
	if f.Input != "" && f.InputDir != "" {
		return nil, fmt.Errorf("error: cannot specify both -input and -input-dir")
	}
	if f.Input != "" {
		if err := validateFile(f.Input); err != nil {
			return nil, errors.Wrap(err, "input validation error")
		}
	}
	if f.Output != "" {
		if _, ok := images.FormatFromPath(f.Output); !ok {
			return nil, fmt.Errorf("output validation error: unsupported extension: %s", f.Output)
		}
	}

	var cfg *pipeline.Config
	switch {
	case f.Pipeline != "":
		var err error
		if cfg, err = pipeline.LoadConfig(f.Pipeline); err != nil {
			return nil, err
		}
	case f.Op != "":
		step, err := stepFromFlags(f)
		if err != nil {
			return nil, err
		}
		cfg = &pipeline.Config{Steps: []pipeline.Step{step}}
	default:
		return nil, fmt.Errorf("error: one of -op, -pipeline or -demo is required")
	}

	if f.Input != "" {
		cfg.Input = f.Input
	}
	if f.Output != "" {
		cfg.Output = f.Output
	}
	if f.Parallel {
		cfg.Parallel = true
	}
	if cfg.Input == "" && f.InputDir == "" {
		return nil, fmt.Errorf("error: no input: use -input, -input-dir or set input in the pipeline file")
	}
	return cfg, cfg.Validate()
}

func stepFromFlags(f Flags) (pipeline.Step, error) {
	step := pipeline.Step{Op: pipeline.Op(f.Op), Angle: f.Angle, Overlay: f.Overlay}
	var err error
	if f.At != "" {
		if step.At, err = parsePair(f.At); err != nil {
			return step, errors.Wrap(err, "-at")
		}
	}
	if f.Fit != "" {
		if step.Fit, err = parsePair(f.Fit); err != nil {
			return step, errors.Wrap(err, "-fit")
		}
	}
	return step, step.Validate()
}

// parsePair parses "a,b" into two integers.
func parsePair(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, errors.Errorf("want two comma separated integers, got %q", s)
	}
	out := make([]int, 2)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", s)
		}
		out[i] = v
	}
	return out, nil
}

// validateFile checks if the file exists and has a supported extension
func validateFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}
	if _, ok := images.FormatFromPath(path); !ok {
		return fmt.Errorf("unsupported extension: %s", path)
	}
	return nil
}
