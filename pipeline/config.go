// Package pipeline runs a sequence of grid transforms described in YAML.
package pipeline

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownOp is returned for a step whose op is not registered.
	ErrUnknownOp = errors.New("pipeline: unknown op")
	// ErrInvalidStep is returned for a step with missing or malformed arguments.
	ErrInvalidStep = errors.New("pipeline: invalid step")
)

// Op names a pipeline step.
type Op string

// Op constants
const (
	OpBRG          Op = "brg"
	OpNegative     Op = "negative"
	OpGrayscale    Op = "grayscale"
	OpRotate180    Op = "rotate-180"
	OpRotateCCW    Op = "rotate-ccw"
	OpRotateCW     Op = "rotate-cw"
	OpRotateMatrix Op = "rotate-matrix"
	OpComposite    Op = "composite"
	OpResize       Op = "resize"
)

// Ops lists every supported op in documentation order.
var Ops = []Op{
	OpBRG, OpNegative, OpGrayscale, OpRotate180, OpRotateCCW, OpRotateCW,
	OpRotateMatrix, OpComposite, OpResize,
}

// Step is one transform in a pipeline.
type Step struct {
	// Op selects the transform.
	Op Op `json:"op" yaml:"op"`
	// Angle is the rotation for rotate-matrix, a multiple of 90 degrees.
	Angle float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	// Overlay is the image file inserted by composite. Relative paths are
	// resolved against the config file's directory.
	Overlay string `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	// At is the [row, col] offset of the overlay's top-left cell. Defaults to [0, 0].
	At []int `json:"at,omitempty" yaml:"at,omitempty"`
	// Fit is [width, height]: the target size for resize, or the bounding box
	// the overlay is scaled down into for composite.
	Fit []int `json:"fit,omitempty" yaml:"fit,omitempty"`
}

// Config describes a whole run: where the grid comes from, what happens to it
// and where it goes.
type Config struct {
	// Input is the source image file. Optional when the caller supplies a grid.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`
	// Output is the destination image file. Optional when the caller keeps the grid.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	// Parallel enables row-parallel processing in every step.
	Parallel bool `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	// Steps run in order.
	Steps []Step `json:"steps" yaml:"steps"`

	// baseDir resolves relative paths; set by LoadConfig.
	baseDir string
}

// ParseConfig decodes and validates a YAML pipeline. Unknown fields are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "pipeline: parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and validates the YAML pipeline at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "pipeline: read config")
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	cfg.baseDir = filepath.Dir(path)
	return cfg, nil
}

// Resolve returns path relative to the config file's directory, unchanged when
// absolute or when the config was not loaded from a file.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.baseDir == "" {
		return path
	}
	return filepath.Join(c.baseDir, path)
}

// Validate checks every step.
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return errors.Wrap(ErrInvalidStep, "no steps")
	}
	for i, s := range c.Steps {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}

// Validate checks that the step's op exists and that it has the arguments the
// op needs.
func (s Step) Validate() error {
	if len(s.At) != 0 && len(s.At) != 2 {
		return errors.Wrapf(ErrInvalidStep, "%s: at must be [row, col]", s.Op)
	}
	if len(s.Fit) != 0 && (len(s.Fit) != 2 || s.Fit[0] < 1 || s.Fit[1] < 1) {
		return errors.Wrapf(ErrInvalidStep, "%s: fit must be [width, height], both >= 1", s.Op)
	}

	switch s.Op {
	case OpBRG, OpNegative, OpGrayscale, OpRotate180, OpRotateCCW, OpRotateCW:
		return nil
	case OpRotateMatrix:
		if q := s.Angle / 90; math.IsNaN(q) || math.IsInf(q, 0) || q != math.Round(q) {
			return errors.Wrapf(ErrInvalidStep, "%s: angle %g is not a multiple of 90", s.Op, s.Angle)
		}
		return nil
	case OpComposite:
		if s.Overlay == "" {
			return errors.Wrapf(ErrInvalidStep, "%s: overlay is required", s.Op)
		}
		return nil
	case OpResize:
		if len(s.Fit) == 0 {
			return errors.Wrapf(ErrInvalidStep, "%s: fit is required", s.Op)
		}
		return nil
	}
	return errors.Wrapf(ErrUnknownOp, "%q", s.Op)
}
