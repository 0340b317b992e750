package pipeline

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelgrid/images"
	"github.com/nvr-ai/go-pixelgrid/profiler"
	"github.com/nvr-ai/go-pixelgrid/util"
)

// Loader decodes the image file at path. util.Load is the default.
type Loader func(path string) (*images.Grid, error)

// Pipeline applies a Config's steps to grids.
type Pipeline struct {
	cfg      *Config
	load     Loader
	profiler *profiler.Profiler
	opts     []images.Option
}

// New returns a pipeline for a validated config.
//
// Arguments:
//   - cfg: The pipeline configuration. Validate is called again here.
//   - load: Overlay loader; nil selects util.Load.
//   - prof: Step timing sink; nil creates a private profiler.
//
// Returns:
//   - *Pipeline: The pipeline.
//   - error: The validation error, if any.
func New(cfg *Config, load Loader, prof *profiler.Profiler) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if load == nil {
		load = util.Load
	}
	if prof == nil {
		prof = profiler.New(0)
	}
	p := &Pipeline{cfg: cfg, load: load, profiler: prof}
	if cfg.Parallel {
		p.opts = append(p.opts, images.WithParallel())
	}
	return p, nil
}

// Profiler returns the sink recording step timings.
func (p *Pipeline) Profiler() *profiler.Profiler { return p.profiler }

// Run applies every step to g in order and returns the final grid. In-place
// steps mutate g; rotation steps replace it, so callers must use the returned
// grid. ctx is checked before each step.
func (p *Pipeline) Run(ctx context.Context, g *images.Grid) (*images.Grid, error) {
	for i, step := range p.cfg.Steps {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "pipeline: before step %d (%s)", i, step.Op)
		}

		start := time.Now()
		out, err := p.apply(step, g)
		if err != nil {
			return nil, errors.Wrapf(err, "pipeline: step %d (%s)", i, step.Op)
		}
		elapsed := time.Since(start)
		p.profiler.Record(string(step.Op), elapsed)

		glog.V(1).Infof("step %d %s: %dx%d -> %dx%d in %v", i, step.Op,
			g.Height(), g.Width(), out.Height(), out.Width(), elapsed)
		g = out
	}
	return g, nil
}

// Execute loads cfg.Input, runs the pipeline and saves to cfg.Output.
func (p *Pipeline) Execute(ctx context.Context) (*images.Grid, error) {
	if p.cfg.Input == "" {
		return nil, errors.Wrap(ErrInvalidStep, "pipeline: no input file")
	}
	in := p.cfg.Resolve(p.cfg.Input)
	g, err := p.load(in)
	if err != nil {
		return nil, err
	}
	glog.Infof("loaded %s (%dx%d)", in, g.Height(), g.Width())

	g, err = p.Run(ctx, g)
	if err != nil {
		return nil, err
	}

	if p.cfg.Output != "" {
		out := p.cfg.Resolve(p.cfg.Output)
		if err := util.Save(out, g); err != nil {
			return nil, err
		}
		glog.Infof("saved %s (%dx%d) checksum=%s", out, g.Height(), g.Width(), images.Checksum(g))
	}
	return g, nil
}

func (p *Pipeline) apply(step Step, g *images.Grid) (*images.Grid, error) {
	switch step.Op {
	case OpBRG:
		images.ChannelRemapBRG(g, p.opts...)
	case OpNegative:
		images.Negative(g, p.opts...)
	case OpGrayscale:
		images.Grayscale(g, p.opts...)
	case OpRotate180:
		images.Rotate180(g, p.opts...)
	case OpRotateCCW:
		return images.RotateCCW(g, p.opts...), nil
	case OpRotateCW:
		return images.RotateCW(g, p.opts...), nil
	case OpRotateMatrix:
		out, report, err := images.RotateByMatrix(g, step.Angle)
		if err != nil {
			return nil, err
		}
		if report != (images.RotationReport{}) {
			glog.Warningf("rotate-matrix %g: %d collisions, %d backfilled cells",
				step.Angle, report.Collisions, report.Backfilled)
		}
		return out, nil
	case OpComposite:
		return g, p.composite(step, g)
	case OpResize:
		return images.Resize(g, step.Fit[0], step.Fit[1])
	default:
		return nil, errors.Wrapf(ErrUnknownOp, "%q", step.Op)
	}
	return g, nil
}

func (p *Pipeline) composite(step Step, g *images.Grid) error {
	overlay, err := p.load(p.cfg.Resolve(step.Overlay))
	if err != nil {
		return err
	}
	if len(step.Fit) == 2 {
		if overlay, err = images.Fit(overlay, step.Fit[0], step.Fit[1]); err != nil {
			return err
		}
	}

	row, col := 0, 0
	if len(step.At) == 2 {
		row, col = step.At[0], step.At[1]
	}
	written := images.Composite(g, overlay, row, col)
	glog.V(2).Infof("composite %s at (%d,%d): %d cells written", step.Overlay, row, col, written)
	return nil
}
