// Command pixelgrid applies grid transforms to image files.
//
//	pixelgrid -input beach.jpg -output out.png -op rotate-ccw
//	pixelgrid -input beach.jpg -output out.png -op composite -overlay robot.png -at 100,100 -fit 64,64
//	pixelgrid -pipeline steps.yaml -parallel
//	pixelgrid -input-dir frames -output-dir rotated -op rotate-180
//	pixelgrid -demo
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelgrid/linalg"
	"github.com/nvr-ai/go-pixelgrid/matrix2d"
	"github.com/nvr-ai/go-pixelgrid/pipeline"
	"github.com/nvr-ai/go-pixelgrid/profiler"
	"github.com/nvr-ai/go-pixelgrid/util"
)

func main() {
	var f Flags
	flag.StringVar(&f.Input, "input", "", "Path to the source image (.jpg, .png, .webp, .bmp, .tif)")
	flag.StringVar(&f.Output, "output", "", "Path to write the result; the extension selects the format")
	flag.StringVar(&f.InputDir, "input-dir", "", "Directory of frame-N.<ext> images to process in order")
	flag.StringVar(&f.OutputDir, "output-dir", "", "Directory the processed frames are written to")
	flag.StringVar(&f.Op, "op", "", "Single op to apply: "+opNames())
	flag.StringVar(&f.Overlay, "overlay", "", "Overlay image for -op composite")
	flag.StringVar(&f.At, "at", "", "Overlay offset as row,col for -op composite")
	flag.StringVar(&f.Fit, "fit", "", "Size as width,height for -op resize, or the overlay bounding box for -op composite")
	flag.Float64Var(&f.Angle, "angle", 90, "Angle in degrees for -op rotate-matrix, a multiple of 90")
	flag.StringVar(&f.Pipeline, "pipeline", "", "Path to a YAML pipeline file")
	flag.BoolVar(&f.Parallel, "parallel", false, "Process rows in parallel")
	flag.BoolVar(&f.Demo, "demo", false, "Print the linear algebra and matrix rotation walkthrough and exit")
	flag.Parse()
	defer glog.Flush()

	if f.Demo {
		runDemo(os.Stdout)
		return
	}

	cfg, err := buildConfig(f)
	if err != nil {
		glog.Exit(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	prof := profiler.New(0)
	p, err := pipeline.New(cfg, nil, prof)
	if err != nil {
		glog.Exit(err)
	}

	if f.InputDir != "" {
		err = runDirectory(ctx, p, f.InputDir, f.OutputDir)
	} else {
		_, err = p.Execute(ctx)
	}
	if err != nil {
		glog.Exitf("pixelgrid: %v", err)
	}

	if glog.V(1) {
		glog.Infof("timings:\n%s", prof.Report())
	}
}

// runDirectory runs p over every frame in inputDir, writing each result under
// outputDir with the same file name.
func runDirectory(ctx context.Context, p *pipeline.Pipeline, inputDir, outputDir string) error {
	if outputDir == "" {
		return errors.New("-input-dir requires -output-dir")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	frames, err := util.LoadDirectoryGrids(inputDir)
	if err != nil {
		return err
	}
	glog.Infof("processing %d frames from %s", len(frames), inputDir)

	for _, frame := range frames {
		out, err := p.Run(ctx, frame.Grid)
		if err != nil {
			return errors.Wrapf(err, "frame %d", frame.Frame)
		}
		dst := filepath.Join(outputDir, filepath.Base(frame.Path))
		if err := util.Save(dst, out); err != nil {
			return err
		}
		glog.V(1).Infof("frame %d -> %s", frame.Frame, dst)
	}
	return nil
}

func opNames() string {
	names := make([]string, len(pipeline.Ops))
	for i, op := range pipeline.Ops {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}

// runDemo walks through the vector and matrix helpers and the generic
// matrix rotations.
func runDemo(w io.Writer) {
	v1 := linalg.Vec(1, 2)
	v2 := linalg.Vec(3, 4)
	fmt.Fprintf(w, "v1 = %v, v2 = %v\n", v1, v2)
	fmt.Fprintf(w, "v1 + v2 = %v\n", linalg.Add(v1, v2))
	fmt.Fprintf(w, "v1 - v2 = %v\n", linalg.Sub(v1, v2))
	fmt.Fprintf(w, "v1 . v2 = %g\n", linalg.Dot(v1, v2))
	fmt.Fprintf(w, "3 * v1 = %v\n", v1.Scale(3))

	m := linalg.Mat(1, 2, 3, 4)
	fmt.Fprintf(w, "m = %v\n", m)
	fmt.Fprintf(w, "m * m = %v\n", linalg.Mul(m, m))
	fmt.Fprintf(w, "m * v1 = %v\n", linalg.Apply(m, v1))

	for _, angle := range []float64{90, 180, 270} {
		r := linalg.RotationMatrix(angle)
		fmt.Fprintf(w, "R(%g) = %v, R(%g) * (1, 0) = %v\n", angle, r, angle, r.Apply(linalg.Vec(1, 0)))
	}

	grid := matrix2d.MustFromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	fmt.Fprintf(w, "\nmatrix:\n%s", matrix2d.Format(grid))
	fmt.Fprintf(w, "\ncounter-clockwise:\n%s", matrix2d.Format(matrix2d.RotateCCW(grid)))
	fmt.Fprintf(w, "\nclockwise:\n%s", matrix2d.Format(matrix2d.RotateCW(grid)))
	fmt.Fprintf(w, "\n180:\n%s", matrix2d.Format(matrix2d.Rotate180(grid)))
}
