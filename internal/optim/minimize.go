package optim

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/xpress/internal/tensor"
)

// MinimizeConfig controls the optimization loop.
type MinimizeConfig struct {
	MaxSteps  int     // Step limit (default: 1000)
	Tolerance float64 // Stop once the gradient norm is at most this (default: 1e-8)
}

// Result is the outcome of Minimize.
type Result struct {
	X         []float64 // Final point, one coordinate per variable
	Value     float64   // Objective at X
	Steps     int       // Optimizer steps taken
	Converged bool      // Whether the gradient norm reached the tolerance
}

// Minimize runs opt on obj starting from x0 until the gradient norm drops to
// the tolerance, the step limit is reached, or ctx is done.
//
// x0 must hold one coordinate per objective variable
// (tensor.ErrShapeMismatch otherwise).
func Minimize(ctx context.Context, obj *Objective, x0 []float64, opt Optimizer, cfg MinimizeConfig) (Result, error) {
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = 1000
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-8
	}

	x, err := tensor.FromSlice(tensor.Shape{obj.Dim()}, x0)
	if err != nil {
		return Result{}, errors.WithMessage(err, "starting point")
	}

	res := Result{}
	for res.Steps < cfg.MaxSteps {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		grad, err := obj.Gradient(x)
		if err != nil {
			return Result{}, err
		}
		norm, err := tensor.Dot[float64](grad, grad)
		if err != nil {
			return Result{}, err
		}
		if math.Sqrt(norm) <= cfg.Tolerance {
			res.Converged = true
			break
		}

		if x, err = opt.Step(x, grad); err != nil {
			return Result{}, errors.WithMessagef(err, "step %d", res.Steps)
		}
		res.Steps++

		if klog.V(3).Enabled() {
			klog.Infof("step %d: x=%v |grad|=%g lr=%g", res.Steps, x, math.Sqrt(norm), opt.GetLR())
		}
	}

	if res.Value, err = obj.Value(x); err != nil {
		return Result{}, err
	}
	res.X = x.Data()
	klog.V(2).Infof("minimize: %d steps, converged=%t, f=%g", res.Steps, res.Converged, res.Value)
	return res, nil
}
