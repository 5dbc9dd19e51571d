// Package optim minimizes scalar expressions by gradient descent.
//
// Gradients are derived symbolically once, when the Objective is created, and
// then evaluated at every step. The point being optimized is a rank-1 tensor
// holding one coordinate per variable.
//
// This package provides:
//   - Objective: a scalar expression and the variables it is minimized over
//   - Optimizer interface: the update rule applied at each step
//   - SGD: gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: the optimization loop
//
// Example usage:
//
//	x, y := expr.Var("x"), expr.Var("y")
//	f := expr.Add(expr.Pow(expr.Sub(x, expr.Const(1)), expr.Const(2)), expr.Pow(y, expr.Const(2)))
//
//	obj, err := optim.NewObjective(f, x, y)
//	if err != nil {
//	    return err
//	}
//	res, err := optim.Minimize(ctx, obj, []float64{0, 0}, optim.NewSGD(optim.SGDConfig{LR: 0.1}), optim.MinimizeConfig{})
//	// res.X ≈ [1, 0]
package optim

import (
	"github.com/born-ml/xpress/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Compute the next point from the current point and its gradient
//   - GetLR/SetLR: Read and change the learning rate (for scheduling)
type Optimizer interface {
	// Step returns the point after one update. x and grad have the same
	// shape; neither is modified.
	Step(x, grad *tensor.Tensor[float64]) (*tensor.Tensor[float64], error)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
