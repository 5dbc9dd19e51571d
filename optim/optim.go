// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"context"

	"github.com/born-ml/xpress/internal/expr"
	"github.com/born-ml/xpress/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Objective is a scalar expression minimized over scalar variables.
type Objective = optim.Objective

// MinimizeConfig controls the optimization loop.
type MinimizeConfig = optim.MinimizeConfig

// Result is the outcome of Minimize.
type Result = optim.Result

// Errors returned by this package.
var (
	ErrNotScalar   = optim.ErrNotScalar
	ErrNoVariables = optim.ErrNoVariables
)

// NewObjective prepares f for minimization over vars.
//
// Example:
//
//	x := expr.Var("x")
//	obj, err := optim.NewObjective(expr.Pow(x, expr.Const(2)), x)
func NewObjective(f expr.Expr, vars ...*expr.Variable) (*Objective, error) {
	return optim.NewObjective(f, vars...)
}

// Minimize runs opt on obj starting from x0.
func Minimize(ctx context.Context, obj *Objective, x0 []float64, opt Optimizer, cfg MinimizeConfig) (Result, error) {
	return optim.Minimize(ctx, obj, x0, opt, cfg)
}

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}
