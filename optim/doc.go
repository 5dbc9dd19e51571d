// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim minimizes scalar expressions with gradient-based optimizers.
//
// # Overview
//
// This package contains:
//   - Objective: a scalar expression with symbolically derived partials
//   - SGD: gradient descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - Minimize: the optimization loop
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/xpress/expr"
//	    "github.com/born-ml/xpress/optim"
//	)
//
//	func main() {
//	    x, y := expr.Var("x"), expr.Var("y")
//
//	    // Rosenbrock: (1 - x)^2 + 100*(y - x^2)^2
//	    f := expr.Add(
//	        expr.Pow(expr.Sub(expr.Const(1), x), expr.Const(2)),
//	        expr.Mul(expr.Const(100), expr.Pow(expr.Sub(y, expr.Pow(x, expr.Const(2))), expr.Const(2))),
//	    )
//
//	    obj, err := optim.NewObjective(f, x, y)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := optim.Minimize(context.Background(), obj, []float64{-1, 1},
//	        optim.NewAdam(optim.AdamConfig{LR: 0.01}),
//	        optim.MinimizeConfig{MaxSteps: 20000},
//	    )
//	}
//
// # Choosing an Optimizer
//
// SGD takes steps proportional to the gradient and suits well-conditioned
// objectives. Adam normalizes each coordinate by a running estimate of its
// gradient scale and copes better with narrow valleys.
package optim
