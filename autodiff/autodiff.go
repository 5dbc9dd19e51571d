// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides symbolic differentiation of expression trees.
//
// Derivatives are expressions themselves: they can be rendered, evaluated
// and differentiated again.
//
// Example:
//
//	import (
//	    "github.com/born-ml/xpress/autodiff"
//	    "github.com/born-ml/xpress/expr"
//	)
//
//	func main() {
//	    x := expr.Var("x")
//	    f := expr.Mul(expr.Sin(x), x)
//
//	    df := autodiff.Derivative(f, x)   // cos(x)*x + sin(x)
//	    d2f := autodiff.Derivative(df, x) // second derivative
//	}
package autodiff

import (
	"github.com/born-ml/xpress/internal/expr"
)

// Derivative returns the derivative of e with respect to wrt, already
// simplified. It is the zero constant when wrt does not occur in e.
//
// Example:
//
//	x := expr.Var("x")
//	autodiff.Derivative(expr.Pow(x, expr.Const(2)), x) // 2*x
func Derivative(e expr.Expr, wrt *expr.Variable) expr.Expr {
	return expr.Derivative(e, wrt)
}

// Gradient returns the derivative of e with respect to each variable, in
// order.
func Gradient(e expr.Expr, vars ...*expr.Variable) []expr.Expr {
	return expr.Gradient(e, vars...)
}
