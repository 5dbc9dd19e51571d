// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package expr provides the public API for building, rendering and
// evaluating symbolic expressions over scalars and tensors.
//
// Constructors simplify as they build, so trees never carry redundant
// identities. Derivatives are computed by the autodiff package.
//
// Example:
//
//	import (
//	    "github.com/born-ml/xpress/autodiff"
//	    "github.com/born-ml/xpress/expr"
//	)
//
//	func main() {
//	    x, y := expr.Var("x"), expr.Var("y")
//	    f := expr.Add(expr.Pow(x, expr.Const(2)), expr.Mul(x, y))
//
//	    names := expr.Names{x: "x", y: "y"}
//	    text, _ := expr.Render(autodiff.Derivative(f, x), names) // "2*x + y"
//
//	    v, _ := expr.Evaluate(f, expr.Values{x: 3, y: 1}) // 12
//	}
package expr

import (
	"github.com/born-ml/xpress/internal/expr"
	"github.com/born-ml/xpress/internal/operator"
	"github.com/born-ml/xpress/internal/tensor"
)

// Type aliases for public API

// Expr is a node of an expression tree.
type Expr = expr.Expr

// Constant is a leaf holding a fixed scalar or tensor value.
type Constant = expr.Constant

// Variable is a symbol leaf with a unique identity and a declared shape.
type Variable = expr.Variable

// Operation is a registered operator applied to its operands.
type Operation = expr.Operation

// Names binds variables to display names for Render.
type Names = expr.Names

// Values binds variables to concrete values for Evaluate.
type Values = expr.Values

// Value is the result of Evaluate: a Scalar or a tensor.
type Value = operator.Value

// Scalar is a scalar Value.
type Scalar = operator.Scalar

// Errors returned or raised by this package.
var (
	ErrUnboundVariable = expr.ErrUnboundVariable
	ErrUnknownOperator = expr.ErrUnknownOperator
	ErrOperandCategory = operator.ErrOperandCategory
	ErrArity           = operator.ErrArity
)

// Leaves

// Const creates a constant from a number, a tensor or nested float64 slices.
//
// Example:
//
//	c := expr.Const([][]float64{{1, 2}, {3, 4}})
func Const(v any) *Constant { return expr.Const(v) }

// Var creates a new scalar variable.
func Var(label string) *Variable { return expr.Var(label) }

// TensorVar creates a new variable of the given shape.
//
// Example:
//
//	w := expr.TensorVar("w", tensor.Shape{2, 3})
func TensorVar(label string, shape tensor.Shape) *Variable { return expr.TensorVar(label, shape) }

// Operators

// Add returns a + b.
func Add(a, b Expr) Expr { return expr.Add(a, b) }

// Sub returns a - b.
func Sub(a, b Expr) Expr { return expr.Sub(a, b) }

// Mul returns a * b; two tensors contract to a scalar.
func Mul(a, b Expr) Expr { return expr.Mul(a, b) }

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b Expr) Expr { return expr.Hadamard(a, b) }

// Div returns a / b for a scalar b.
func Div(a, b Expr) Expr { return expr.Div(a, b) }

// Pow returns a raised to the scalar power b.
func Pow(a, b Expr) Expr { return expr.Pow(a, b) }

// Neg returns -a.
func Neg(a Expr) Expr { return expr.Neg(a) }

// Log returns the natural logarithm of a.
func Log(a Expr) Expr { return expr.Log(a) }

// Exp returns e^a.
func Exp(a Expr) Expr { return expr.Exp(a) }

// Sin returns the sine of a.
func Sin(a Expr) Expr { return expr.Sin(a) }

// Cos returns the cosine of a.
func Cos(a Expr) Expr { return expr.Cos(a) }

// Try converts a construction failure inside build into an error.
//
// Example:
//
//	e, err := expr.Try(func() expr.Expr { return expr.Add(a, b) })
//	if errors.Is(err, tensor.ErrShapeMismatch) { ... }
func Try(build func() Expr) (Expr, error) { return expr.Try(build) }

// Inspection and output

// Equal reports whether two trees are structurally identical.
func Equal(a, b Expr) bool { return expr.Equal(a, b) }

// Nodes counts the nodes of a tree.
func Nodes(e Expr) int { return expr.Nodes(e) }

// Variables returns the distinct variables of e in order of first occurrence.
func Variables(e Expr) []*Variable { return expr.Variables(e) }

// Substitute replaces every occurrence of v in e, re-simplifying the result.
func Substitute(e Expr, v *Variable, replacement Expr) Expr {
	return expr.Substitute(e, v, replacement)
}

// Render writes e as text, naming variables through names.
func Render(e Expr, names Names) (string, error) { return expr.Render(e, names) }

// Evaluate computes the value of e for the given variable bindings.
func Evaluate(e Expr, values Values) (Value, error) { return expr.Evaluate(e, values) }
