// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package expr

import (
	"github.com/born-ml/xpress/internal/expr"
	"github.com/born-ml/xpress/internal/operator"
)

// Op is the tag of a registered operator.
type Op = expr.Op

// Descriptor bundles the evaluation, derivative and print rules of an
// operator.
type Descriptor = expr.Descriptor

// DeriveRule returns the derivative of an operation.
type DeriveRule = expr.DeriveRule

// PrintRule writes an operation to a Printer.
type PrintRule = expr.PrintRule

// Printer accumulates rendered text for print rules.
type Printer = expr.Printer

// Kernel is the value-level evaluation rule of an operator.
type Kernel = operator.Kernel

// BinaryKernel is a two-operand kernel with one rule per scalar/tensor pair.
type BinaryKernel = operator.BinaryKernel

// UnaryKernel is an element-wise one-operand kernel.
type UnaryKernel = operator.UnaryKernel

// Register adds an operator and returns its tag.
//
// Example:
//
//	var opSquare = expr.Register(expr.Descriptor{
//	    Name:   "square",
//	    Symbol: "sq",
//	    Kernel: &expr.UnaryKernel{Op: "square", Fn: func(x float64) float64 { return x * x }},
//	    Derive: func(o *expr.Operation, d func(expr.Expr) expr.Expr) expr.Expr {
//	        a := o.Operand(0)
//	        return expr.Hadamard(expr.Mul(expr.Const(2), a), d(a))
//	    },
//	    Print: func(p *expr.Printer, o *expr.Operation) error {
//	        p.WriteString("sq")
//	        return p.PrintGrouped(o.Operand(0), true)
//	    },
//	})
func Register(d Descriptor) Op { return expr.Register(d) }

// Apply builds a node for a registered operator.
func Apply(op Op, operands ...Expr) Expr { return expr.Apply(op, operands...) }

// Lookup returns the descriptor registered for op.
func Lookup(op Op) (*Descriptor, bool) { return expr.Lookup(op) }

// LookupName returns the tag of the operator registered under name.
func LookupName(name string) (Op, bool) { return expr.LookupName(name) }
