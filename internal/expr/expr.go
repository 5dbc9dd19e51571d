// Package expr implements immutable symbolic expression trees over scalar and
// tensor operands.
//
// A tree is made of three node kinds:
//   - *Constant: a fixed scalar or tensor value
//   - *Variable: a symbol with a unique identity and a declared shape
//   - *Operation: a registered operator applied to one or two operands
//
// Trees are built with one constructor per operator (Add, Mul, Pow, ...).
// Each constructor simplifies before it allocates a node, so redundant
// identities never enter a tree:
//
//	x := expr.Var("x")
//	expr.Add(x, expr.Const(0))   // x
//	expr.Pow(x, expr.Const(1))   // x
//	expr.Add(x, x)               // 2*x
//
// Nodes are never mutated after construction. Sub-trees may be shared by any
// number of parents and every function in this package is safe for
// concurrent use.
package expr

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/born-ml/xpress/internal/operator"
	"github.com/born-ml/xpress/internal/tensor"
)

// Expr is a node of an expression tree: *Constant, *Variable or *Operation.
type Expr interface {
	// Shape is the shape of the value the expression evaluates to.
	Shape() tensor.Shape

	node()
}

// Constant is a leaf holding a fixed value.
type Constant struct {
	value operator.Value
}

// Const creates a constant from a number, a tensor, any
// tensor.Accessor[float64], or nested float64 slices/arrays. Tensor inputs are
// copied so the tree stays immutable.
//
// Panics with tensor.ErrNotTensor if v is none of these; see Try.
func Const(v any) *Constant {
	value, err := operator.ValueOf(v)
	if err != nil {
		panic(err)
	}
	if t, ok := value.(operator.Tensor); ok {
		value = operator.FromAccessor(tensor.Materialize(t.Accessor()))
	}
	return &Constant{value: value}
}

// Value returns the constant's value.
func (c *Constant) Value() operator.Value { return c.value }

// Shape returns the shape of the value.
func (c *Constant) Shape() tensor.Shape { return c.value.Shape() }

func (*Constant) node() {}

// Zero returns the scalar constant 0, which also acts as the zero of every
// tensor shape.
func Zero() *Constant { return &Constant{value: operator.Scalar(0)} }

// One returns the scalar constant 1, which also acts as the multiplicative
// identity for tensors.
func One() *Constant { return &Constant{value: operator.Scalar(1)} }

// ones returns the constant tensor of ones of a valid, non-scalar shape.
func ones(shape tensor.Shape) *Constant {
	t, err := tensor.Full(shape, 1.0)
	if err != nil {
		panic(err)
	}
	return &Constant{value: operator.FromAccessor(t)}
}

var nextVariableID atomic.Uint64

// Variable is a symbol leaf. Every variable created by Var or TensorVar is
// distinct from every other, whatever its label.
type Variable struct {
	id    uint64
	label string
	shape tensor.Shape
}

// Var creates a new scalar variable. The label is only used for debugging;
// rendered names come from Names bindings.
func Var(label string) *Variable {
	return &Variable{id: nextVariableID.Add(1), label: label, shape: tensor.Shape{}}
}

// TensorVar creates a new variable whose values must have the given shape.
// Panics with tensor.ErrBadShape on an invalid shape.
func TensorVar(label string, shape tensor.Shape) *Variable {
	if err := shape.Validate(); err != nil {
		panic(errors.Wrapf(err, "variable %q", label))
	}
	return &Variable{id: nextVariableID.Add(1), label: label, shape: shape.Clone()}
}

// ID returns the variable's unique identity.
func (v *Variable) ID() uint64 { return v.id }

// Label returns the debugging label.
func (v *Variable) Label() string { return v.label }

// Shape returns the declared shape.
func (v *Variable) Shape() tensor.Shape { return v.shape.Clone() }

func (*Variable) node() {}

// Operation is an operator applied to its operands.
type Operation struct {
	op       Op
	operands []Expr
	shape    tensor.Shape
}

// Op returns the operator tag.
func (o *Operation) Op() Op { return o.op }

// Operand returns the i-th operand.
func (o *Operation) Operand(i int) Expr { return o.operands[i] }

// Operands returns a copy of the operand list.
func (o *Operation) Operands() []Expr {
	out := make([]Expr, len(o.operands))
	copy(out, o.operands)
	return out
}

// Shape returns the result shape inferred at construction.
func (o *Operation) Shape() tensor.Shape { return o.shape.Clone() }

func (*Operation) node() {}

// Equal reports whether a and b are structurally identical: same node kinds,
// equal constant values, the same variables and the same operators applied
// to equal operands in the same order.
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && operator.Equal(x.value, y.value)
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.id == y.id
	case *Operation:
		y, ok := b.(*Operation)
		if !ok || x.op != y.op || len(x.operands) != len(y.operands) {
			return false
		}
		for i := range x.operands {
			if !Equal(x.operands[i], y.operands[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Nodes counts the nodes of the tree; a leaf counts as 1. Shared sub-trees
// are counted once per reference.
func Nodes(e Expr) int {
	o, ok := e.(*Operation)
	if !ok {
		return 1
	}
	n := 1
	for _, operand := range o.operands {
		n += Nodes(operand)
	}
	return n
}

// IsZero reports whether e is the scalar constant 0.
func IsZero(e Expr) bool { return isScalarConstant(e, 0) }

// IsOne reports whether e is the scalar constant 1.
func IsOne(e Expr) bool { return isScalarConstant(e, 1) }

func isScalarConstant(e Expr, x float64) bool {
	c, ok := e.(*Constant)
	return ok && operator.IsScalar(c.value, x)
}

// isOnes reports whether e is a constant tensor whose elements are all 1.
func isOnes(e Expr) bool {
	c, ok := e.(*Constant)
	if !ok {
		return false
	}
	t, ok := c.value.(operator.Tensor)
	if !ok {
		return false
	}
	a := t.Accessor()
	for idx := range a.Shape().Indices() {
		if a.At(idx...) != 1 {
			return false
		}
	}
	return true
}

func isConstant(e Expr) bool {
	_, ok := e.(*Constant)
	return ok
}

// isOp reports whether e is an operation with one of the given operators.
func isOp(e Expr, ops ...Op) bool {
	o, ok := e.(*Operation)
	if !ok {
		return false
	}
	for _, op := range ops {
		if o.op == op {
			return true
		}
	}
	return false
}

func isScalarShaped(e Expr) bool {
	return e.Shape().Rank() == 0
}
