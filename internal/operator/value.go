// Package operator defines operand values and the evaluation kernels of the
// built-in operators.
//
// Every operand falls into one of two categories:
//   - ScalarCategory: a single float64 (Scalar)
//   - TensorCategory: any tensor.Accessor[float64] of rank >= 1 (Tensor)
//
// A kernel holds one evaluation rule per category pair it supports and
// dispatches on the categories of its arguments:
//
//	Mul.Apply(Scalar(2), Scalar(3))        // 6
//	Mul.Apply(t, Scalar(4))                // t scaled by 4
//	Mul.Apply(Scalar(4), t)                // same, delegated (Mul is commutative)
//	Mul.Apply(a, b)                        // Σ a[idx]*b[idx], a scalar
package operator

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/born-ml/xpress/internal/tensor"
)

// Category classifies an operand as scalar or tensor.
type Category int

// Operand categories.
const (
	ScalarCategory Category = iota
	TensorCategory
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case ScalarCategory:
		return "scalar"
	case TensorCategory:
		return "tensor"
	default:
		return "unknown"
	}
}

// CategoryOf returns the category implied by a shape: rank 0 is scalar.
func CategoryOf(shape tensor.Shape) Category {
	if shape.Rank() == 0 {
		return ScalarCategory
	}
	return TensorCategory
}

// Value is an operand or result of an operator.
type Value interface {
	Category() Category
	Shape() tensor.Shape
	String() string
}

// Scalar is a scalar operand.
type Scalar float64

// Category returns ScalarCategory.
func (Scalar) Category() Category { return ScalarCategory }

// Shape returns the rank-0 shape.
func (Scalar) Shape() tensor.Shape { return tensor.Shape{} }

// String formats the scalar with the shortest exact representation.
func (s Scalar) String() string {
	return strconv.FormatFloat(float64(s), 'g', -1, 64)
}

// Tensor is a tensor operand backed by any accessor. The accessor is not
// copied; callers must not mutate it while the value is in use.
type Tensor struct {
	data tensor.Accessor[float64]
}

// Category returns TensorCategory.
func (Tensor) Category() Category { return TensorCategory }

// Shape returns the shape of the underlying accessor.
func (t Tensor) Shape() tensor.Shape { return t.data.Shape() }

// Accessor returns the underlying accessor.
func (t Tensor) Accessor() tensor.Accessor[float64] { return t.data }

// String renders the elements as nested brackets.
func (t Tensor) String() string { return tensor.Format(t.data) }

// FromAccessor wraps a as a Value. Rank-0 accessors become Scalars.
func FromAccessor(a tensor.Accessor[float64]) Value {
	if a.Shape().Rank() == 0 {
		return Scalar(a.At())
	}
	return Tensor{data: a}
}

// ValueOf converts a Go value into an operand.
//
// Accepted inputs: Value, the numeric types float64, float32, int, int32 and
// int64, any tensor.Accessor[float64], and nested float64 slices or arrays
// (adapted without copying). Anything else fails with tensor.ErrNotTensor.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(x), nil
	case int:
		return Scalar(x), nil
	case int32:
		return Scalar(x), nil
	case int64:
		return Scalar(x), nil
	case tensor.Accessor[float64]:
		return FromAccessor(x), nil
	}
	view, err := tensor.Nested[float64](v)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot use %T as an operand", v)
	}
	return Tensor{data: view}, nil
}

// Equal reports whether two values have the same category, shape and elements.
func Equal(a, b Value) bool {
	if a.Category() != b.Category() {
		return false
	}
	if a.Category() == ScalarCategory {
		return a.(Scalar) == b.(Scalar)
	}
	return tensor.Equal(a.(Tensor).data, b.(Tensor).data)
}

// IsScalar reports whether v is the scalar x.
func IsScalar(v Value, x float64) bool {
	s, ok := v.(Scalar)
	return ok && float64(s) == x
}
