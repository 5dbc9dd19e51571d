package operator

import (
	"github.com/pkg/errors"

	"github.com/born-ml/xpress/internal/tensor"
)

// Kernel is the value-level evaluation rule of an operator.
type Kernel interface {
	// Name identifies the operator in error messages.
	Name() string

	// Arity is the number of operands (1 or 2).
	Arity() int

	// Commutative reports whether operand order does not matter.
	Commutative() bool

	// Apply evaluates the operator on concrete operands.
	Apply(args ...Value) (Value, error)

	// ResultShape returns the shape Apply would produce for operands of the
	// given shapes, or an error if the combination is not defined.
	ResultShape(shapes ...tensor.Shape) (tensor.Shape, error)
}

// BinaryKernel is a two-operand kernel with one rule per operand-category pair.
// A nil rule means the pair is not defined for the operator.
//
// If the kernel is commutative and ScalarTensor is nil, scalar ⊗ tensor is
// evaluated as tensor ⊗ scalar.
type BinaryKernel struct {
	Op            string
	IsCommutative bool

	// Contract marks a TensorTensor rule that reduces two equally shaped
	// tensors to a scalar; otherwise the result has the operands' shape.
	Contract bool

	ScalarScalar func(a, b float64) float64
	TensorScalar func(t tensor.Accessor[float64], s float64) *tensor.Tensor[float64]
	ScalarTensor func(s float64, t tensor.Accessor[float64]) *tensor.Tensor[float64]
	TensorTensor func(a, b tensor.Accessor[float64]) (Value, error)
}

// Name returns the operator name.
func (k *BinaryKernel) Name() string { return k.Op }

// Arity returns 2.
func (k *BinaryKernel) Arity() int { return 2 }

// Commutative reports the commutativity flag.
func (k *BinaryKernel) Commutative() bool { return k.IsCommutative }

// scalarTensor resolves the scalar ⊗ tensor rule, delegating to the
// tensor ⊗ scalar rule for commutative kernels.
func (k *BinaryKernel) scalarTensor() func(s float64, t tensor.Accessor[float64]) *tensor.Tensor[float64] {
	if k.ScalarTensor != nil {
		return k.ScalarTensor
	}
	if k.IsCommutative && k.TensorScalar != nil {
		return func(s float64, t tensor.Accessor[float64]) *tensor.Tensor[float64] {
			return k.TensorScalar(t, s)
		}
	}
	return nil
}

// ResultShape checks that the operand categories are supported and, for
// tensor ⊗ tensor, that both shapes agree.
func (k *BinaryKernel) ResultShape(shapes ...tensor.Shape) (tensor.Shape, error) {
	if err := checkArity(k, len(shapes)); err != nil {
		return nil, err
	}
	a, b := shapes[0], shapes[1]
	ca, cb := CategoryOf(a), CategoryOf(b)

	switch {
	case ca == ScalarCategory && cb == ScalarCategory && k.ScalarScalar != nil:
		return tensor.Shape{}, nil
	case ca == TensorCategory && cb == ScalarCategory && k.TensorScalar != nil:
		return a.Clone(), nil
	case ca == ScalarCategory && cb == TensorCategory && k.scalarTensor() != nil:
		return b.Clone(), nil
	case ca == TensorCategory && cb == TensorCategory && k.TensorTensor != nil:
		if !a.Equal(b) {
			return nil, errors.Wrapf(tensor.ErrShapeMismatch, "%s: %v vs %v", k.Op, a, b)
		}
		if k.Contract {
			return tensor.Shape{}, nil
		}
		return a.Clone(), nil
	}
	return nil, errors.Wrapf(ErrOperandCategory, "%s is not defined for %s and %s", k.Op, ca, cb)
}

// Apply evaluates the kernel, dispatching on the operand categories.
func (k *BinaryKernel) Apply(args ...Value) (Value, error) {
	if err := checkArity(k, len(args)); err != nil {
		return nil, err
	}
	if _, err := k.ResultShape(args[0].Shape(), args[1].Shape()); err != nil {
		return nil, err
	}

	switch a := args[0].(type) {
	case Scalar:
		switch b := args[1].(type) {
		case Scalar:
			return Scalar(k.ScalarScalar(float64(a), float64(b))), nil
		case Tensor:
			return Tensor{data: k.scalarTensor()(float64(a), b.data)}, nil
		}
	case Tensor:
		switch b := args[1].(type) {
		case Scalar:
			return Tensor{data: k.TensorScalar(a.data, float64(b))}, nil
		case Tensor:
			return k.TensorTensor(a.data, b.data)
		}
	}
	return nil, errors.Wrapf(ErrOperandCategory, "%s: unsupported operand types %T and %T", k.Op, args[0], args[1])
}

// UnaryKernel is a one-operand kernel applied element-wise to tensors.
type UnaryKernel struct {
	Op string
	Fn func(x float64) float64
}

// Name returns the operator name.
func (k *UnaryKernel) Name() string { return k.Op }

// Arity returns 1.
func (k *UnaryKernel) Arity() int { return 1 }

// Commutative returns false.
func (k *UnaryKernel) Commutative() bool { return false }

// ResultShape returns the operand's shape.
func (k *UnaryKernel) ResultShape(shapes ...tensor.Shape) (tensor.Shape, error) {
	if err := checkArity(k, len(shapes)); err != nil {
		return nil, err
	}
	return shapes[0].Clone(), nil
}

// Apply evaluates Fn on a scalar, or on every element of a tensor.
func (k *UnaryKernel) Apply(args ...Value) (Value, error) {
	if err := checkArity(k, len(args)); err != nil {
		return nil, err
	}
	switch x := args[0].(type) {
	case Scalar:
		return Scalar(k.Fn(float64(x))), nil
	case Tensor:
		return Tensor{data: tensor.Map(x.data, k.Fn)}, nil
	}
	return nil, errors.Wrapf(ErrOperandCategory, "%s: unsupported operand type %T", k.Op, args[0])
}

func checkArity(k Kernel, n int) error {
	if n != k.Arity() {
		return errors.Wrapf(ErrArity, "%s takes %d operands, got %d", k.Name(), k.Arity(), n)
	}
	return nil
}
