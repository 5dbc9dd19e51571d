package tensor

import "github.com/pkg/errors"

// Full creates a tensor with every element set to value.
//
// Example:
//
//	t, _ := tensor.Full(Shape{3, 3}, 3.14)
func Full[T Scalar](shape Shape, value T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	t := newTensor[T](shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Zeros creates a zero-filled tensor.
func Zeros[T Scalar](shape Shape) (*Tensor[T], error) {
	return Full(shape, T(0))
}

// FromSlice creates a tensor from an explicit element list in row-major order.
// The slice is copied. len(values) must equal shape.NumElements(), otherwise
// ErrShapeMismatch is returned.
func FromSlice[T Scalar](shape Shape, values []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(values) {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(values))
	}
	t := newTensor[T](shape)
	copy(t.data, values)
	return t, nil
}

// Generate creates a tensor whose element at idx is f(idx).
// f may be called concurrently for different indices, and idx is reused
// between calls; clone it to keep it.
func Generate[T Scalar](shape Shape, f func(idx Index) T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return fill(shape, f), nil
}

// Materialize copies any accessor into a new Tensor.
// A *Tensor is returned unchanged since tensors are immutable.
func Materialize[T Scalar](a Accessor[T]) *Tensor[T] {
	if t, ok := a.(*Tensor[T]); ok {
		return t
	}
	return fill(a.Shape(), func(idx Index) T { return a.At(idx...) })
}

// MustFromSlice is FromSlice that panics on error. Intended for tests and
// literals whose shape is known to be right.
func MustFromSlice[T Scalar](shape Shape, values []T) *Tensor[T] {
	t, err := FromSlice(shape, values)
	if err != nil {
		panic(err)
	}
	return t
}

// fill is the single place where a result tensor is written. Each chunk of
// flat offsets recovers its starting multi-index once, then walks forward.
func fill[T Scalar](shape Shape, f func(idx Index) T) *Tensor[T] {
	t := newTensor[T](shape)
	forChunks(len(t.data), func(start, end int) {
		idx := shape.Unflatten(start)
		for i := start; i < end; i++ {
			t.data[i] = f(idx)
			advance(idx, shape)
		}
	})
	return t
}

// advance increments idx in row-major order, wrapping to zero after the last index.
func advance(idx Index, shape Shape) {
	for d := len(shape) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return
		}
		idx[d] = 0
	}
}
