package tensor

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Tensor is a fixed-shape, dense, row-major container of elements of type T.
//
// A Tensor is read-only once its constructor returns: every operation in this
// module produces a fresh result, so tensors can be shared between goroutines
// without synchronization.
//
// Example:
//
//	t, _ := tensor.FromSlice(Shape{2, 2}, []float64{1, 2, 3, 4})
//	v := t.At(1, 0) // 3
type Tensor[T Scalar] struct {
	shape   Shape
	strides []int
	data    []T
}

// newTensor allocates a zero-filled tensor; shape must already be valid.
func newTensor[T Scalar](shape Shape) *Tensor[T] {
	shape = shape.Clone()
	return &Tensor[T]{
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    make([]T, shape.NumElements()),
	}
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns a copy of the elements in row-major order.
func (t *Tensor[T]) Data() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)
	return out
}

// At returns the element at the given indices.
// Rank-1 tensors take a single index. Panics with ErrIndex if the indices are
// out of bounds or their count differs from the rank.
//
// Example:
//
//	t := tensor.Full(Shape{3, 4}, 0.0)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	return t.data[t.offset(indices)]
}

// Get is At with an error instead of a panic.
func (t *Tensor[T]) Get(indices ...int) (T, error) {
	return Get[T](t, indices...)
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if len(t.shape) != 0 {
		panic(errors.Wrapf(ErrShapeMismatch, "Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// Equal reports whether other has the same shape and elements.
func (t *Tensor[T]) Equal(other Accessor[T]) bool {
	if o, ok := other.(*Tensor[T]); ok {
		if !t.shape.Equal(o.shape) {
			return false
		}
		for i := range t.data {
			if t.data[i] != o.data[i] {
				return false
			}
		}
		return true
	}
	return Equal[T](t, other)
}

// String renders the tensor as nested brackets, e.g. [[1, 2], [3, 4]].
func (t *Tensor[T]) String() string {
	return Format[T](t)
}

// GoString includes the element type and shape for debugging output.
func (t *Tensor[T]) GoString() string {
	return fmt.Sprintf("Tensor[%s]%v%s", t.DType(), t.shape, t.String())
}

// set is only used while a new tensor is being filled.
func (t *Tensor[T]) set(value T, indices Index) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor[T]) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(errors.Wrapf(ErrIndex, "expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(errors.Wrapf(ErrIndex, "index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.strides[i]
	}
	return offset
}

// Format renders any accessor as nested brackets. Rank-0 values print as
// their single element.
func Format[T Scalar](a Accessor[T]) string {
	var sb strings.Builder
	shape := a.Shape()
	idx := make(Index, 0, len(shape))
	formatLevel(&sb, a, shape, idx)
	return sb.String()
}

func formatLevel[T Scalar](sb *strings.Builder, a Accessor[T], shape Shape, idx Index) {
	d := len(idx)
	if d == len(shape) {
		fmt.Fprint(sb, a.At(idx...))
		return
	}
	sb.WriteByte('[')
	for i := 0; i < shape[d]; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		formatLevel(sb, a, shape, append(idx, i))
	}
	sb.WriteByte(']')
}
