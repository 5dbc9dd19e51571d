package tensor

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
// A rank-0 (empty) shape describes a scalar.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrBadShape, "dimension %d is %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
// Shapes of different rank are never equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Flatten converts a multi-index into its row-major flat offset:
//
//	flat = Σ idx[d] * Π(s[d+1:])
//
// It fails with ErrIndex when the index rank differs from the shape rank or
// when any component is out of bounds.
func (s Shape) Flatten(idx Index) (int, error) {
	if len(idx) != len(s) {
		return 0, errors.Wrapf(ErrIndex, "index %v has rank %d, shape %v has rank %d", idx, len(idx), s, len(s))
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= s[d] {
			return 0, errors.Wrapf(ErrIndex, "index %d out of bounds for dimension %d (size %d)", i, d, s[d])
		}
		flat = flat*s[d] + i
	}
	return flat, nil
}

// Unflatten converts a flat offset back into a multi-index.
// Panics with ErrIndex if flat is outside [0, NumElements()).
func (s Shape) Unflatten(flat int) Index {
	if flat < 0 || flat >= s.NumElements() {
		panic(errors.Wrapf(ErrIndex, "flat index %d out of bounds for shape %v", flat, s))
	}
	idx := make(Index, len(s))
	for d := len(s) - 1; d >= 0; d-- {
		idx[d] = flat % s[d]
		flat /= s[d]
	}
	return idx
}

// Indices returns every valid multi-index of the shape in row-major order.
//
// The sequence is lazy and restartable: every range over it starts a fresh
// walk. The yielded index is owned by the caller.
//
// Example:
//
//	for idx := range (Shape{2, 2}).Indices() {
//	    fmt.Println(idx) // [0 0], [0 1], [1 0], [1 1]
//	}
func (s Shape) Indices() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for _, dim := range s {
			if dim <= 0 {
				return
			}
		}
		cur := make(Index, len(s))
		for {
			if !yield(cur.Clone()) {
				return
			}
			// Odometer increment, last dimension fastest.
			d := len(s) - 1
			for ; d >= 0; d-- {
				cur[d]++
				if cur[d] < s[d] {
					break
				}
				cur[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// String returns the shape as "[2 3]"; the scalar shape prints as "[]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = fmt.Sprint(dim)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
