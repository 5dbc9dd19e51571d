package tensor

import "github.com/pkg/errors"

// Accessor is the capability shared by every value that can take part in
// tensor operations: a known shape and element reads by multi-index.
//
// Implementations:
//   - *Tensor[T]: flat buffer read through Shape.Flatten
//   - *NestedView[T]: nested Go slices or arrays, one level per dimension
//
// At panics with ErrIndex when the index rank differs from the shape rank or
// a component is out of bounds. Use Get for a checked read.
type Accessor[T Scalar] interface {
	Shape() Shape
	At(idx ...int) T
}

// Mutable is an Accessor that also supports element writes.
type Mutable[T Scalar] interface {
	Accessor[T]
	Set(value T, idx ...int)
}

// Get reads the element of a at idx, validating the index first.
func Get[T Scalar](a Accessor[T], idx ...int) (T, error) {
	if _, err := a.Shape().Flatten(idx); err != nil {
		var zero T
		return zero, err
	}
	return a.At(idx...), nil
}

// Put writes value into m at idx, validating the index first.
func Put[T Scalar](m Mutable[T], value T, idx ...int) error {
	if _, err := m.Shape().Flatten(idx); err != nil {
		return err
	}
	m.Set(value, idx...)
	return nil
}

// Equal reports whether two accessors hold the same shape and elements.
// Different shapes compare unequal; this is never an error.
func Equal[T Scalar](a, b Accessor[T]) bool {
	shape := a.Shape()
	if !shape.Equal(b.Shape()) {
		return false
	}
	for idx := range shape.Indices() {
		if a.At(idx...) != b.At(idx...) {
			return false
		}
	}
	return true
}

// mustFlatten is Flatten for hot paths where a bad index is a caller bug.
func mustFlatten(s Shape, idx Index) int {
	flat, err := s.Flatten(idx)
	if err != nil {
		panic(err)
	}
	return flat
}

// checkSameShape returns ErrShapeMismatch unless a and b agree.
func checkSameShape(op string, a, b Shape) error {
	if !a.Equal(b) {
		return errors.Wrapf(ErrShapeMismatch, "%s: %v vs %v", op, a, b)
	}
	return nil
}
