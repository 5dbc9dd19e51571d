// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/xpress/internal/parallel"
	"github.com/born-ml/xpress/internal/tensor"
)

// Type aliases for public API

// Scalar is the constraint for tensor element types.
// Supported types: float32, float64, int, int32, int64.
type Scalar = tensor.Scalar

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Index is a multi-index, one coordinate per dimension.
type Index = tensor.Index

// Accessor is any value with a shape whose elements can be read by
// multi-index.
type Accessor[T Scalar] = tensor.Accessor[T]

// Mutable is an Accessor whose elements can also be written.
type Mutable[T Scalar] = tensor.Mutable[T]

// Tensor is the built-in dense tensor.
//
// Example:
//
//	t, _ := tensor.FromSlice(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//	t.At(1, 2) // 6
type Tensor[T Scalar] = tensor.Tensor[T]

// NestedView adapts nested slices or arrays to Mutable.
type NestedView[T Scalar] = tensor.NestedView[T]

// Config controls parallel construction of large tensors.
type Config = parallel.Config

// Errors returned by this package.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrIndex         = tensor.ErrIndex
	ErrBadShape      = tensor.ErrBadShape
	ErrNotTensor     = tensor.ErrNotTensor
)

// Creation functions

// Full creates a tensor with every element set to value.
//
// Example:
//
//	t, err := tensor.Full(tensor.Shape{2, 3}, 1.5)
func Full[T Scalar](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Scalar](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// FromSlice creates a tensor from row-major values. The number of values
// must equal shape.NumElements(), otherwise ErrShapeMismatch is returned.
//
// Example:
//
//	t, err := tensor.FromSlice(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
func FromSlice[T Scalar](shape Shape, values []T) (*Tensor[T], error) {
	return tensor.FromSlice(shape, values)
}

// Generate creates a tensor whose element at idx is f(idx).
func Generate[T Scalar](shape Shape, f func(idx Index) T) (*Tensor[T], error) {
	return tensor.Generate(shape, f)
}

// Materialize copies any accessor into a dense tensor.
func Materialize[T Scalar](a Accessor[T]) *Tensor[T] {
	return tensor.Materialize(a)
}

// Nested adapts nested slices or arrays of T, for example [][]float64 or
// [2][3]float64. Ragged or non-numeric values fail with ErrNotTensor.
func Nested[T Scalar](v any) (*NestedView[T], error) {
	return tensor.Nested[T](v)
}

// Access

// Get returns the element at idx, or ErrIndex if idx is out of range.
func Get[T Scalar](a Accessor[T], idx ...int) (T, error) {
	return tensor.Get(a, idx...)
}

// Put sets the element at idx, or returns ErrIndex if idx is out of range.
func Put[T Scalar](m Mutable[T], value T, idx ...int) error {
	return tensor.Put(m, value, idx...)
}

// Equal reports whether a and b have equal shapes and elements. Different
// shapes compare unequal.
func Equal[T Scalar](a, b Accessor[T]) bool {
	return tensor.Equal(a, b)
}

// Format renders a as nested brackets, e.g. [[1, 2], [3, 4]].
func Format[T Scalar](a Accessor[T]) string {
	return tensor.Format(a)
}

// Arithmetic

// Add returns the element-wise sum of two tensors of equal shape.
func Add[T Scalar](a, b Accessor[T]) (*Tensor[T], error) {
	return tensor.Add(a, b)
}

// Sub returns the element-wise difference of two tensors of equal shape.
func Sub[T Scalar](a, b Accessor[T]) (*Tensor[T], error) {
	return tensor.Sub(a, b)
}

// Mul returns the element-wise product of two tensors of equal shape.
func Mul[T Scalar](a, b Accessor[T]) (*Tensor[T], error) {
	return tensor.Mul(a, b)
}

// Scale multiplies every element by s.
func Scale[T Scalar](a Accessor[T], s T) *Tensor[T] {
	return tensor.Scale(a, s)
}

// Dot returns the contraction Σ a[idx]*b[idx] of two tensors of equal shape.
func Dot[T Scalar](a, b Accessor[T]) (T, error) {
	return tensor.Dot(a, b)
}

// Configuration

// DefaultConfig returns the default parallel construction settings.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns settings that build every tensor on the calling
// goroutine.
func Sequential() Config {
	return parallel.Sequential()
}

// Configure replaces the parallel construction settings. Intended to be
// called once at start-up.
func Configure(cfg Config) {
	tensor.Configure(cfg)
}
