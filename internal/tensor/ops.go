package tensor

import "math"

// Element-wise kernels. Each is written once against Accessor, so tensors and
// nested Go sequences mix freely; results are always fresh Tensors.

// Map applies f to every element of a.
func Map[T Scalar](a Accessor[T], f func(T) T) *Tensor[T] {
	return fill(a.Shape(), func(idx Index) T {
		return f(a.At(idx...))
	})
}

// ZipWith combines the elements of a and b pairwise.
// Returns ErrShapeMismatch unless both have the same shape.
func ZipWith[T Scalar](a, b Accessor[T], f func(x, y T) T) (*Tensor[T], error) {
	shape := a.Shape()
	if err := checkSameShape("zip", shape, b.Shape()); err != nil {
		return nil, err
	}
	return fill(shape, func(idx Index) T {
		return f(a.At(idx...), b.At(idx...))
	}), nil
}

// Scale multiplies every element of a by s.
//
// Example:
//
//	t, _ := tensor.Full(Shape{2}, 3.0)
//	tensor.Scale(t, 4.0) // [12, 12]
func Scale[T Scalar](a Accessor[T], s T) *Tensor[T] {
	return Map(a, func(x T) T { return x * s })
}

// Add returns the element-wise sum a + b.
func Add[T Scalar](a, b Accessor[T]) (*Tensor[T], error) {
	return ZipWith(a, b, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a - b.
func Sub[T Scalar](a, b Accessor[T]) (*Tensor[T], error) {
	return ZipWith(a, b, func(x, y T) T { return x - y })
}

// Mul returns the element-wise (Hadamard) product of a and b.
func Mul[T Scalar](a, b Accessor[T]) (*Tensor[T], error) {
	return ZipWith(a, b, func(x, y T) T { return x * y })
}

// Dot contracts two equally shaped tensors to the scalar Σ a[idx]*b[idx].
//
// Example:
//
//	a := tensor.MustFromSlice(Shape{3}, []float64{1, 2, 3})
//	b := tensor.MustFromSlice(Shape{3}, []float64{4, 5, 6})
//	tensor.Dot(a, b) // 32
func Dot[T Scalar](a, b Accessor[T]) (T, error) {
	var sum T
	shape := a.Shape()
	if err := checkSameShape("dot", shape, b.Shape()); err != nil {
		return sum, err
	}
	for idx := range shape.Indices() {
		sum += a.At(idx...) * b.At(idx...)
	}
	return sum, nil
}

// Pow raises every element of a to the scalar exponent e.
func Pow[T Scalar](a Accessor[T], e float64) *Tensor[T] {
	return Map(a, func(x T) T { return T(math.Pow(float64(x), e)) })
}

// Sum adds up every element of a.
func Sum[T Scalar](a Accessor[T]) T {
	var sum T
	for idx := range a.Shape().Indices() {
		sum += a.At(idx...)
	}
	return sum
}
