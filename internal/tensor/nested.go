package tensor

import (
	"reflect"

	"github.com/pkg/errors"
)

// NestedView adapts nested Go slices or arrays (for example [][]float64 or
// [2][3]int) to the Accessor interface without copying them.
//
// The leading index component selects a sub-sequence and the remaining
// components are resolved against it, one nesting level per dimension.
type NestedView[T Scalar] struct {
	root  reflect.Value
	shape Shape
}

// Nested wraps v as an accessor.
//
// v must be a slice, an array, or a pointer to an array, nested until the
// leaves have exactly type T, and rectangular at every level. Anything else is
// rejected with ErrNotTensor.
//
// Example:
//
//	view, err := tensor.Nested[float64]([][]float64{{1, 2, 3}, {4, 5, 6}})
//	// view.Shape() == Shape{2, 3}, view.At(1, 2) == 6
func Nested[T Scalar](v any) (*NestedView[T], error) {
	root := reflect.ValueOf(v)
	if !root.IsValid() {
		return nil, errors.Wrap(ErrNotTensor, "nil value")
	}
	if root.Kind() == reflect.Pointer && !root.IsNil() && root.Elem().Kind() == reflect.Array {
		root = root.Elem()
	}
	leaf := reflect.TypeFor[T]()

	shape, err := nestedShape(root.Type(), root, leaf)
	if err != nil {
		return nil, err
	}
	if err := checkRectangular(root, shape); err != nil {
		return nil, err
	}
	return &NestedView[T]{root: root, shape: shape}, nil
}

// nestedShape derives the extents by following the first element of every level.
func nestedShape(t reflect.Type, v reflect.Value, leaf reflect.Type) (Shape, error) {
	var shape Shape
	for t != leaf {
		switch t.Kind() {
		case reflect.Slice, reflect.Array:
		default:
			return nil, errors.Wrapf(ErrNotTensor, "%v is not indexable with leaves of type %v", t, leaf)
		}
		if v.Len() == 0 {
			return nil, errors.Wrapf(ErrNotTensor, "empty %v has no extent", t)
		}
		shape = append(shape, v.Len())
		t = t.Elem()
		v = v.Index(0)
	}
	if len(shape) == 0 {
		return nil, errors.Wrapf(ErrNotTensor, "%v is a scalar, not a sequence", leaf)
	}
	return shape, nil
}

func checkRectangular(v reflect.Value, shape Shape) error {
	if len(shape) == 0 {
		return nil
	}
	if v.Len() != shape[0] {
		return errors.Wrapf(ErrNotTensor, "ragged nesting: length %d, want %d", v.Len(), shape[0])
	}
	for i := 0; i < v.Len(); i++ {
		if err := checkRectangular(v.Index(i), shape[1:]); err != nil {
			return err
		}
	}
	return nil
}

// Shape returns the derived shape of the nested value.
func (n *NestedView[T]) Shape() Shape {
	return n.shape.Clone()
}

// At returns the element at idx.
func (n *NestedView[T]) At(idx ...int) T {
	return n.leaf(idx).Interface().(T)
}

// Set writes value at idx. Panics if the underlying storage is not addressable
// (an array passed by value).
func (n *NestedView[T]) Set(value T, idx ...int) {
	leaf := n.leaf(idx)
	if !leaf.CanSet() {
		panic(errors.Errorf("nested value of type %v is read-only; pass a slice or a pointer to an array", n.root.Type()))
	}
	leaf.Set(reflect.ValueOf(value))
}

func (n *NestedView[T]) leaf(idx Index) reflect.Value {
	mustFlatten(n.shape, idx)
	v := n.root
	for _, i := range idx {
		v = v.Index(i)
	}
	return v
}
