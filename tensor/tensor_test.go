// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"testing"

	"github.com/born-ml/xpress/tensor"
)

// TestAccessorImplementations verifies the built-in types satisfy the access interfaces.
func TestAccessorImplementations(_ *testing.T) {
	var _ tensor.Accessor[float64] = (*tensor.Tensor[float64])(nil)
	var _ tensor.Mutable[float64] = (*tensor.NestedView[float64])(nil)
}

// TestPublicAPI exercises creation, access and arithmetic through the public package.
func TestPublicAPI(t *testing.T) {
	a, err := tensor.FromSlice(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	b, err := tensor.Nested[float64]([][]float64{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatalf("Nested failed: %v", err)
	}

	sum, err := tensor.Add[float64](a, b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := tensor.Format[float64](sum); got != "[[2, 2], [3, 5]]" {
		t.Errorf("Add = %s, want [[2, 2], [3, 5]]", got)
	}

	dot, err := tensor.Dot[float64](a, b)
	if err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if dot != 5 {
		t.Errorf("Dot = %v, want 5", dot)
	}

	v, err := tensor.Get[float64](a, 1, 0)
	if err != nil || v != 3 {
		t.Errorf("Get(1, 0) = %v, %v; want 3, nil", v, err)
	}
	if _, err := tensor.Get[float64](a, 2, 0); !errors.Is(err, tensor.ErrIndex) {
		t.Errorf("Get out of range: got %v, want ErrIndex", err)
	}
}

// TestFromSliceCountMismatch checks the element count contract.
func TestFromSliceCountMismatch(t *testing.T) {
	_, err := tensor.FromSlice(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5})
	if !errors.Is(err, tensor.ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

// TestEqualDifferentShapes checks that differing shapes compare unequal.
func TestEqualDifferentShapes(t *testing.T) {
	a, _ := tensor.Full(tensor.Shape{2, 3}, 1.0)
	b, _ := tensor.Full(tensor.Shape{3, 2}, 1.0)
	if tensor.Equal[float64](a, b) {
		t.Error("tensors of different shapes must not be equal")
	}
	if !tensor.Equal[float64](a, tensor.Materialize[float64](a)) {
		t.Error("a tensor must equal its copy")
	}
}

// TestConfigure checks that sequential construction gives the same tensor.
func TestConfigure(t *testing.T) {
	defer tensor.Configure(tensor.DefaultConfig())

	gen := func(idx tensor.Index) float64 { return float64(idx[0]*100 + idx[1]) }
	parallelT, err := tensor.Generate(tensor.Shape{128, 100}, gen)
	if err != nil {
		t.Fatal(err)
	}

	tensor.Configure(tensor.Sequential())

	sequentialT, err := tensor.Generate(tensor.Shape{128, 100}, gen)
	if err != nil {
		t.Fatal(err)
	}
	if !parallelT.Equal(sequentialT) {
		t.Error("parallel and sequential construction differ")
	}
}
