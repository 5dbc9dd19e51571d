// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense tensors and uniform multi-index access for
// the xpress expression engine.
//
// # Overview
//
// Every value with a shape takes part in tensor arithmetic through the
// Accessor interface:
//   - *Tensor[T]: the built-in dense, row-major tensor
//   - *NestedView[T]: a view over nested slices or arrays ([][]float64,
//     [2][3]float64, ...)
//   - any user type implementing Shape and At
//
// # Basic Usage
//
//	a, _ := tensor.FromSlice(tensor.Shape{2, 2}, []float64{1, 2, 3, 4})
//	b, _ := tensor.Nested[float64]([][]float64{{1, 0}, {0, 1}})
//
//	sum, _ := tensor.Add[float64](a, b)  // [[2, 2], [3, 5]]
//	dot, _ := tensor.Dot[float64](a, b)  // 5
//
// # Shapes and Indices
//
// A Shape lists the extent of each dimension. A multi-index addresses one
// element and flattens row-major:
//
//	flat = Σ idx[d] * Π shape[d+1:]
//
// Shape.Indices enumerates every multi-index in that order.
//
// # Immutability
//
// Tensors are immutable once constructed: operations return new tensors.
// Construction of large tensors is split across goroutines; see Configure.
package tensor
