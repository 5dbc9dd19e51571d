package operator

import (
	"math"

	"github.com/born-ml/xpress/internal/tensor"
)

// Built-in kernels.
//
//	Kernel    s⊗s  t⊗s          s⊗t          t⊗t
//	Add       a+b  broadcast    commutative  element-wise sum
//	Sub       a-b  broadcast    broadcast    element-wise difference
//	Mul       a*b  broadcast    commutative  contraction Σ a[i]*b[i]
//	Hadamard  a*b  broadcast    commutative  element-wise product
//	Div       a/b  broadcast    -            -
//	Pow       a^b  element-wise -            -
var (
	Add = &BinaryKernel{
		Op:            "add",
		IsCommutative: true,
		ScalarScalar:  func(a, b float64) float64 { return a + b },
		TensorScalar:  shift(1),
		TensorTensor:  zip(tensor.Add[float64]),
	}

	Sub = &BinaryKernel{
		Op:           "sub",
		ScalarScalar: func(a, b float64) float64 { return a - b },
		TensorScalar: shift(-1),
		ScalarTensor: func(s float64, t tensor.Accessor[float64]) *tensor.Tensor[float64] {
			return tensor.Map(t, func(x float64) float64 { return s - x })
		},
		TensorTensor: zip(tensor.Sub[float64]),
	}

	Mul = &BinaryKernel{
		Op:            "mul",
		IsCommutative: true,
		Contract:      true,
		ScalarScalar:  func(a, b float64) float64 { return a * b },
		TensorScalar:  tensor.Scale[float64],
		TensorTensor: func(a, b tensor.Accessor[float64]) (Value, error) {
			dot, err := tensor.Dot(a, b)
			if err != nil {
				return nil, err
			}
			return Scalar(dot), nil
		},
	}

	Hadamard = &BinaryKernel{
		Op:            "hadamard",
		IsCommutative: true,
		ScalarScalar:  func(a, b float64) float64 { return a * b },
		TensorScalar:  tensor.Scale[float64],
		TensorTensor:  zip(tensor.Mul[float64]),
	}

	Div = &BinaryKernel{
		Op:           "div",
		ScalarScalar: func(a, b float64) float64 { return a / b },
		TensorScalar: func(t tensor.Accessor[float64], s float64) *tensor.Tensor[float64] {
			return tensor.Map(t, func(x float64) float64 { return x / s })
		},
	}

	// Pow takes scalar exponents only; tensor exponents are not defined.
	Pow = &BinaryKernel{
		Op:           "pow",
		ScalarScalar: math.Pow,
		TensorScalar: tensor.Pow[float64],
	}

	Neg = &UnaryKernel{Op: "neg", Fn: func(x float64) float64 { return -x }}
	Log = &UnaryKernel{Op: "log", Fn: math.Log}
	Exp = &UnaryKernel{Op: "exp", Fn: math.Exp}
	Sin = &UnaryKernel{Op: "sin", Fn: math.Sin}
	Cos = &UnaryKernel{Op: "cos", Fn: math.Cos}
)

// shift returns the rule t + sign*s applied to every element.
func shift(sign float64) func(t tensor.Accessor[float64], s float64) *tensor.Tensor[float64] {
	return func(t tensor.Accessor[float64], s float64) *tensor.Tensor[float64] {
		return tensor.Map(t, func(x float64) float64 { return x + sign*s })
	}
}

// zip lifts an element-wise tensor kernel into a TensorTensor rule.
func zip(f func(a, b tensor.Accessor[float64]) (*tensor.Tensor[float64], error)) func(a, b tensor.Accessor[float64]) (Value, error) {
	return func(a, b tensor.Accessor[float64]) (Value, error) {
		t, err := f(a, b)
		if err != nil {
			return nil, err
		}
		return Tensor{data: t}, nil
	}
}
