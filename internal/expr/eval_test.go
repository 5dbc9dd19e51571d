package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xpress/internal/operator"
	"github.com/born-ml/xpress/internal/tensor"
)

func TestEvaluate_Scalars(t *testing.T) {
	x, y := Var("x"), Var("y")

	tests := []struct {
		name string
		e    Expr
		want float64
	}{
		{"pow", Pow(x, Const(2)), 9},
		{"sum", Add(x, y), 7},
		{"difference", Sub(x, y), -1},
		{"quotient", Div(y, x), 4.0 / 3.0},
		{"neg", Neg(Mul(x, y)), -12},
		{"exp log", Exp(Log(Add(x, y))), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Evaluate(tt.e, Values{x: 3, y: 4.0})
			require.NoError(t, err)
			require.Equal(t, operator.ScalarCategory, v.Category())
			assert.InDelta(t, tt.want, float64(v.(operator.Scalar)), 1e-12)
		})
	}
}

func TestEvaluate_Tensors(t *testing.T) {
	a := TensorVar("a", tensor.Shape{3})
	b := TensorVar("b", tensor.Shape{3})
	values := Values{
		a: tensor.MustFromSlice(tensor.Shape{3}, []float64{1, 2, 3}),
		b: []float64{4, 5, 6},
	}

	dot, err := Evaluate(Mul(a, b), values)
	require.NoError(t, err)
	assert.Equal(t, operator.Scalar(32), dot)

	sum, err := Evaluate(Sub(Add(a, b), b), values)
	require.NoError(t, err)
	assert.Equal(t, "[1, 2, 3]", sum.String())

	scaled, err := Evaluate(Mul(a, Const(4)), values)
	require.NoError(t, err)
	assert.Equal(t, "[4, 8, 12]", scaled.String())

	prod, err := Evaluate(Hadamard(a, b), values)
	require.NoError(t, err)
	assert.Equal(t, "[4, 10, 18]", prod.String())
}

func TestEvaluate_NestedArrays(t *testing.T) {
	m := TensorVar("m", tensor.Shape{2, 2})
	e := Add(m, Const([2][2]float64{{1, 0}, {0, 1}}))

	v, err := Evaluate(e, Values{m: [][]float64{{1, 2}, {3, 4}}})
	require.NoError(t, err)
	assert.Equal(t, "[[2, 2], [3, 5]]", v.String())
}

func TestEvaluate_Unbound(t *testing.T) {
	x, y := Var("x"), Var("y")

	_, err := Evaluate(Add(x, y), Values{x: 1})
	assert.ErrorIs(t, err, ErrUnboundVariable)
}

func TestEvaluate_ShapeMismatch(t *testing.T) {
	a := TensorVar("a", tensor.Shape{2})
	x := Var("x")

	_, err := Evaluate(a, Values{a: []float64{1, 2, 3}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Evaluate(x, Values{x: []float64{1}})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = Evaluate(x, Values{x: "one"})
	assert.ErrorIs(t, err, tensor.ErrNotTensor)
}

func TestEvaluate_ConstantOnly(t *testing.T) {
	v, err := Evaluate(Const(2.5), nil)
	require.NoError(t, err)
	assert.Equal(t, operator.Scalar(2.5), v)
}
