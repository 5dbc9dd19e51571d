package optim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xpress/internal/expr"
	"github.com/born-ml/xpress/internal/tensor"
)

func point(values ...float64) *tensor.Tensor[float64] {
	return tensor.MustFromSlice(tensor.Shape{len(values)}, values)
}

// square returns (v - c)^2.
func square(v *expr.Variable, c float64) expr.Expr {
	return expr.Pow(expr.Sub(v, expr.Const(c)), expr.Const(2))
}

func TestSGD_SimpleUpdate(t *testing.T) {
	sgd := NewSGD(SGDConfig{LR: 0.1})

	x, err := sgd.Step(point(2), point(1))
	require.NoError(t, err)

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, x.At(0), 1e-12)
}

func TestSGD_WithMomentum(t *testing.T) {
	sgd := NewSGD(SGDConfig{LR: 0.1, Momentum: 0.9})

	x, err := sgd.Step(point(2), point(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.9, x.At(0), 1e-12)

	// velocity = 0.9 * 1 + 1 = 1.9, x = 1.9 - 0.1 * 1.9 = 1.71
	x, err = sgd.Step(x, point(1))
	require.NoError(t, err)
	assert.InDelta(t, 1.71, x.At(0), 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	sgd := NewSGD(SGDConfig{})
	assert.Equal(t, 0.01, sgd.GetLR())

	sgd.SetLR(0.5)
	assert.Equal(t, 0.5, sgd.GetLR())
}

func TestAdam_FirstStep(t *testing.T) {
	adam := NewAdam(AdamConfig{LR: 0.1})

	// The bias-corrected first step moves each coordinate by lr against the
	// sign of its gradient.
	x, err := adam.Step(point(1, 1), point(4, -0.5))
	require.NoError(t, err)

	assert.InDelta(t, 0.9, x.At(0), 1e-6)
	assert.InDelta(t, 1.1, x.At(1), 1e-6)
	assert.Equal(t, 1, adam.GetTimestep())
}

func TestAdam_Defaults(t *testing.T) {
	adam := NewAdam(AdamConfig{})
	assert.Equal(t, 0.001, adam.GetLR())
	assert.Equal(t, 0.9, adam.beta1)
	assert.Equal(t, 0.999, adam.beta2)
	assert.Equal(t, 1e-8, adam.eps)
}

func TestStep_ShapeMismatch(t *testing.T) {
	for name, opt := range map[string]Optimizer{
		"sgd":  NewSGD(SGDConfig{}),
		"adam": NewAdam(AdamConfig{}),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := opt.Step(point(1, 2), point(1))
			assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
		})
	}
}

func TestObjective(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	obj, err := NewObjective(expr.Mul(x, y), x, y)
	require.NoError(t, err)
	assert.Equal(t, 2, obj.Dim())
	assert.True(t, expr.Equal(y, obj.Partial(0)))

	v, err := obj.Value(point(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)

	g, err := obj.Gradient(point(3, 4))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3}, g.Data())

	_, err = obj.Value(point(1))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestNewObjective_Rejects(t *testing.T) {
	x := expr.Var("x")
	w := expr.TensorVar("w", tensor.Shape{2})

	_, err := NewObjective(x)
	assert.ErrorIs(t, err, ErrNoVariables)

	_, err = NewObjective(expr.Mul(x, w), x)
	assert.ErrorIs(t, err, ErrNotScalar, "tensor-valued objective")

	_, err = NewObjective(expr.Mul(w, w), w)
	assert.ErrorIs(t, err, ErrNotScalar, "tensor variable")
}

func TestMinimize_SGD(t *testing.T) {
	x := expr.Var("x")
	obj, err := NewObjective(square(x, 3), x)
	require.NoError(t, err)

	res, err := Minimize(context.Background(), obj, []float64{0}, NewSGD(SGDConfig{LR: 0.1}), MinimizeConfig{})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, 3, res.X[0], 1e-6)
	assert.InDelta(t, 0, res.Value, 1e-12)
	assert.Less(t, res.Steps, 1000)
}

func TestMinimize_Adam(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	obj, err := NewObjective(expr.Add(square(x, 1), square(y, -2)), x, y)
	require.NoError(t, err)

	res, err := Minimize(context.Background(), obj, []float64{0, 0}, NewAdam(AdamConfig{LR: 0.05}), MinimizeConfig{MaxSteps: 3000})
	require.NoError(t, err)

	assert.InDelta(t, 1, res.X[0], 1e-4)
	assert.InDelta(t, -2, res.X[1], 1e-4)
}

func TestMinimize_StepLimit(t *testing.T) {
	x := expr.Var("x")
	obj, err := NewObjective(square(x, 3), x)
	require.NoError(t, err)

	res, err := Minimize(context.Background(), obj, []float64{0}, NewSGD(SGDConfig{LR: 0.1}), MinimizeConfig{MaxSteps: 1})
	require.NoError(t, err)

	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Steps)
	assert.InDelta(t, 0.6, res.X[0], 1e-12)
}

func TestMinimize_Errors(t *testing.T) {
	x := expr.Var("x")
	obj, err := NewObjective(square(x, 3), x)
	require.NoError(t, err)

	_, err = Minimize(context.Background(), obj, []float64{0, 1}, NewSGD(SGDConfig{}), MinimizeConfig{})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Minimize(ctx, obj, []float64{0}, NewSGD(SGDConfig{}), MinimizeConfig{})
	assert.ErrorIs(t, err, context.Canceled)
}
