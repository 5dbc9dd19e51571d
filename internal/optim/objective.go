package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/xpress/internal/expr"
	"github.com/born-ml/xpress/internal/operator"
	"github.com/born-ml/xpress/internal/tensor"
)

// Objective is a scalar expression minimized over scalar variables. Its
// partial derivatives are built once by NewObjective.
type Objective struct {
	f    expr.Expr
	vars []*expr.Variable
	grad []expr.Expr
}

// NewObjective prepares f for minimization over vars, in that order.
//
// Returns ErrNotScalar if f or any variable is tensor-shaped, and
// ErrNoVariables if vars is empty.
func NewObjective(f expr.Expr, vars ...*expr.Variable) (*Objective, error) {
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	if f.Shape().Rank() != 0 {
		return nil, errors.Wrapf(ErrNotScalar, "objective has shape %v", f.Shape())
	}
	for _, v := range vars {
		if v.Shape().Rank() != 0 {
			return nil, errors.Wrapf(ErrNotScalar, "variable %q has shape %v", v.Label(), v.Shape())
		}
	}

	return &Objective{
		f:    f,
		vars: append([]*expr.Variable(nil), vars...),
		grad: expr.Gradient(f, vars...),
	}, nil
}

// Dim returns the number of variables.
func (o *Objective) Dim() int {
	return len(o.vars)
}

// Partial returns the derivative of the objective with respect to the i-th
// variable.
func (o *Objective) Partial(i int) expr.Expr {
	return o.grad[i]
}

// Value evaluates the objective at x.
func (o *Objective) Value(x *tensor.Tensor[float64]) (float64, error) {
	values, err := o.bind(x)
	if err != nil {
		return 0, err
	}
	return evalScalar(o.f, values)
}

// Gradient evaluates every partial derivative at x.
func (o *Objective) Gradient(x *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	values, err := o.bind(x)
	if err != nil {
		return nil, err
	}

	g := make([]float64, len(o.grad))
	for i, partial := range o.grad {
		if g[i], err = evalScalar(partial, values); err != nil {
			return nil, errors.WithMessagef(err, "partial derivative %d", i)
		}
	}
	return tensor.FromSlice(tensor.Shape{len(g)}, g)
}

// bind maps each coordinate of x to its variable.
func (o *Objective) bind(x *tensor.Tensor[float64]) (expr.Values, error) {
	if want := (tensor.Shape{len(o.vars)}); !x.Shape().Equal(want) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "point has shape %v, want %v", x.Shape(), want)
	}
	values := make(expr.Values, len(o.vars))
	for i, v := range o.vars {
		values[v] = x.At(i)
	}
	return values, nil
}

func evalScalar(e expr.Expr, values expr.Values) (float64, error) {
	v, err := expr.Evaluate(e, values)
	if err != nil {
		return 0, err
	}
	s, ok := v.(operator.Scalar)
	if !ok {
		return 0, errors.Wrapf(ErrNotScalar, "evaluated to %s", v.Category())
	}
	return float64(s), nil
}
