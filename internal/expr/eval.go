package expr

import (
	"github.com/pkg/errors"

	"github.com/born-ml/xpress/internal/operator"
	"github.com/born-ml/xpress/internal/tensor"
)

// Values binds variables to concrete values: numbers, tensors, any
// tensor.Accessor[float64] or nested float64 slices/arrays.
type Values map[*Variable]any

// Evaluate computes the value of e bottom-up through each operator's kernel.
//
// Every variable in e must be bound in values (ErrUnboundVariable) to a value
// of its declared shape (tensor.ErrShapeMismatch). Shared sub-trees are
// evaluated once.
//
// Example:
//
//	x := expr.Var("x")
//	v, err := expr.Evaluate(expr.Pow(x, expr.Const(2)), expr.Values{x: 3})
//	// v == operator.Scalar(9)
func Evaluate(e Expr, values Values) (operator.Value, error) {
	ev := evaluator{values: values, memo: make(map[Expr]operator.Value)}
	return ev.eval(e)
}

type evaluator struct {
	values Values
	memo   map[Expr]operator.Value
}

func (ev *evaluator) eval(e Expr) (operator.Value, error) {
	if v, ok := ev.memo[e]; ok {
		return v, nil
	}

	var (
		v   operator.Value
		err error
	)
	switch n := e.(type) {
	case *Constant:
		v = n.value
	case *Variable:
		v, err = ev.bind(n)
	case *Operation:
		v, err = ev.apply(n)
	default:
		err = errors.Errorf("cannot evaluate %T", e)
	}
	if err != nil {
		return nil, err
	}

	ev.memo[e] = v
	return v, nil
}

func (ev *evaluator) bind(n *Variable) (operator.Value, error) {
	raw, ok := ev.values[n]
	if !ok {
		return nil, errors.Wrapf(ErrUnboundVariable, "variable %q (id %d) has no value", n.label, n.id)
	}
	v, err := operator.ValueOf(raw)
	if err != nil {
		return nil, errors.WithMessagef(err, "variable %q", n.label)
	}
	if !v.Shape().Equal(n.shape) {
		return nil, errors.Wrapf(tensor.ErrShapeMismatch, "variable %q declared %v, bound to %v", n.label, n.shape, v.Shape())
	}
	return v, nil
}

func (ev *evaluator) apply(n *Operation) (operator.Value, error) {
	d := mustLookup(n.op)
	args := make([]operator.Value, len(n.operands))
	for i, operand := range n.operands {
		v, err := ev.eval(operand)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	v, err := d.Kernel.Apply(args...)
	if err != nil {
		return nil, errors.WithMessagef(err, "evaluating %s", d.Name)
	}
	return v, nil
}
