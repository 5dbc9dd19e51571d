package expr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/xpress/internal/operator"
)

// square is registered once per test binary.
var square = sync.OnceValue(func() Op {
	return Register(Descriptor{
		Name:   "square",
		Symbol: "sq",
		Kernel: &operator.UnaryKernel{Op: "square", Fn: func(x float64) float64 { return x * x }},
		Derive: func(o *Operation, d func(Expr) Expr) Expr {
			a := o.Operand(0)
			return Hadamard(Mul(Const(2), a), d(a))
		},
		Print: printCall,
	})
})

func TestRegister_CustomOperator(t *testing.T) {
	op := square()
	x := Var("x")
	names := Names{x: "x"}

	e := Apply(op, x)
	text, err := Render(e, names)
	require.NoError(t, err)
	assert.Equal(t, "sq(x)", text)

	v, err := Evaluate(e, Values{x: 3})
	require.NoError(t, err)
	assert.Equal(t, operator.Scalar(9), v)

	text, err = Render(Derivative(e, x), names)
	require.NoError(t, err)
	assert.Equal(t, "2*x", text)

	assertTree(t, Const(16), Apply(op, Const(4)))
}

func TestRegister_Lookup(t *testing.T) {
	op := square()

	got, ok := LookupName("square")
	require.True(t, ok)
	assert.Equal(t, op, got)
	assert.Equal(t, "square", op.String())

	d, ok := Lookup(op)
	require.True(t, ok)
	assert.Equal(t, "sq", d.Symbol)

	add, ok := LookupName("add")
	require.True(t, ok)
	assert.Equal(t, opAdd, add)

	_, ok = Lookup(Op(-1))
	assert.False(t, ok)
	assert.Equal(t, "unknown", Op(1<<20).String())
}

func TestRegister_Rejects(t *testing.T) {
	square()
	assert.Panics(t, func() {
		Register(Descriptor{
			Name:   "square",
			Kernel: operator.Neg,
			Derive: deriveNeg,
			Print:  printNeg,
		})
	}, "duplicate name")

	assert.Panics(t, func() {
		Register(Descriptor{Name: "incomplete", Kernel: operator.Neg})
	}, "missing rules")
}

func TestApply_Arity(t *testing.T) {
	_, err := Try(func() Expr { return Apply(opAdd, Var("x")) })
	assert.ErrorIs(t, err, operator.ErrArity)
}

func TestSubstitute(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	names := Names{x: "x", y: "y", z: "z"}

	assertTree(t, Zero(), Substitute(Mul(x, y), y, Const(0)))
	assertTree(t, x, Substitute(Pow(x, y), y, Const(1)))
	assertTree(t, Const(5), Substitute(Add(x, Const(2)), x, Const(3)))

	e := Substitute(Add(Sin(x), y), x, Add(y, z))
	text, err := Render(e, names)
	require.NoError(t, err)
	assert.Equal(t, "sin(y + z) + y", text)

	unchanged := Mul(x, y)
	assert.Same(t, unchanged, Substitute(unchanged, z, Const(1)))
}

func TestVariables(t *testing.T) {
	x, y, z := Var("x"), Var("y"), Var("z")
	e := Add(Mul(y, x), Pow(x, Sub(z, y)))

	assert.Equal(t, []*Variable{y, x, z}, Variables(e))
	assert.Empty(t, Variables(Const(1)))
}
