package expr

import "github.com/born-ml/xpress/internal/operator"

// Element-wise functions. Each applies to scalars and, element by element, to
// tensors, and differentiates by the chain rule f'(a) ⊙ da.

var (
	opLog Op
	opExp Op
	opSin Op
	opCos Op
)

func init() {
	opLog = registerFunc("log", operator.Log, Log, func(a Expr) Expr { return Pow(a, Const(-1)) })
	opExp = registerFunc("exp", operator.Exp, Exp, Exp)
	opSin = registerFunc("sin", operator.Sin, Sin, Cos)
	opCos = registerFunc("cos", operator.Cos, Cos, func(a Expr) Expr { return Neg(Sin(a)) })
}

// registerFunc registers a unary function whose derivative is prime(a) ⊙ da.
func registerFunc(name string, kernel operator.Kernel, build, prime func(Expr) Expr) Op {
	return Register(Descriptor{
		Name:   name,
		Symbol: name,
		Kernel: kernel,
		Derive: func(o *Operation, d func(Expr) Expr) Expr {
			a := o.operands[0]
			return Hadamard(prime(a), d(a))
		},
		Print: printCall,
		Build: func(operands ...Expr) Expr { return build(operands[0]) },
	})
}

// Log returns the natural logarithm of a.
//
// Simplification: log(1) → 0, log(exp(a)) → a.
func Log(a Expr) Expr {
	if IsOne(a) {
		return Zero()
	}
	if isOp(a, opExp) {
		return a.(*Operation).operands[0]
	}
	return Apply(opLog, a)
}

// Exp returns e raised to the power a.
//
// Simplification: exp(0) → 1.
func Exp(a Expr) Expr {
	if IsZero(a) {
		return One()
	}
	return Apply(opExp, a)
}

// Sin returns the sine of a. Constant arguments are folded.
func Sin(a Expr) Expr {
	return Apply(opSin, a)
}

// Cos returns the cosine of a. Constant arguments are folded.
func Cos(a Expr) Expr {
	return Apply(opCos, a)
}
