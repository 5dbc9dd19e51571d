package expr

import "github.com/born-ml/xpress/internal/operator"

var opMul Op

func init() {
	opMul = Register(Descriptor{
		Name:   "mul",
		Symbol: "*",
		Kernel: operator.Mul,
		Derive: deriveMul,
		Print:  printMul,
		Build:  func(operands ...Expr) Expr { return Mul(operands[0], operands[1]) },
	})
}

// Mul returns a * b.
//
// Scalars multiply as numbers, a scalar and a tensor broadcast, and two
// tensors of equal shape contract to the scalar Σ a[idx]*b[idx].
//
// Simplification:
//   - 0 * b → 0, a * 0 → 0
//   - 1 * b → b, a * 1 → a
//   - a constant factor is moved to the front: x*2 → 2*x
func Mul(a, b Expr) Expr {
	switch {
	case IsZero(a) || IsZero(b):
		return Zero()
	case IsOne(a):
		return b
	case IsOne(b):
		return a
	}
	a, b = constantFirst(opMul, a, b)
	return Apply(opMul, a, b)
}

// Product rule; it also holds for contraction, which is bilinear.
func deriveMul(o *Operation, d func(Expr) Expr) Expr {
	a, b := o.operands[0], o.operands[1]
	return Add(Mul(d(a), b), Mul(a, d(b)))
}

func printMul(p *Printer, o *Operation) error {
	b := o.operands[1]
	return printInfix(p, o, "*", isSum(o.operands[0]), isSum(b) || isNegative(b))
}
