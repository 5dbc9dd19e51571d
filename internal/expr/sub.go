package expr

import "github.com/born-ml/xpress/internal/operator"

var opSub Op

func init() {
	opSub = Register(Descriptor{
		Name:   "sub",
		Symbol: "-",
		Kernel: operator.Sub,
		Derive: deriveSub,
		Print:  printSub,
		Build:  func(operands ...Expr) Expr { return Sub(operands[0], operands[1]) },
	})
}

// Sub returns a - b.
//
// Simplification:
//   - a - 0 → a
//   - 0 - b → -b
//   - a - a → 0
func Sub(a, b Expr) Expr {
	switch {
	case IsZero(b):
		return a
	case IsZero(a):
		return Neg(b)
	case Equal(a, b):
		return Zero()
	}
	return Apply(opSub, a, b)
}

func deriveSub(o *Operation, d func(Expr) Expr) Expr {
	return Sub(d(o.operands[0]), d(o.operands[1]))
}

// The subtrahend needs parentheses when it is a sum or negative: x - (y + z),
// x - (-y).
func printSub(p *Printer, o *Operation) error {
	b := o.operands[1]
	return printInfix(p, o, " - ", false, isSum(b) || isNegative(b))
}
