package expr

import "github.com/born-ml/xpress/internal/operator"

var opDiv Op

func init() {
	opDiv = Register(Descriptor{
		Name:   "div",
		Symbol: "/",
		Kernel: operator.Div,
		Derive: deriveDiv,
		Print:  printDiv,
		Build:  func(operands ...Expr) Expr { return Div(operands[0], operands[1]) },
	})
}

// Div returns a / b. The divisor must be scalar-shaped.
//
// Simplification:
//   - 0 / b → 0
//   - a / 1 → a
//   - a / a → 1
func Div(a, b Expr) Expr {
	switch {
	case IsZero(a):
		return Zero()
	case IsOne(b):
		return a
	case Equal(a, b):
		return One()
	}
	return Apply(opDiv, a, b)
}

// d(a/b) = da/b - a*db/b^2.
func deriveDiv(o *Operation, d func(Expr) Expr) Expr {
	a, b := o.operands[0], o.operands[1]
	return Sub(Div(d(a), b), Div(Mul(a, d(b)), Pow(b, Const(2))))
}

func printDiv(p *Printer, o *Operation) error {
	return printInfix(p, o, "/", isSum(o.operands[0]), hasSubterms(o.operands[1]))
}
