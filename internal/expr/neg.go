package expr

import "github.com/born-ml/xpress/internal/operator"

var opNeg Op

func init() {
	opNeg = Register(Descriptor{
		Name:   "neg",
		Symbol: "-",
		Kernel: operator.Neg,
		Derive: deriveNeg,
		Print:  printNeg,
		Build:  func(operands ...Expr) Expr { return Neg(operands[0]) },
	})
}

// Neg returns -a.
//
// Simplification: -0 → 0, -(-a) → a.
func Neg(a Expr) Expr {
	if IsZero(a) {
		return Zero()
	}
	if isOp(a, opNeg) {
		return a.(*Operation).operands[0]
	}
	return Apply(opNeg, a)
}

func deriveNeg(o *Operation, d func(Expr) Expr) Expr {
	return Neg(d(o.operands[0]))
}

// Binary operands are parenthesized: -(x + y), -(2*x), but -sin(x).
func printNeg(p *Printer, o *Operation) error {
	p.WriteString("-")
	operand, binary := o.operands[0].(*Operation)
	return p.PrintGrouped(o.operands[0], binary && len(operand.operands) == 2)
}
