package expr

import "github.com/born-ml/xpress/internal/operator"

var opHadamard Op

func init() {
	opHadamard = Register(Descriptor{
		Name:   "hadamard",
		Symbol: "⊙",
		Kernel: operator.Hadamard,
		Derive: deriveHadamard,
		Print:  printHadamard,
		Build:  func(operands ...Expr) Expr { return Hadamard(operands[0], operands[1]) },
	})
}

// Hadamard returns the element-wise product of a and b.
//
// When either operand is scalar-shaped this is plain Mul, so the chain rule
// can use Hadamard for every operand combination.
//
// Simplification: a tensor of ones is the identity, 1 ⊙ b → b.
func Hadamard(a, b Expr) Expr {
	switch {
	case isScalarShaped(a) || isScalarShaped(b):
		return Mul(a, b)
	case isOnes(a) && a.Shape().Equal(b.Shape()):
		return b
	case isOnes(b) && a.Shape().Equal(b.Shape()):
		return a
	}
	a, b = constantFirst(opHadamard, a, b)
	return Apply(opHadamard, a, b)
}

func deriveHadamard(o *Operation, d func(Expr) Expr) Expr {
	a, b := o.operands[0], o.operands[1]
	return Add(Hadamard(d(a), b), Hadamard(a, d(b)))
}

func printHadamard(p *Printer, o *Operation) error {
	return printInfix(p, o, " ⊙ ", isSum(o.operands[0]), isSum(o.operands[1]))
}
