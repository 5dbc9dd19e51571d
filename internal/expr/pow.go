package expr

import "github.com/born-ml/xpress/internal/operator"

var opPow Op

func init() {
	opPow = Register(Descriptor{
		Name:   "pow",
		Symbol: "^",
		Kernel: operator.Pow,
		Derive: derivePow,
		Print:  printPow,
		Build:  func(operands ...Expr) Expr { return Pow(operands[0], operands[1]) },
	})
}

// Pow returns a raised to the power b. A tensor base is raised element-wise;
// the exponent must be scalar-shaped.
//
// Simplification, checked in this order:
//   - pow(a, 0) → 1
//   - pow(0, b) → 0
//   - pow(1, b) → 1
//   - pow(a, 1) → a
//
// The zero exponent is checked before the zero base so that pow(0, 0) is 1,
// as math.Pow gives. Checking the zero base first would fold it to 0.
func Pow(a, b Expr) Expr {
	switch {
	case IsZero(b):
		return One()
	case IsZero(a):
		return Zero()
	case IsOne(a):
		return One()
	case IsOne(b):
		return a
	}
	return Apply(opPow, a, b)
}

// General power rule, with the exponential term taken on the exponent:
//
//	d(a^b) = b*a^(b-1)*da + a^b*log(b)*db
//
// For a constant exponent db is 0 and the second term vanishes through the
// Mul and Add simplifications.
func derivePow(o *Operation, d func(Expr) Expr) Expr {
	a, b := o.operands[0], o.operands[1]
	power := Hadamard(Mul(b, Pow(a, Sub(b, One()))), d(a))
	exponential := Mul(Hadamard(Pow(a, b), Log(b)), d(b))
	return Add(power, exponential)
}

// A base or exponent with subterms is parenthesized: (x + 1)^2, x^(y + z).
func printPow(p *Printer, o *Operation) error {
	return printInfix(p, o, "^", hasSubterms(o.operands[0]), hasSubterms(o.operands[1]))
}
