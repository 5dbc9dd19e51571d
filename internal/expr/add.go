package expr

import "github.com/born-ml/xpress/internal/operator"

var opAdd Op

func init() {
	opAdd = Register(Descriptor{
		Name:   "add",
		Symbol: "+",
		Kernel: operator.Add,
		Derive: deriveAdd,
		Print:  printAdd,
		Build:  func(operands ...Expr) Expr { return Add(operands[0], operands[1]) },
	})
}

// Add returns a + b.
//
// Simplification:
//   - 0 + b → b
//   - a + 0 → a
//   - a + a → 2*a (syntactic equality)
//
// Tensor operands must have equal shapes; a scalar is added to every element
// of a tensor.
//
// The scalar constant 0 is the zero of every shape, so a zero operand is
// dropped before shapes are compared. An operand that simplified to 0, such
// as Sub(Y, Y) for a tensor Y, therefore never causes ErrShapeMismatch:
// Add(X, Sub(Y, Y)) is X whatever the shapes of X and Y.
func Add(a, b Expr) Expr {
	switch {
	case IsZero(a):
		return b
	case IsZero(b):
		return a
	case Equal(a, b):
		return Mul(Const(2), a)
	}
	return Apply(opAdd, a, b)
}

// d(a+b) = da + db.
func deriveAdd(o *Operation, d func(Expr) Expr) Expr {
	return Add(d(o.operands[0]), d(o.operands[1]))
}

// Sums are associative; only a negative right operand is parenthesized:
// x + (-1).
func printAdd(p *Printer, o *Operation) error {
	return printInfix(p, o, " + ", false, isNegative(o.operands[1]))
}
