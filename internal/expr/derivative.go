package expr

// Derivative returns the derivative of e with respect to wrt.
//
// Constants differentiate to 0, wrt to 1 and every other variable to 0. An
// operation defers to its operator's derive rule, which receives a callback
// for differentiating its operands. Results are built with the simplifying
// constructors, so the output is already reduced:
//
//	x := expr.Var("x")
//	d := expr.Derivative(expr.Pow(x, expr.Const(2)), x) // 2*x
//
// For a tensor-shaped variable the result is the directional derivative
// along a tensor of ones: Derivative(X, X) is the constant tensor of ones in
// the shape of X.
//
// Shared sub-trees are differentiated once per call. e is never modified.
func Derivative(e Expr, wrt *Variable) Expr {
	memo := make(map[Expr]Expr)

	var d func(Expr) Expr
	d = func(e Expr) Expr {
		if r, ok := memo[e]; ok {
			return r
		}
		var r Expr
		switch n := e.(type) {
		case *Constant:
			r = Zero()
		case *Variable:
			switch {
			case n != wrt:
				r = Zero()
			case isScalarShaped(n):
				r = One()
			default:
				r = ones(n.shape)
			}
		case *Operation:
			r = mustLookup(n.op).Derive(n, d)
		}
		memo[e] = r
		return r
	}
	return d(e)
}

// Gradient returns the derivative of e with respect to each of vars, in order.
func Gradient(e Expr, vars ...*Variable) []Expr {
	grad := make([]Expr, len(vars))
	for i, v := range vars {
		grad[i] = Derivative(e, v)
	}
	return grad
}
