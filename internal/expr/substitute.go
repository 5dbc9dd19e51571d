package expr

// Substitute returns e with every occurrence of v replaced by replacement.
// Rebuilt operations go through their simplifying constructors, so
// substituting a constant folds and reduces the tree:
//
//	x, y := expr.Var("x"), expr.Var("y")
//	expr.Substitute(expr.Mul(x, y), y, expr.Const(0)) // 0
//
// Unchanged sub-trees are shared with e. Panics like the constructors when
// replacement does not fit the operators around v; see Try.
func Substitute(e Expr, v *Variable, replacement Expr) Expr {
	memo := make(map[Expr]Expr)

	var sub func(Expr) Expr
	sub = func(e Expr) Expr {
		if r, ok := memo[e]; ok {
			return r
		}
		r := e
		switch n := e.(type) {
		case *Variable:
			if n == v {
				r = replacement
			}
		case *Operation:
			operands := make([]Expr, len(n.operands))
			changed := false
			for i, operand := range n.operands {
				operands[i] = sub(operand)
				changed = changed || operands[i] != operand
			}
			if changed {
				r = mustLookup(n.op).Build(operands...)
			}
		}
		memo[e] = r
		return r
	}
	return sub(e)
}

// Variables returns the distinct variables of e in order of first occurrence
// (left to right, depth first).
func Variables(e Expr) []*Variable {
	var vars []*Variable
	seen := make(map[Expr]bool)

	var walk func(Expr)
	walk = func(e Expr) {
		if seen[e] {
			return
		}
		seen[e] = true
		switch n := e.(type) {
		case *Variable:
			vars = append(vars, n)
		case *Operation:
			for _, operand := range n.operands {
				walk(operand)
			}
		}
	}
	walk(e)
	return vars
}
