package expr

import "github.com/gomlx/exceptions"

// Try runs build and converts a construction failure into an error.
//
// Constructors panic when operands do not fit their operator (mismatched
// tensor shapes, undefined operand categories, ineligible constants) so that
// expressions compose without error plumbing. Try recovers those failures:
//
//	e, err := expr.Try(func() expr.Expr {
//	    return expr.Add(a, b)
//	})
//	if errors.Is(err, tensor.ErrShapeMismatch) { ... }
//
// Panics that are not errors are re-raised.
func Try(build func() Expr) (Expr, error) {
	var result Expr
	if err := exceptions.TryCatch[error](func() { result = build() }); err != nil {
		return nil, err
	}
	return result, nil
}
