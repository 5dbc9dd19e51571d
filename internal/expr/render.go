package expr

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/xpress/internal/operator"
)

// Names binds variables to display names for rendering.
type Names map[*Variable]string

// Printer accumulates the text of one Render call. Print rules receive it to
// write their operator symbol and operands.
type Printer struct {
	sb    strings.Builder
	names Names
}

// Render writes e as text, naming variables through names.
//
// Constants print their literal value (tensors as nested brackets), variables
// their bound name, and operations follow their operator's print rule.
// Rendering is all-or-nothing: a variable missing from names fails with
// ErrUnboundVariable and no partial text is returned.
//
// Example:
//
//	x, y, z := expr.Var("x"), expr.Var("y"), expr.Var("z")
//	names := expr.Names{x: "x", y: "y", z: "z"}
//	expr.Render(expr.Pow(x, expr.Add(y, z)), names) // "x^(y + z)"
func Render(e Expr, names Names) (string, error) {
	p := &Printer{names: names}
	if err := p.Print(e); err != nil {
		return "", err
	}
	return p.sb.String(), nil
}

// WriteString appends raw text.
func (p *Printer) WriteString(s string) {
	p.sb.WriteString(s)
}

// Print writes e.
func (p *Printer) Print(e Expr) error {
	switch n := e.(type) {
	case *Constant:
		p.sb.WriteString(n.value.String())
		return nil
	case *Variable:
		name, ok := p.names[n]
		if !ok {
			return errors.Wrapf(ErrUnboundVariable, "variable %q (id %d) has no display name", n.label, n.id)
		}
		p.sb.WriteString(name)
		return nil
	case *Operation:
		return mustLookup(n.op).Print(p, n)
	}
	return errors.Errorf("cannot render %T", e)
}

// PrintGrouped writes e, wrapped in parentheses when group is true.
func (p *Printer) PrintGrouped(e Expr, group bool) error {
	if !group {
		return p.Print(e)
	}
	p.sb.WriteByte('(')
	if err := p.Print(e); err != nil {
		return err
	}
	p.sb.WriteByte(')')
	return nil
}

// printInfix writes "a<sep>b", grouping each operand as decided by the caller.
func printInfix(p *Printer, o *Operation, sep string, groupA, groupB bool) error {
	if err := p.PrintGrouped(o.operands[0], groupA); err != nil {
		return err
	}
	p.WriteString(sep)
	return p.PrintGrouped(o.operands[1], groupB)
}

// printCall writes "name(arg)".
func printCall(p *Printer, o *Operation) error {
	p.WriteString(mustLookup(o.op).Symbol)
	return p.PrintGrouped(o.operands[0], true)
}

// hasSubterms reports whether e is more than a single leaf.
func hasSubterms(e Expr) bool {
	return Nodes(e) > 1
}

// isSum reports whether e is an addition or subtraction with subterms.
func isSum(e Expr) bool {
	return isOp(e, opAdd, opSub)
}

// isNegative reports whether e prints with a leading minus: a negation or a
// negative scalar constant.
func isNegative(e Expr) bool {
	if isOp(e, opNeg) {
		return true
	}
	c, ok := e.(*Constant)
	if !ok {
		return false
	}
	v, ok := c.value.(operator.Scalar)
	return ok && v < 0
}
