package expr

import (
	"sync"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/xpress/internal/operator"
	"github.com/born-ml/xpress/internal/tensor"
)

// Op is the tag of a registered operator.
type Op int

// DeriveRule returns the derivative of o. d differentiates an operand with
// respect to the same variable.
type DeriveRule func(o *Operation, d func(Expr) Expr) Expr

// PrintRule writes o to p, deciding locally which operands need parentheses.
type PrintRule func(p *Printer, o *Operation) error

// Descriptor bundles everything the engine knows about an operator.
type Descriptor struct {
	Name   string          // Unique name, e.g. "add".
	Symbol string          // Printed symbol, e.g. "+".
	Kernel operator.Kernel // Evaluation rule, arity and commutativity.
	Derive DeriveRule
	Print  PrintRule

	// Build constructs a simplified node from operands. Optional; defaults to
	// Apply with this operator.
	Build func(operands ...Expr) Expr
}

var registry = struct {
	sync.RWMutex
	descriptors []*Descriptor
	byName      map[string]Op
}{byName: make(map[string]Op)}

// Register adds an operator and returns its tag. Operators are registered
// once per process, normally from an init function.
//
// Panics if the name is already taken or a rule is missing.
func Register(d Descriptor) Op {
	if d.Name == "" || d.Kernel == nil || d.Derive == nil || d.Print == nil {
		panic(errors.Errorf("operator %q: name, kernel, derive and print rules are required", d.Name))
	}

	registry.Lock()
	defer registry.Unlock()

	if _, dup := registry.byName[d.Name]; dup {
		panic(errors.Errorf("operator %q registered twice", d.Name))
	}
	op := Op(len(registry.descriptors))
	desc := d
	if desc.Build == nil {
		desc.Build = func(operands ...Expr) Expr { return Apply(op, operands...) }
	}
	registry.descriptors = append(registry.descriptors, &desc)
	registry.byName[d.Name] = op

	klog.V(2).Infof("registered operator %q (%s) as op %d, arity %d", d.Name, d.Symbol, int(op), d.Kernel.Arity())
	return op
}

// Lookup returns the descriptor registered for op.
func Lookup(op Op) (*Descriptor, bool) {
	registry.RLock()
	defer registry.RUnlock()

	if op < 0 || int(op) >= len(registry.descriptors) {
		return nil, false
	}
	return registry.descriptors[op], true
}

// LookupName returns the tag of the operator registered under name.
func LookupName(name string) (Op, bool) {
	registry.RLock()
	defer registry.RUnlock()

	op, ok := registry.byName[name]
	return op, ok
}

// String returns the operator name.
func (op Op) String() string {
	if d, ok := Lookup(op); ok {
		return d.Name
	}
	return "unknown"
}

func mustLookup(op Op) *Descriptor {
	d, ok := Lookup(op)
	if !ok {
		panic(errors.Wrapf(ErrUnknownOperator, "op %d", int(op)))
	}
	return d
}

// Apply builds a node for a registered operator without algebraic
// simplification. The result shape is checked against the operator's kernel,
// and operations whose operands are all constants are folded into a constant.
//
// Panics with tensor.ErrShapeMismatch, operator.ErrOperandCategory or
// operator.ErrArity when the operands do not fit; see Try.
func Apply(op Op, operands ...Expr) Expr {
	d := mustLookup(op)

	shapes := make([]tensor.Shape, len(operands))
	allConstant := true
	for i, operand := range operands {
		shapes[i] = operand.Shape()
		allConstant = allConstant && isConstant(operand)
	}
	shape, err := d.Kernel.ResultShape(shapes...)
	if err != nil {
		panic(errors.WithMessagef(err, "building %s", d.Name))
	}

	if allConstant {
		values := make([]operator.Value, len(operands))
		for i, operand := range operands {
			values[i] = operand.(*Constant).value
		}
		v, err := d.Kernel.Apply(values...)
		if err != nil {
			panic(errors.WithMessagef(err, "folding %s", d.Name))
		}
		return &Constant{value: v}
	}

	return &Operation{op: op, operands: append([]Expr(nil), operands...), shape: shape}
}

// constantFirst orders the operands of a commutative operator so that a
// constant comes first, which keeps products printing as 2*x.
func constantFirst(op Op, a, b Expr) (Expr, Expr) {
	if isConstant(b) && !isConstant(a) && mustLookup(op).Kernel.Commutative() {
		return b, a
	}
	return a, b
}
