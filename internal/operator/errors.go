package operator

import "github.com/pkg/errors"

// Common errors.
var (
	ErrOperandCategory = errors.New("operator not defined for operand categories")
	ErrArity           = errors.New("wrong number of operands")
)
