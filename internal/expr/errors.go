package expr

import "github.com/pkg/errors"

// Common errors.
var (
	ErrUnboundVariable = errors.New("unbound variable")
	ErrUnknownOperator = errors.New("unknown operator")
)
