package optim

import "github.com/pkg/errors"

// Common errors.
var (
	ErrNotScalar   = errors.New("objective and variables must be scalar")
	ErrNoVariables = errors.New("objective has no variables")
)
