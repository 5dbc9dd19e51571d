package tensor

import "github.com/pkg/errors"

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrIndex         = errors.New("index out of range")
	ErrBadShape      = errors.New("invalid shape")
	ErrNotTensor     = errors.New("value has no derivable tensor shape")
)
