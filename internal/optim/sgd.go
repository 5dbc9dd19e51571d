package optim

import (
	"github.com/born-ml/xpress/internal/tensor"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	x = x - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	x = x - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	lr       float64
	momentum float64
	velocity *tensor.Tensor[float64]
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{lr: config.LR, momentum: config.Momentum}
}

// Step performs a single optimization step.
func (s *SGD) Step(x, grad *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if s.momentum == 0 {
		return tensor.Sub[float64](x, tensor.Scale[float64](grad, s.lr))
	}

	if s.velocity == nil {
		velocity, err := tensor.Zeros[float64](grad.Shape())
		if err != nil {
			return nil, err
		}
		s.velocity = velocity
	}

	velocity, err := tensor.Add[float64](tensor.Scale[float64](s.velocity, s.momentum), grad)
	if err != nil {
		return nil, err
	}
	s.velocity = velocity

	return tensor.Sub[float64](x, tensor.Scale[float64](velocity, s.lr))
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
