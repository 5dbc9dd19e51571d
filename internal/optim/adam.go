package optim

import (
	"math"

	"github.com/born-ml/xpress/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	x = x - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int                     // Timestep for bias correction
	m     *tensor.Tensor[float64] // First moment estimates
	v     *tensor.Tensor[float64] // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer, filling unset hyperparameters with
// their defaults.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
	}
}

// Step performs a single optimization step.
func (a *Adam) Step(x, grad *tensor.Tensor[float64]) (*tensor.Tensor[float64], error) {
	if a.m == nil {
		m, err := tensor.Zeros[float64](grad.Shape())
		if err != nil {
			return nil, err
		}
		a.m, a.v = m, m
	}
	a.t++

	m, err := tensor.ZipWith[float64](a.m, grad, func(m, g float64) float64 {
		return a.beta1*m + (1-a.beta1)*g
	})
	if err != nil {
		return nil, err
	}
	v, err := tensor.ZipWith[float64](a.v, grad, func(v, g float64) float64 {
		return a.beta2*v + (1-a.beta2)*g*g
	})
	if err != nil {
		return nil, err
	}
	a.m, a.v = m, v

	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	step, err := tensor.ZipWith[float64](m, v, func(m, v float64) float64 {
		return a.lr * (m / biasCorrection1) / (math.Sqrt(v/biasCorrection2) + a.eps)
	})
	if err != nil {
		return nil, err
	}
	return tensor.Sub[float64](x, step)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int {
	return a.t
}
