package transform

import "github.com/stratum-ml/stratum/internal/tensor"

// Logistic is the sigmoid transform: y = 1 / (1 + exp(-x)).
// Output values lie in (0, 1).
type Logistic[B tensor.Backend] struct{}

// NewLogistic creates a Logistic transform.
func NewLogistic[B tensor.Backend]() *Logistic[B] {
	return &Logistic[B]{}
}

// Apply computes the element-wise sigmoid of x.
func (l *Logistic[B]) Apply(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	be := x.Backend()

	neg := be.Sub(scalar(0, be), x.Raw())
	den := be.Add(scalar(1, be), be.Exp(neg))
	y := be.Reciprocal(den)

	return tensor.New[float32, B](y, be)
}

// Bprop returns the sigmoid derivative y*(1-y) evaluated at the output y.
func (l *Logistic[B]) Bprop(y *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	be := y.Backend()
	factor := be.Mul(y.Raw(), be.Sub(scalar(1, be), y.Raw()))
	return tensor.New[float32, B](factor, be)
}

// Name returns "logistic".
func (l *Logistic[B]) Name() string {
	return "logistic"
}
