package transform

import "github.com/stratum-ml/stratum/internal/tensor"

// Tanh is the hyperbolic tangent transform. Output values lie in (-1, 1).
// It is computed as 2*sigmoid(2x) - 1, which keeps the whole transform on
// the backend primitive set.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a Tanh transform.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Apply computes the element-wise tanh of x.
func (t *Tanh[B]) Apply(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	be := x.Backend()

	doubled := be.Mul(scalar(2, be), x.Raw())
	neg := be.Sub(scalar(0, be), doubled)
	sig := be.Reciprocal(be.Add(scalar(1, be), be.Exp(neg)))
	y := be.Sub(be.Mul(scalar(2, be), sig), scalar(1, be))

	return tensor.New[float32, B](y, be)
}

// Bprop returns the tanh derivative 1-y² evaluated at the output y.
func (t *Tanh[B]) Bprop(y *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	be := y.Backend()
	factor := be.Sub(scalar(1, be), be.Mul(y.Raw(), y.Raw()))
	return tensor.New[float32, B](factor, be)
}

// Name returns "tanh".
func (t *Tanh[B]) Name() string {
	return "tanh"
}
