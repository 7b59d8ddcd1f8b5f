package transform

import "github.com/stratum-ml/stratum/internal/tensor"

// Softmax normalizes each batch column of a (features, steps) tensor into a
// probability distribution:
//
//	y[:,c] = exp(x[:,c] - max(x[:,c])) / sum(exp(x[:,c] - max(x[:,c])))
//
// The per-column maximum is subtracted before exponentiation so that large
// feature magnitudes cannot overflow exp; the subtraction cancels in the
// ratio and does not change the mathematical result. Every output entry is
// nonnegative and every column sums to 1 within floating-point tolerance.
type Softmax[B tensor.Backend] struct{}

// NewSoftmax creates a Softmax transform.
func NewSoftmax[B tensor.Backend]() *Softmax[B] {
	return &Softmax[B]{}
}

// Apply computes the column-wise softmax of x.
func (s *Softmax[B]) Apply(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	be := x.Backend()

	m := be.MaxDim(x.Raw(), 0, true)    // (1, steps)
	e := be.Exp(be.Sub(x.Raw(), m))     // shifted exponentials
	sum := be.SumDim(e, 0, true)        // (1, steps)
	y := be.Mul(e, be.Reciprocal(sum))  // normalize each column

	return tensor.New[float32, B](y, be)
}

// Bprop returns nil: the gradient factor is identically 1.
//
// This is valid ONLY when the softmax output feeds a cross-entropy loss,
// whose gradient cancels the softmax Jacobian analytically so the combined
// derivative reduces to (output - target). Pairing this transform's
// backward contract with any other loss silently produces wrong gradients.
func (s *Softmax[B]) Bprop(_ *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return nil
}

// Name returns "softmax".
func (s *Softmax[B]) Name() string {
	return "softmax"
}
