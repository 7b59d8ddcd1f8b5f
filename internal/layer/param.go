package layer

import "github.com/stratum-ml/stratum/internal/tensor"

// Param exposes a layer's weights and weight gradient to an external
// optimizer. The kernel itself never updates weights; it only fills Dw
// during Backward.
type Param[B tensor.Backend] struct {
	w  *tensor.Tensor[float32, B]
	dw *tensor.Tensor[float32, B]
}

// W returns the weight tensor.
func (p Param[B]) W() *tensor.Tensor[float32, B] {
	return p.w
}

// Dw returns the weight-gradient tensor.
func (p Param[B]) Dw() *tensor.Tensor[float32, B] {
	return p.dw
}

// Parameterized is implemented by layers holding trainable parameters.
type Parameterized[B tensor.Backend] interface {
	Params() []Param[B]
}
