// Package transform implements stateless activation transforms.
//
// A Transform is a pure function over a tensor, built entirely on the
// tensor.Backend primitives. Transforms own no buffers and carry no
// lifecycle beyond construction; the layer package wires them into
// pipelines via the Activation layer.
package transform

import "github.com/stratum-ml/stratum/internal/tensor"

// Transform is an element-wise or column-wise activation function.
type Transform[B tensor.Backend] interface {
	// Apply computes the transform of x into a fresh tensor of the same
	// shape.
	Apply(x *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Bprop returns the element-wise gradient factor evaluated at the
	// transform's output y. A nil result means the factor is identically
	// 1 and the incoming error passes through unchanged.
	Bprop(y *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Name returns a short identifier for diagnostics.
	Name() string
}

// scalar builds a (1, 1) tensor holding v, for broadcasting against any
// 2-D operand.
func scalar[B tensor.Backend](v float32, b B) *tensor.RawTensor {
	return tensor.Full[float32](tensor.Shape{1, 1}, v, b).Raw()
}
