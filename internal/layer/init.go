package layer

import (
	"math"
	"math/rand"

	"github.com/stratum-ml/stratum/internal/tensor"
)

// Initializer fills a freshly allocated weight tensor.
type Initializer interface {
	Fill(w *tensor.RawTensor)
}

// Xavier initializes weights from the Glorot uniform distribution
// U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))), reading fanOut and
// fanIn from the weight shape. This keeps activation variance roughly
// constant across layers.
type Xavier struct{}

// Fill fills w with Xavier-distributed values.
func (Xavier) Fill(w *tensor.RawTensor) {
	shape := w.Shape()
	fanOut, fanIn := splitShape(shape)
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	data := w.AsFloat32()
	for i := range data {
		//nolint:gosec // math/rand for weight initialization (not security-critical)
		data[i] = float32((rand.Float64()*2.0 - 1.0) * bound)
	}
}

// Constant initializes every weight to a fixed value. Zero value fills
// with zeros, the usual choice for biases.
type Constant struct {
	Value float32
}

// Fill fills w with the constant value.
func (c Constant) Fill(w *tensor.RawTensor) {
	data := w.AsFloat32()
	for i := range data {
		data[i] = c.Value
	}
}
