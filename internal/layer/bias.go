package layer

import (
	"github.com/stratum-ml/stratum/internal/tensor"
)

// Bias adds a per-feature bias column to its input, in place. The bias
// weight has shape (features, 1) and broadcasts across steps. Bias owns no
// output or delta buffer: Forward mutates the incoming tensor and Backward
// passes the incoming error straight through after summing it into the
// bias gradient.
type Bias[B tensor.Backend] struct {
	stage
	backend B
	init    Initializer

	n     int
	steps int
	w     *tensor.Tensor[float32, B] // (n, 1)
	dw    *tensor.Tensor[float32, B] // (n, 1)
}

// NewBias creates a Bias layer. The usual initializer is Constant{} (zeros).
func NewBias[B tensor.Backend](init Initializer, backend B) *Bias[B] {
	return &Bias[B]{
		stage:   stage{name: "bias"},
		backend: backend,
		init:    init,
	}
}

// Configure adopts the producer's shape unchanged and fixes the bias
// length to its feature count.
func (b *Bias[B]) Configure(src Source) error {
	in, done, err := b.configureInput(src)
	if err != nil || done {
		return err
	}

	b.n, b.steps = splitShape(in)
	b.outShape = b.inShape
	b.phase = Configured
	return nil
}

// Allocate creates the bias weight and gradient.
func (b *Bias[B]) Allocate() error {
	if b.phase == Unconfigured {
		return &StateError{Layer: b.name, Op: "Allocate", Reason: "Allocate before Configure"}
	}
	if b.phase == Allocated {
		return nil
	}

	if b.w == nil {
		b.w = tensor.Zeros[float32](tensor.Shape{b.n, 1}, b.backend)
		b.init.Fill(b.w.Raw())
	}
	b.dw = tensor.Zeros[float32](tensor.Shape{b.n, 1}, b.backend)

	b.phase = Allocated
	return nil
}

// Forward adds the bias column into x in place and returns x.
// beta does not apply to an in-place stage and is ignored.
func (b *Bias[B]) Forward(x *tensor.Tensor[float32, B], _ bool, _ float32) (*tensor.Tensor[float32, B], error) {
	if b.phase != Allocated {
		return nil, &NotAllocatedError{Layer: b.name, Op: "Forward"}
	}
	if !x.Shape().Equal(b.inShape) {
		return nil, &ShapeError{Layer: b.name, Op: "Forward", Want: b.inShape, Got: x.Shape()}
	}

	// Flat vectors broadcast as a single-step column.
	xr := x.Raw()
	if len(b.inShape) != 2 {
		xr = xr.View(tensor.Shape{b.n, b.steps})
	}

	xr.CopyFrom(b.backend.Add(xr, b.w.Raw()))
	return x, nil
}

// Backward sums the incoming error across steps into the bias gradient and
// passes the error through unchanged.
func (b *Bias[B]) Backward(e *tensor.Tensor[float32, B], _, _ float32) (*tensor.Tensor[float32, B], error) {
	if b.phase != Allocated {
		return nil, &NotAllocatedError{Layer: b.name, Op: "Backward"}
	}
	if !e.Shape().Equal(b.outShape) {
		return nil, &ShapeError{Layer: b.name, Op: "Backward", Want: b.outShape, Got: e.Shape()}
	}

	er := e.Raw()
	if len(b.outShape) != 2 {
		er = er.View(tensor.Shape{b.n, b.steps})
	}

	b.dw.Raw().CopyFrom(b.backend.SumDim(er, 1, true))
	return e, nil
}

// Params returns the bias weight/gradient pair.
func (b *Bias[B]) Params() []Param[B] {
	return []Param[B]{{w: b.w, dw: b.dw}}
}
