package layer

import (
	"github.com/stratum-ml/stratum/internal/tensor"
)

// Linear is a fully connected layer: out = w @ x, with w of shape
// (outFeatures, inFeatures) and x of shape (inFeatures, steps).
//
// Geometry is fixed during Configure and buffers are created during
// Allocate; after that the output, delta, and weight-gradient buffers are
// mutated in place on every step. The matrix products go through the
// backend's Gemm, so the layer inherits whatever optimized kernel the
// backend provides.
type Linear[B tensor.Backend] struct {
	stage
	backend B
	init    Initializer

	nout  int
	nin   int
	steps int

	w         *tensor.Tensor[float32, B] // (nout, nin)
	dw        *tensor.Tensor[float32, B] // (nout, nin), overwritten by Backward
	outputs   *tensor.Tensor[float32, B] // (nout, steps)
	deltas    *tensor.Tensor[float32, B] // (nin, steps), only with a predecessor
	lastInput *tensor.RawTensor          // 2-D view of the most recent Forward input
}

// NewLinear creates a Linear layer producing nout output features.
// The weight shape is completed during Configure, once the producer's
// feature count is known; init fills the weights during Allocate.
func NewLinear[B tensor.Backend](nout int, init Initializer, backend B) *Linear[B] {
	return &Linear[B]{
		stage:   stage{name: "linear"},
		backend: backend,
		init:    init,
		nout:    nout,
	}
}

// Configure derives the layer's geometry from the producing stage:
// (inFeatures, steps) from the source shape, output (outFeatures, steps),
// and the weight shape (outFeatures, inFeatures) if not yet fixed.
//
// A second call with the same input shape is a no-op; a conflicting shape
// returns a *ShapeError.
func (l *Linear[B]) Configure(src Source) error {
	in, done, err := l.configureInput(src)
	if err != nil || done {
		return err
	}

	l.nin, l.steps = splitShape(in)
	l.outShape = tensor.Shape{l.nout, l.steps}
	l.phase = Configured
	return nil
}

// Allocate creates the output buffer, the weight and weight-gradient
// tensors, and, when this layer has a predecessor, the delta buffer.
// A repeated call after success is a no-op.
func (l *Linear[B]) Allocate() error {
	if l.phase == Unconfigured {
		return &StateError{Layer: l.name, Op: "Allocate", Reason: "Allocate before Configure"}
	}
	if l.phase == Allocated {
		return nil
	}

	if l.w == nil {
		l.w = tensor.Zeros[float32](tensor.Shape{l.nout, l.nin}, l.backend)
		l.init.Fill(l.w.Raw())
	}
	l.dw = tensor.Zeros[float32](tensor.Shape{l.nout, l.nin}, l.backend)
	l.outputs = tensor.Zeros[float32](l.outShape, l.backend)
	if l.hasPrev {
		l.deltas = tensor.Zeros[float32](tensor.Shape{l.nin, l.steps}, l.backend)
	}

	l.phase = Allocated
	return nil
}

// Forward computes out = beta*out + w @ x into the owned output buffer and
// returns it. The input is retained for the subsequent Backward; with
// inference set nothing is retained and any input held from an earlier
// training step is dropped, so a later Backward cannot pair with a stale
// input.
func (l *Linear[B]) Forward(x *tensor.Tensor[float32, B], inference bool, beta float32) (*tensor.Tensor[float32, B], error) {
	if l.phase != Allocated {
		return nil, &NotAllocatedError{Layer: l.name, Op: "Forward"}
	}
	if !x.Shape().Equal(l.inShape) {
		return nil, &ShapeError{Layer: l.name, Op: "Forward", Want: l.inShape, Got: x.Shape()}
	}

	// Flat vectors compute as a single-step column.
	xr := x.Raw()
	if len(l.inShape) != 2 {
		xr = xr.View(tensor.Shape{l.nin, l.steps})
	}

	l.backend.Gemm(false, false, 1, l.w.Raw(), xr, float64(beta), l.outputs.Raw())

	if inference {
		l.lastInput = nil
	} else {
		l.lastInput = xr
	}
	return l.outputs, nil
}

// Backward consumes the error w.r.t. this layer's output and computes:
//
//	deltas = alpha * wᵀ @ e + beta * deltas   (when a predecessor exists)
//	dw     = e @ lastInputᵀ                   (always, overwritten)
//
// It returns the delta buffer, or nil when this layer heads the pipeline.
// The retained input is consumed: a second Backward without an intervening
// Forward returns a *StateError.
func (l *Linear[B]) Backward(e *tensor.Tensor[float32, B], alpha, beta float32) (*tensor.Tensor[float32, B], error) {
	if l.phase != Allocated {
		return nil, &NotAllocatedError{Layer: l.name, Op: "Backward"}
	}
	if l.lastInput == nil {
		return nil, &StateError{Layer: l.name, Op: "Backward", Reason: "no retained input: Backward without a preceding Forward"}
	}
	if !e.Shape().Equal(l.outShape) {
		return nil, &ShapeError{Layer: l.name, Op: "Backward", Want: l.outShape, Got: e.Shape()}
	}

	if l.deltas != nil {
		l.backend.Gemm(true, false, float64(alpha), l.w.Raw(), e.Raw(), float64(beta), l.deltas.Raw())
	}
	l.backend.Gemm(false, true, 1, e.Raw(), l.lastInput, 0, l.dw.Raw())

	l.lastInput = nil
	return l.deltas, nil
}

// Params returns the weight/gradient pair for optimizer access.
func (l *Linear[B]) Params() []Param[B] {
	return []Param[B]{{w: l.w, dw: l.dw}}
}

// OutFeatures returns the number of output features.
func (l *Linear[B]) OutFeatures() int {
	return l.nout
}

// InFeatures returns the number of input features (0 before Configure).
func (l *Linear[B]) InFeatures() int {
	return l.nin
}
