package layer

import (
	"github.com/stratum-ml/stratum/internal/tensor"
	"github.com/stratum-ml/stratum/internal/transform"
)

// Activation applies an elementwise transform in place. Like Bias it owns
// no output buffer; Forward overwrites the incoming tensor with the
// transformed values and retains the result for Backward, where the
// incoming error is scaled by the transform's local derivative factor.
type Activation[B tensor.Backend] struct {
	stage
	backend B
	f       transform.Transform[B]

	outputs *tensor.Tensor[float32, B] // borrowed from the most recent Forward
}

// NewActivation creates an Activation stage wrapping f.
func NewActivation[B tensor.Backend](f transform.Transform[B], backend B) *Activation[B] {
	return &Activation[B]{
		stage:   stage{name: f.Name()},
		backend: backend,
		f:       f,
	}
}

// Configure adopts the producer's shape unchanged.
func (a *Activation[B]) Configure(src Source) error {
	if _, done, err := a.configureInput(src); err != nil || done {
		return err
	}

	a.outShape = a.inShape
	a.phase = Configured
	return nil
}

// Allocate is a lifecycle gate only; the stage owns no buffers.
func (a *Activation[B]) Allocate() error {
	if a.phase == Unconfigured {
		return &StateError{Layer: a.name, Op: "Allocate", Reason: "Allocate before Configure"}
	}
	a.phase = Allocated
	return nil
}

// Forward overwrites x with f(x) and returns it. The transformed values
// are retained for Backward unless inference is set.
func (a *Activation[B]) Forward(x *tensor.Tensor[float32, B], inference bool, _ float32) (*tensor.Tensor[float32, B], error) {
	if a.phase != Allocated {
		return nil, &NotAllocatedError{Layer: a.name, Op: "Forward"}
	}
	if !x.Shape().Equal(a.inShape) {
		return nil, &ShapeError{Layer: a.name, Op: "Forward", Want: a.inShape, Got: x.Shape()}
	}

	y := a.f.Apply(x)
	x.Raw().CopyFrom(y.Raw())

	if !inference {
		a.outputs = x
	}
	return x, nil
}

// Backward multiplies the incoming error in place by the transform's
// derivative factor and passes it through. A nil factor means the
// derivative is folded into the error by the paired cost, so the error
// passes through untouched.
func (a *Activation[B]) Backward(e *tensor.Tensor[float32, B], _, _ float32) (*tensor.Tensor[float32, B], error) {
	if a.phase != Allocated {
		return nil, &NotAllocatedError{Layer: a.name, Op: "Backward"}
	}
	if a.outputs == nil {
		return nil, &StateError{Layer: a.name, Op: "Backward", Reason: "no retained output: Backward without a preceding Forward"}
	}
	if !e.Shape().Equal(a.outShape) {
		return nil, &ShapeError{Layer: a.name, Op: "Backward", Want: a.outShape, Got: e.Shape()}
	}

	if factor := a.f.Bprop(a.outputs); factor != nil {
		e.Raw().CopyFrom(a.backend.Mul(e.Raw(), factor.Raw()))
	}
	return e, nil
}
