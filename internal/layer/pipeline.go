package layer

import (
	"github.com/stratum-ml/stratum/internal/tensor"
	"github.com/stratum-ml/stratum/internal/transform"
)

// Pipeline chains layers into a single compound stage. It implements
// Layer itself, so pipelines nest and a compound built by Affine can feed
// another layer's Configure directly.
//
// Configure threads the source through the chain stage by stage; Allocate
// runs only after every stage has its geometry, so each stage knows
// whether a predecessor exists. Forward applies the stages in order;
// Backward walks them in reverse, each stage consuming the error produced
// by its successor.
type Pipeline[B tensor.Backend] struct {
	name   string
	stages []Layer[B]
	phase  Phase
}

// NewPipeline creates a pipeline over the given stages, in order.
func NewPipeline[B tensor.Backend](stages ...Layer[B]) *Pipeline[B] {
	return &Pipeline[B]{name: "pipeline", stages: stages}
}

// isStage marks the pipeline as a layer predecessor, so the first stage of
// a downstream layer configured against this pipeline allocates a delta
// buffer.
func (p *Pipeline[B]) isStage() {}

// Name returns the pipeline name.
func (p *Pipeline[B]) Name() string {
	return p.name
}

// Phase returns the pipeline's lifecycle phase.
func (p *Pipeline[B]) Phase() Phase {
	return p.phase
}

// Stages returns the pipeline's stages, in forward order.
func (p *Pipeline[B]) Stages() []Layer[B] {
	return p.stages
}

// OutputShape returns the final stage's output shape (nil before
// Configure).
func (p *Pipeline[B]) OutputShape() tensor.Shape {
	if len(p.stages) == 0 {
		return nil
	}
	return p.stages[len(p.stages)-1].OutputShape()
}

// Configure threads src through the chain: each stage configures against
// its predecessor's output shape.
func (p *Pipeline[B]) Configure(src Source) error {
	if len(p.stages) == 0 {
		return &StateError{Layer: p.name, Op: "Configure", Reason: "empty pipeline"}
	}

	for _, st := range p.stages {
		if err := st.Configure(src); err != nil {
			return err
		}
		src = st
	}
	p.phase = Configured
	return nil
}

// Allocate allocates every stage. Runs as a separate pass after Configure
// so that each stage's predecessor flag is settled first.
func (p *Pipeline[B]) Allocate() error {
	if p.phase == Unconfigured {
		return &StateError{Layer: p.name, Op: "Allocate", Reason: "Allocate before Configure"}
	}
	for _, st := range p.stages {
		if err := st.Allocate(); err != nil {
			return err
		}
	}
	p.phase = Allocated
	return nil
}

// Forward feeds x through the stages in order and returns the final
// output. beta applies to the last stage only; intermediate stages always
// overwrite their buffers. Output accumulation therefore requires a final
// stage that owns its output buffer, such as Linear: in-place stages
// (Bias, Activation) have no buffer to blend into and ignore beta, so a
// pipeline ending in one, including an Affine compound, drops it.
func (p *Pipeline[B]) Forward(x *tensor.Tensor[float32, B], inference bool, beta float32) (*tensor.Tensor[float32, B], error) {
	if p.phase != Allocated {
		return nil, &NotAllocatedError{Layer: p.name, Op: "Forward"}
	}

	var err error
	for i, st := range p.stages {
		b := float32(0)
		if i == len(p.stages)-1 {
			b = beta
		}
		if x, err = st.Forward(x, inference, b); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Backward propagates e through the stages in reverse and returns the
// error w.r.t. the pipeline's input, or nil when the first stage heads the
// whole model. alpha and beta apply to the first stage only, matching the
// delta buffer handed to the caller.
func (p *Pipeline[B]) Backward(e *tensor.Tensor[float32, B], alpha, beta float32) (*tensor.Tensor[float32, B], error) {
	if p.phase != Allocated {
		return nil, &NotAllocatedError{Layer: p.name, Op: "Backward"}
	}

	var err error
	for i := len(p.stages) - 1; i >= 0; i-- {
		a, b := float32(1), float32(0)
		if i == 0 {
			a, b = alpha, beta
		}
		if e, err = p.stages[i].Backward(e, a, b); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Params collects the weight/gradient pairs of every parameterized stage,
// in forward order.
func (p *Pipeline[B]) Params() []Param[B] {
	var params []Param[B]
	for _, st := range p.stages {
		if pl, ok := st.(Parameterized[B]); ok {
			params = append(params, pl.Params()...)
		}
	}
	return params
}

// Affine builds the standard fully connected compound: a Linear layer, a
// bias add, and an optional activation transform.
//
// The compound's final stages operate in place, so Forward's beta is
// ignored for an Affine pipeline; see Pipeline.Forward.
func Affine[B tensor.Backend](nout int, init Initializer, f transform.Transform[B], backend B) *Pipeline[B] {
	stages := []Layer[B]{
		NewLinear[B](nout, init, backend),
		NewBias[B](Constant{}, backend),
	}
	if f != nil {
		stages = append(stages, NewActivation[B](f, backend))
	}
	return NewPipeline(stages...)
}
