// Package layer implements the Stratum layer kernel: parameterized and
// stateless pipeline stages with a two-phase configure/allocate lifecycle
// and explicit forward/backward entry points.
//
// Every layer moves through the phases
//
//	Unconfigured → Configured → Allocated
//
// Configure is the shape-negotiation step: each stage derives its output
// shape from its producer's. Allocate creates the owned buffers and may run
// only after every stage in a pipeline has configured, because a stage's
// delta-buffer decision depends on its position (the first stage has no
// predecessor to propagate error to). Forward and Backward then run once
// per training step in that order.
//
// The tensor backend is injected at construction; layers hold no global
// state.
package layer

import (
	"github.com/stratum-ml/stratum/internal/tensor"
)

// Phase tracks a layer's position in the lifecycle.
type Phase int

// Lifecycle phases.
const (
	Unconfigured Phase = iota
	Configured
	Allocated
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Unconfigured:
		return "unconfigured"
	case Configured:
		return "configured"
	case Allocated:
		return "allocated"
	default:
		return "unknown"
	}
}

// Source yields the output shape of whatever feeds a layer its input: a
// preceding layer, or a bare shape standing in for a data iterator.
type Source interface {
	OutputShape() tensor.Shape
}

// ShapeSource adapts a bare shape to Source, for the head of a pipeline.
type ShapeSource tensor.Shape

// OutputShape returns the wrapped shape.
func (s ShapeSource) OutputShape() tensor.Shape {
	return tensor.Shape(s)
}

// Layer is the capability interface shared by all pipeline stages.
//
// A Layer is itself a Source, so stages chain directly:
// lyr2.Configure(lyr1).
type Layer[B tensor.Backend] interface {
	Source

	// Configure derives the layer's shapes from its input source.
	// Idempotent for an identical input shape; a conflicting shape after
	// the geometry is fixed returns a *ShapeError.
	Configure(src Source) error

	// Allocate creates the layer's owned buffers. Requires Configure;
	// a second call after success is a no-op.
	Allocate() error

	// Forward computes the layer's output from x. When beta is nonzero
	// the fresh result is blended into the existing output buffer as
	// out = beta*out + f(x). With inference set the layer may skip
	// retaining state needed only by Backward. The returned tensor is
	// the layer's owned buffer, overwritten on every call.
	Forward(x *tensor.Tensor[float32, B], inference bool, beta float32) (*tensor.Tensor[float32, B], error)

	// Backward consumes the error w.r.t. this layer's output and returns
	// the error w.r.t. its input, scaled by alpha and blended into any
	// existing delta buffer by beta. Layers without a predecessor return
	// nil. Parameter gradients are overwritten as a side effect.
	Backward(err *tensor.Tensor[float32, B], alpha, beta float32) (*tensor.Tensor[float32, B], error)

	// Name returns a short identifier for diagnostics.
	Name() string
}

// stage carries the lifecycle bookkeeping shared by every layer in this
// package.
type stage struct {
	name     string
	phase    Phase
	inShape  tensor.Shape
	outShape tensor.Shape
	hasPrev  bool
}

// isStage marks package-local layers so configureInput can detect a layer
// predecessor (as opposed to a bare shape) without the generic type.
func (s *stage) isStage() {}

type stager interface {
	isStage()
}

// Name returns the layer name.
func (s *stage) Name() string {
	return s.name
}

// OutputShape returns the negotiated output shape (nil before Configure).
func (s *stage) OutputShape() tensor.Shape {
	return s.outShape
}

// Phase returns the layer's lifecycle phase.
func (s *stage) Phase() Phase {
	return s.phase
}

// configureInput records the input shape and predecessor flag. It returns
// done=true when the layer was already configured with an identical shape
// (the call is a no-op), and a *ShapeError on a conflicting reconfigure.
func (s *stage) configureInput(src Source) (in tensor.Shape, done bool, err error) {
	in = src.OutputShape()

	if s.inShape != nil {
		if s.inShape.Equal(in) {
			return in, true, nil
		}
		return nil, false, &ShapeError{Layer: s.name, Op: "Configure", Want: s.inShape, Got: in}
	}

	if _, ok := src.(stager); ok {
		s.hasPrev = true
	}
	s.inShape = in.Clone()
	return in, false, nil
}

// splitShape normalizes a producer shape into (features, steps), covering
// flat vectors, (features, steps) matrices, and higher-rank local layouts
// that flatten feature-major.
func splitShape(s tensor.Shape) (features, steps int) {
	switch len(s) {
	case 1:
		return s[0], 1
	case 2:
		return s[0], s[1]
	default:
		return s.NumElements(), 1
	}
}
