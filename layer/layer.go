// Copyright 2026 Stratum ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layer provides the public API for the Stratum layer kernel.
//
// # Overview
//
// Layers are pipeline stages with a two-phase lifecycle and explicit
// forward/backward entry points:
//
//	Unconfigured → Configured → Allocated
//
// Configure negotiates shapes stage by stage; Allocate creates the owned
// buffers once every stage knows whether a predecessor exists. Forward and
// Backward then run once per training step.
//
// # Basic Usage
//
//	import (
//	    "github.com/stratum-ml/stratum/backend/cpu"
//	    "github.com/stratum-ml/stratum/layer"
//	    "github.com/stratum-ml/stratum/tensor"
//	    "github.com/stratum-ml/stratum/transform"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    model := layer.NewPipeline[*cpu.Backend](
//	        layer.NewLinear[*cpu.Backend](10, layer.Xavier{}, backend),
//	        layer.NewActivation[*cpu.Backend](transform.NewSoftmax[*cpu.Backend](), backend),
//	    )
//
//	    _ = model.Configure(layer.ShapeSource{784, 32})
//	    _ = model.Allocate()
//
//	    out, _ := model.Forward(x, false, 0)
//	    _, _ = model.Backward(errSignal, 1, 0)
//	}
//
// Weight updates are the caller's business: Params exposes each layer's
// weight and gradient tensors for an external optimizer.
package layer

import (
	"github.com/stratum-ml/stratum/internal/layer"
	"github.com/stratum-ml/stratum/tensor"
	"github.com/stratum-ml/stratum/transform"
)

// Phase tracks a layer's position in the lifecycle.
type Phase = layer.Phase

// Lifecycle phases.
const (
	Unconfigured Phase = layer.Unconfigured
	Configured   Phase = layer.Configured
	Allocated    Phase = layer.Allocated
)

// Source yields the output shape of whatever feeds a layer its input.
type Source = layer.Source

// ShapeSource adapts a bare shape to Source, standing in for a data
// iterator at the head of a pipeline.
type ShapeSource = layer.ShapeSource

// Layer is the capability interface shared by all pipeline stages.
// A Layer is itself a Source, so stages chain directly.
type Layer[B tensor.Backend] = layer.Layer[B]

// Param exposes a layer's weight and weight-gradient tensors to an
// external optimizer.
type Param[B tensor.Backend] = layer.Param[B]

// Parameterized is implemented by layers holding trainable parameters.
type Parameterized[B tensor.Backend] = layer.Parameterized[B]

// Initializer fills a freshly allocated weight tensor.
type Initializer = layer.Initializer

// Xavier initializes weights from the Glorot uniform distribution.
type Xavier = layer.Xavier

// Constant initializes every weight to a fixed value; the zero value
// fills with zeros.
type Constant = layer.Constant

// Linear is a fully connected layer: out = w @ x.
type Linear[B tensor.Backend] = layer.Linear[B]

// NewLinear creates a Linear layer producing nout output features.
func NewLinear[B tensor.Backend](nout int, init Initializer, backend B) *Linear[B] {
	return layer.NewLinear[B](nout, init, backend)
}

// Bias adds a per-feature bias column to its input, in place.
type Bias[B tensor.Backend] = layer.Bias[B]

// NewBias creates a Bias layer.
func NewBias[B tensor.Backend](init Initializer, backend B) *Bias[B] {
	return layer.NewBias[B](init, backend)
}

// Activation applies an elementwise transform in place.
type Activation[B tensor.Backend] = layer.Activation[B]

// NewActivation creates an Activation stage wrapping f.
func NewActivation[B tensor.Backend](f transform.Transform[B], backend B) *Activation[B] {
	return layer.NewActivation[B](f, backend)
}

// Pipeline chains layers into a single compound stage. Pipelines implement
// Layer and therefore nest.
type Pipeline[B tensor.Backend] = layer.Pipeline[B]

// NewPipeline creates a pipeline over the given stages, in order.
func NewPipeline[B tensor.Backend](stages ...Layer[B]) *Pipeline[B] {
	return layer.NewPipeline[B](stages...)
}

// Affine builds the standard fully connected compound: a Linear layer, a
// bias add, and an optional activation transform. Forward's beta is
// ignored for an Affine compound because its final stages operate in
// place; see Pipeline.Forward.
func Affine[B tensor.Backend](nout int, init Initializer, f transform.Transform[B], backend B) *Pipeline[B] {
	return layer.Affine[B](nout, init, f, backend)
}
