// Copyright 2026 Stratum ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform provides stateless activation transforms for the
// Stratum layer kernel.
//
// A Transform is a pure function over a (features, steps) tensor, built
// entirely on the tensor.Backend primitives. Wire a transform into a
// pipeline with layer.NewActivation or layer.Affine.
//
// Example:
//
//	import (
//	    "github.com/stratum-ml/stratum/backend/cpu"
//	    "github.com/stratum-ml/stratum/transform"
//	)
//
//	sm := transform.NewSoftmax[*cpu.Backend]()
//	y := sm.Apply(x) // each column of y sums to 1
package transform

import (
	"github.com/stratum-ml/stratum/internal/transform"
	"github.com/stratum-ml/stratum/tensor"
)

// Transform is an element-wise or column-wise activation function.
//
// Apply computes the transform into a fresh tensor. Bprop returns the
// gradient factor evaluated at the transform's output, or nil when the
// factor is identically 1 and the incoming error passes through unchanged.
type Transform[B tensor.Backend] = transform.Transform[B]

// Softmax normalizes each batch column into a probability distribution,
// subtracting the per-column maximum before exponentiation for numerical
// stability.
//
// Softmax's Bprop returns nil. That is valid only when the output feeds a
// cross-entropy loss, whose gradient cancels the softmax Jacobian so the
// combined derivative reduces to (output - target).
type Softmax[B tensor.Backend] = transform.Softmax[B]

// NewSoftmax creates a Softmax transform.
func NewSoftmax[B tensor.Backend]() *Softmax[B] {
	return transform.NewSoftmax[B]()
}

// Logistic is the sigmoid transform: y = 1 / (1 + exp(-x)).
type Logistic[B tensor.Backend] = transform.Logistic[B]

// NewLogistic creates a Logistic transform.
func NewLogistic[B tensor.Backend]() *Logistic[B] {
	return transform.NewLogistic[B]()
}

// Tanh is the hyperbolic tangent transform.
type Tanh[B tensor.Backend] = transform.Tanh[B]

// NewTanh creates a Tanh transform.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return transform.NewTanh[B]()
}
