// Copyright 2026 Stratum ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Stratum layer
// kernel.
//
// # Overview
//
// Tensors are the data structure every Stratum layer computes on. This
// package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - The Backend capability interface layers compute through
//   - NumPy-style broadcasting for element-wise operations
//   - Zero-copy typed views over raw buffers
//
// # Basic Usage
//
//	import (
//	    "github.com/stratum-ml/stratum/backend/cpu"
//	    "github.com/stratum-ml/stratum/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Randn[float32](tensor.Shape{2, 3}, backend)
//	}
//
// # Layout
//
// Layers interpret 2-D tensors as (features, steps): each column holds one
// sample of a batch. Buffers are row-major and contiguous.
package tensor
