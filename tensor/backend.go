// Copyright 2026 Stratum ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/stratum-ml/stratum/internal/tensor"

// Backend defines the interface every compute backend must implement.
// Backends handle the actual computation for tensor operations; layers and
// transforms are written purely against this interface.
//
// Implementations:
//   - backend/cpu: Pure Go element-wise kernels with BLAS matrix products
//
// The capability set is deliberately small: element-wise arithmetic,
// exponential and reciprocal, axis reductions, and a general matrix
// multiply. Everything the layer kernel computes decomposes into these.
//
// Example:
//
//	import (
//	    "github.com/stratum-ml/stratum/backend/cpu"
//	    "github.com/stratum-ml/stratum/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
type Backend = tensor.Backend
