// Copyright 2026 Stratum ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go element-wise kernels (no CGO)
//   - Matrix multiplication through gonum's BLAS implementation
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//
// # Usage
//
//	import (
//	    "github.com/stratum-ml/stratum/backend/cpu"
//	    "github.com/stratum-ml/stratum/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
package cpu
