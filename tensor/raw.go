// Copyright 2026 Stratum ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/stratum-ml/stratum/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType()
//   - Type-safe data access via AsFloat32(), AsFloat64()
//   - Deep copies via Clone() and in-place copies via CopyFrom()
//   - Zero-copy reshapes via View()
//
// Most users should use the high-level Tensor[T, B] type instead; backends
// operate on RawTensor directly.
type RawTensor = tensor.RawTensor

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-filled.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}
