// Copyright 2026 Stratum ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layer

import "github.com/stratum-ml/stratum/internal/layer"

// ShapeError reports an operand whose shape conflicts with a layer's
// negotiated geometry.
type ShapeError = layer.ShapeError

// NotAllocatedError reports Forward or Backward on a layer whose buffers
// do not exist yet.
type NotAllocatedError = layer.NotAllocatedError

// StateError reports an operation invoked outside its lifecycle contract,
// such as Backward without a preceding Forward.
type StateError = layer.StateError
