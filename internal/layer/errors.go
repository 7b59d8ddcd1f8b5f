package layer

import (
	"fmt"

	"github.com/stratum-ml/stratum/internal/tensor"
)

// ShapeError reports a tensor shape incompatible with a layer's fixed
// geometry: a Configure call conflicting with an earlier one, or a
// Forward/Backward argument that does not match the negotiated shape.
//
// All layer errors signal a pipeline-construction bug, not a transient
// condition; they must propagate to the caller, never be retried.
type ShapeError struct {
	Layer string
	Op    string
	Want  tensor.Shape
	Got   tensor.Shape
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: shape mismatch: want %v, got %v", e.Layer, e.Op, e.Want, e.Got)
}

// NotAllocatedError reports a Forward or Backward call before Allocate.
type NotAllocatedError struct {
	Layer string
	Op    string
}

func (e *NotAllocatedError) Error() string {
	return fmt.Sprintf("%s: %s called before Allocate", e.Layer, e.Op)
}

// StateError reports a call that violates the layer lifecycle order, such
// as Allocate before Configure or Backward without a preceding Forward.
type StateError struct {
	Layer  string
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Layer, e.Op, e.Reason)
}
