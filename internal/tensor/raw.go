package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the low-level tensor representation: a flat byte buffer with
// shape, row-major strides, and runtime type information.
//
// Layer buffers (outputs, deltas, weight gradients) are allocated once and
// mutated in place every step, so RawTensor deliberately has no shared-buffer
// or copy-on-write semantics: each RawTensor owns its memory exclusively.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zero-filled.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawTensor{
		data:   make([]byte, byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	data := make([]byte, len(r.data))
	copy(data, r.data)
	return &RawTensor{
		data:   data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
}

// View returns a tensor header with the given shape sharing r's memory.
// RawTensor buffers are always contiguous row-major, so any shape with the
// same element count is a valid reinterpretation. Panics on a count
// mismatch or invalid shape.
func (r *RawTensor) View(shape Shape) *RawTensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("view: invalid shape: %v", err))
	}
	if shape.NumElements() != r.NumElements() {
		panic(fmt.Sprintf("view: shape %v needs %d elements, tensor has %d",
			shape, shape.NumElements(), r.NumElements()))
	}
	return &RawTensor{
		data:   r.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  r.dtype,
	}
}

// CopyFrom copies the contents of src into r.
// Panics on shape or dtype mismatch; buffers of the same geometry are the
// only valid copy targets.
func (r *RawTensor) CopyFrom(src *RawTensor) {
	if r.dtype != src.dtype {
		panic(fmt.Sprintf("copy: dtype mismatch %s vs %s", r.dtype, src.dtype))
	}
	if !r.shape.Equal(src.shape) {
		panic(fmt.Sprintf("copy: shape mismatch %v vs %v", r.shape, src.shape))
	}
	copy(r.data, src.data)
}
