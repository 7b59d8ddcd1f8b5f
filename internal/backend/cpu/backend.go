// Package cpu implements the CPU tensor backend: pure Go element-wise
// kernels with BLAS-backed matrix multiplication via gonum.
package cpu

import (
	"fmt"

	"github.com/stratum-ml/stratum/internal/tensor"
)

// CPUBackend implements tensor.Backend on the host CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binaryOp("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// binaryOp applies op element-wise over a and b into a fresh tensor,
// broadcasting where needed.
func (cpu *CPUBackend) binaryOp(
	name string,
	a, b *tensor.RawTensor,
	op32 func(x, y float32) float32,
	op64 func(x, y float64) float64,
) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	switch a.DType() {
	case tensor.Float32:
		if needsBroadcast {
			broadcastFloat32(result, a, b, op32)
		} else {
			x, y, dst := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
			for i := range dst {
				dst[i] = op32(x[i], y[i])
			}
		}
	case tensor.Float64:
		if needsBroadcast {
			broadcastFloat64(result, a, b, op64)
		} else {
			x, y, dst := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
			for i := range dst {
				dst[i] = op64(x[i], y[i])
			}
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}
