package cpu

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/stratum-ml/stratum/internal/tensor"
)

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	result, dim := cpu.reduceSetup("sumdim", x, dim, keepDim)

	outer, n, inner := reduceSpans(x.Shape(), dim)

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for o := 0; o < outer; o++ {
			for i := 0; i < inner; i++ {
				sum := float32(0)
				for k := 0; k < n; k++ {
					sum += src[(o*n+k)*inner+i]
				}
				dst[o*inner+i] = sum
			}
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for o := 0; o < outer; o++ {
			for i := 0; i < inner; i++ {
				sum := float64(0)
				for k := 0; k < n; k++ {
					sum += src[(o*n+k)*inner+i]
				}
				dst[o*inner+i] = sum
			}
		}
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

// MaxDim computes the maximum of tensor elements along the specified
// dimension. Accumulation starts at -Inf, so all-negative columns reduce
// correctly.
func (cpu *CPUBackend) MaxDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	result, dim := cpu.reduceSetup("maxdim", x, dim, keepDim)

	outer, n, inner := reduceSpans(x.Shape(), dim)

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for o := 0; o < outer; o++ {
			for i := 0; i < inner; i++ {
				best := math32.Inf(-1)
				for k := 0; k < n; k++ {
					if v := src[(o*n+k)*inner+i]; v > best {
						best = v
					}
				}
				dst[o*inner+i] = best
			}
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for o := 0; o < outer; o++ {
			for i := 0; i < inner; i++ {
				best := math.Inf(-1)
				for k := 0; k < n; k++ {
					if v := src[(o*n+k)*inner+i]; v > best {
						best = v
					}
				}
				dst[o*inner+i] = best
			}
		}
	default:
		panic(fmt.Sprintf("maxdim: unsupported dtype %s", x.DType()))
	}

	return result
}

// reduceSetup validates dim, normalizes negative indexing, and allocates the
// result tensor with the reduced axis kept or removed.
func (cpu *CPUBackend) reduceSetup(name string, x *tensor.RawTensor, dim int, keepDim bool) (*tensor.RawTensor, int) {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for %dD tensor", name, dim, ndim))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
		if len(outShape) == 0 {
			outShape = tensor.Shape{1}
		}
	}

	result, err := tensor.NewRaw(outShape, x.DType())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	return result, dim
}

// reduceSpans decomposes a shape around the reduced axis: outer iterates the
// leading axes, n is the reduced extent, inner iterates the trailing axes.
func reduceSpans(shape tensor.Shape, dim int) (outer, n, inner int) {
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	n = shape[dim]
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, n, inner
}
