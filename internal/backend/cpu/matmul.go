package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/stratum-ml/stratum/internal/tensor"
)

// Gemm computes c = alpha*op(a) @ op(b) + beta*c in place.
//
// The product is delegated to gonum's BLAS implementation; the summation
// order may differ from a naive triple loop but is numerically equivalent up
// to floating-point reassociation tolerance.
func (cpu *CPUBackend) Gemm(transA, transB bool, alpha float64, a, b *tensor.RawTensor, beta float64, c *tensor.RawTensor) {
	aShape, bShape, cShape := a.Shape(), b.Shape(), c.Shape()
	if len(aShape) != 2 || len(bShape) != 2 || len(cShape) != 2 {
		panic(fmt.Sprintf("gemm: only 2D tensors supported, got %dD, %dD, %dD",
			len(aShape), len(bShape), len(cShape)))
	}
	if a.DType() != b.DType() || a.DType() != c.DType() {
		panic(fmt.Sprintf("gemm: dtype mismatch %s, %s, %s", a.DType(), b.DType(), c.DType()))
	}

	m, k := aShape[0], aShape[1]
	if transA {
		m, k = k, m
	}
	kAlt, n := bShape[0], bShape[1]
	if transB {
		kAlt, n = n, kAlt
	}

	if k != kAlt {
		panic(fmt.Sprintf("gemm: inner dimension mismatch %v @ %v (transA=%v, transB=%v)",
			aShape, bShape, transA, transB))
	}
	if cShape[0] != m || cShape[1] != n {
		panic(fmt.Sprintf("gemm: destination shape %v, want [%d %d]", cShape, m, n))
	}

	switch a.DType() {
	case tensor.Float32:
		blas32.Gemm(transpose(transA), transpose(transB),
			float32(alpha), general32(a), general32(b),
			float32(beta), general32(c))
	case tensor.Float64:
		blas64.Gemm(transpose(transA), transpose(transB),
			alpha, general64(a), general64(b),
			beta, general64(c))
	default:
		panic(fmt.Sprintf("gemm: unsupported dtype %s", a.DType()))
	}
}

func transpose(t bool) blas.Transpose {
	if t {
		return blas.Trans
	}
	return blas.NoTrans
}

func general32(t *tensor.RawTensor) blas32.General {
	s := t.Shape()
	return blas32.General{Rows: s[0], Cols: s[1], Stride: s[1], Data: t.AsFloat32()}
}

func general64(t *tensor.RawTensor) blas64.General {
	s := t.Shape()
	return blas64.General{Rows: s[0], Cols: s[1], Stride: s[1], Data: t.AsFloat64()}
}
