package tensor

// Backend is the capability interface the layer kernel requires from its
// tensor-computation environment. Layers never compute on raw memory
// themselves; everything numeric goes through an injected Backend.
//
// Implementations:
//   - backend/cpu: pure Go element-wise kernels with BLAS-backed Gemm
//
// Element-wise operations follow NumPy broadcasting rules, so a reduction
// taken with keepDim=true combines directly with the tensor it was reduced
// from. How a backend parallelizes internally is invisible at this
// interface; the contract is shapes and numeric results only.
type Backend interface {
	// Element-wise binary operations (broadcasting).
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.

	// Element-wise unary operations.
	Exp(x *RawTensor) *RawTensor        // Exponential.
	Reciprocal(x *RawTensor) *RawTensor // 1/x.

	// Reduction operations. With keepDim the reduced axis collapses to
	// size 1 so the result broadcasts back against the input.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Sum along dimension.
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Maximum along dimension.

	// Gemm computes c = alpha*op(a) @ op(b) + beta*c in place, where
	// op(x) is x or its transpose. Shapes must satisfy standard
	// matrix-multiply compatibility; c must have the product shape.
	// With beta = 0 the destination is overwritten, with beta != 0 the
	// fresh product is blended into the existing contents.
	Gemm(transA, transB bool, alpha float64, a, b *RawTensor, beta float64, c *RawTensor)

	// Metadata.
	Name() string
}
