package cpu

import "github.com/stratum-ml/stratum/internal/tensor"

// broadcastStrides maps each output axis to a stride into s, with stride 0
// on axes where s is broadcast (size 1 or missing).
func broadcastStrides(s, out tensor.Shape) []int {
	strides := make([]int, len(out))
	own := s.ComputeStrides()
	offset := len(out) - len(s)
	for d := range out {
		sd := d - offset
		if sd < 0 || s[sd] == 1 {
			strides[d] = 0
		} else {
			strides[d] = own[sd]
		}
	}
	return strides
}

func broadcastFloat32(dst, a, b *tensor.RawTensor, op func(x, y float32) float32) {
	outShape := dst.Shape()
	aStr := broadcastStrides(a.Shape(), outShape)
	bStr := broadcastStrides(b.Shape(), outShape)

	da, db, dd := a.AsFloat32(), b.AsFloat32(), dst.AsFloat32()
	idx := make([]int, len(outShape))
	for i := range dd {
		ai, bi := 0, 0
		for d := range idx {
			ai += idx[d] * aStr[d]
			bi += idx[d] * bStr[d]
		}
		dd[i] = op(da[ai], db[bi])

		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < outShape[d] {
				break
			}
			idx[d] = 0
		}
	}
}

func broadcastFloat64(dst, a, b *tensor.RawTensor, op func(x, y float64) float64) {
	outShape := dst.Shape()
	aStr := broadcastStrides(a.Shape(), outShape)
	bStr := broadcastStrides(b.Shape(), outShape)

	da, db, dd := a.AsFloat64(), b.AsFloat64(), dst.AsFloat64()
	idx := make([]int, len(outShape))
	for i := range dd {
		ai, bi := 0, 0
		for d := range idx {
			ai += idx[d] * aStr[d]
			bi += idx[d] * bStr[d]
		}
		dd[i] = op(da[ai], db[bi])

		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < outShape[d] {
				break
			}
			idx[d] = 0
		}
	}
}
