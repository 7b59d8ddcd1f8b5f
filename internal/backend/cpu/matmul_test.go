package cpu

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/stratum-ml/stratum/internal/tensor"
)

// naiveGemm is a triple-loop reference for c = alpha*op(a)@op(b) + beta*c.
func naiveGemm(transA, transB bool, alpha float32, a, b *tensor.RawTensor, beta float32, c *tensor.RawTensor) {
	at := func(raw *tensor.RawTensor, i, j int, trans bool) float32 {
		cols := raw.Shape()[1]
		if trans {
			return raw.AsFloat32()[j*cols+i]
		}
		return raw.AsFloat32()[i*cols+j]
	}

	m, n := c.Shape()[0], c.Shape()[1]
	k := a.Shape()[1]
	if transA {
		k = a.Shape()[0]
	}

	dst := c.AsFloat32()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float32(0)
			for p := 0; p < k; p++ {
				sum += at(a, i, p, transA) * at(b, p, j, transB)
			}
			dst[i*n+j] = alpha*sum + beta*dst[i*n+j]
		}
	}
}

func randRaw(t *testing.T, rng *rand.Rand, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32)
	if err != nil {
		t.Fatal(err)
	}
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(rng.NormFloat64())
	}
	return raw
}

func TestGemmBasic(t *testing.T) {
	be := New()
	// [[1 2]    [[5]      [[17]
	//  [3 4]] @  [6]]  =   [39]]
	a := rawF32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawF32(t, []float32{5, 6}, tensor.Shape{2, 1})
	c := rawF32(t, []float32{0, 0}, tensor.Shape{2, 1})

	be.Gemm(false, false, 1, a, b, 0, c)
	assertF32(t, c, []float32{17, 39}, tensor.Shape{2, 1})
}

func TestGemmAccumulate(t *testing.T) {
	be := New()
	a := rawF32(t, []float32{1, 0, 0, 1}, tensor.Shape{2, 2})
	b := rawF32(t, []float32{2, 3}, tensor.Shape{2, 1})
	c := rawF32(t, []float32{10, 20}, tensor.Shape{2, 1})

	// c = 0.5*a@b + 2*c
	be.Gemm(false, false, 0.5, a, b, 2, c)
	assertF32(t, c, []float32{21, 41.5}, tensor.Shape{2, 1})
}

func TestGemmAgainstNaive(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(42))

	cases := []struct {
		transA, transB bool
		m, k, n        int
		alpha, beta    float32
	}{
		{false, false, 4, 3, 5, 1, 0},
		{true, false, 4, 3, 5, 1, 0},
		{false, true, 4, 3, 5, 1, 0},
		{true, true, 4, 3, 5, 1, 0},
		{false, false, 7, 2, 6, 0.5, 1.5},
		{true, false, 3, 8, 2, -1, 0.25},
	}

	for _, tc := range cases {
		aShape := tensor.Shape{tc.m, tc.k}
		if tc.transA {
			aShape = tensor.Shape{tc.k, tc.m}
		}
		bShape := tensor.Shape{tc.k, tc.n}
		if tc.transB {
			bShape = tensor.Shape{tc.n, tc.k}
		}

		a := randRaw(t, rng, aShape)
		b := randRaw(t, rng, bShape)
		c := randRaw(t, rng, tensor.Shape{tc.m, tc.n})
		want := c.Clone()

		be.Gemm(tc.transA, tc.transB, float64(tc.alpha), a, b, float64(tc.beta), c)
		naiveGemm(tc.transA, tc.transB, tc.alpha, a, b, tc.beta, want)

		got, ref := c.AsFloat32(), want.AsFloat32()
		for i := range ref {
			if diff := got[i] - ref[i]; diff > 1e-4 || diff < -1e-4 {
				t.Fatalf("case %+v: element %d = %v, want %v", tc, i, got[i], ref[i])
			}
		}
	}
}

func TestGemmAgainstGonumMat(t *testing.T) {
	be := New()
	rng := rand.New(rand.NewSource(7))

	a := randRaw(t, rng, tensor.Shape{5, 4})
	b := randRaw(t, rng, tensor.Shape{4, 6})
	c := rawF32(t, make([]float32, 30), tensor.Shape{5, 6})

	be.Gemm(false, false, 1, a, b, 0, c)

	toDense := func(raw *tensor.RawTensor) *mat.Dense {
		s := raw.Shape()
		data := make([]float64, s.NumElements())
		for i, v := range raw.AsFloat32() {
			data[i] = float64(v)
		}
		return mat.NewDense(s[0], s[1], data)
	}

	var want mat.Dense
	want.Mul(toDense(a), toDense(b))

	got := c.AsFloat32()
	for i := 0; i < 5; i++ {
		for j := 0; j < 6; j++ {
			if diff := float64(got[i*6+j]) - want.At(i, j); diff > 1e-4 || diff < -1e-4 {
				t.Fatalf("element (%d,%d) = %v, want %v", i, j, got[i*6+j], want.At(i, j))
			}
		}
	}
}

func TestGemmFloat64(t *testing.T) {
	be := New()
	a := rawF64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawF64(t, []float64{1, 0, 0, 1}, tensor.Shape{2, 2})
	c := rawF64(t, make([]float64, 4), tensor.Shape{2, 2})

	be.Gemm(false, false, 1, a, b, 0, c)
	got := c.AsFloat64()
	want := []float64{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("identity product = %v, want %v", got, want)
		}
	}
}

func TestGemmInnerDimMismatchPanics(t *testing.T) {
	be := New()
	a := rawF32(t, make([]float32, 6), tensor.Shape{2, 3})
	b := rawF32(t, make([]float32, 4), tensor.Shape{2, 2})
	c := rawF32(t, make([]float32, 4), tensor.Shape{2, 2})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on inner dimension mismatch")
		}
	}()
	be.Gemm(false, false, 1, a, b, 0, c)
}

func TestGemmDestShapeMismatchPanics(t *testing.T) {
	be := New()
	a := rawF32(t, make([]float32, 6), tensor.Shape{2, 3})
	b := rawF32(t, make([]float32, 3), tensor.Shape{3, 1})
	c := rawF32(t, make([]float32, 4), tensor.Shape{2, 2})
	defer func() {
		if recover() == nil {
			t.Error("expected panic on destination shape mismatch")
		}
	}()
	be.Gemm(false, false, 1, a, b, 0, c)
}
