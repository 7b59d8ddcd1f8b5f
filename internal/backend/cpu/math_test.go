package cpu

import (
	"math"
	"testing"

	"github.com/stratum-ml/stratum/internal/tensor"
)

func TestExp(t *testing.T) {
	be := New()
	x := rawF32(t, []float32{0, 1, -1}, tensor.Shape{3})
	got := be.Exp(x).AsFloat32()

	want := []float64{1, math.E, 1 / math.E}
	for i := range want {
		if math.Abs(float64(got[i])-want[i]) > 1e-5 {
			t.Errorf("Exp[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpFloat64(t *testing.T) {
	be := New()
	x := rawF64(t, []float64{2}, tensor.Shape{1})
	got := be.Exp(x).AsFloat64()
	if math.Abs(got[0]-math.Exp(2)) > 1e-12 {
		t.Errorf("Exp(2) = %v, want %v", got[0], math.Exp(2))
	}
}

func TestReciprocal(t *testing.T) {
	be := New()
	x := rawF32(t, []float32{1, 2, 4, -0.5}, tensor.Shape{4})
	assertF32(t, be.Reciprocal(x), []float32{1, 0.5, 0.25, -2}, tensor.Shape{4})
}

func TestReciprocalOfZeroIsInf(t *testing.T) {
	be := New()
	x := rawF32(t, []float32{0}, tensor.Shape{1})
	got := be.Reciprocal(x).AsFloat32()
	if !math.IsInf(float64(got[0]), 1) {
		t.Errorf("1/0 = %v, want +Inf", got[0])
	}
}
