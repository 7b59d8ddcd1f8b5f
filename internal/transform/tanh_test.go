package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratum-ml/stratum/internal/backend/cpu"
	"github.com/stratum-ml/stratum/internal/tensor"
)

func TestTanhApply(t *testing.T) {
	be := cpu.New()
	x, err := tensor.FromSlice([]float32{0, 1, -1}, tensor.Shape{3, 1}, be)
	require.NoError(t, err)

	y := NewTanh[*cpu.CPUBackend]().Apply(x)

	assert.InDelta(t, 0, y.At(0, 0), 1e-6)
	assert.InDelta(t, math.Tanh(1), float64(y.At(1, 0)), 1e-5)
	assert.InDelta(t, math.Tanh(-1), float64(y.At(2, 0)), 1e-5)
}

func TestTanhApplyMatchesReference(t *testing.T) {
	be := cpu.New()
	in := []float32{-3, -0.5, -0.1, 0.1, 0.5, 3}
	x, err := tensor.FromSlice(in, tensor.Shape{6, 1}, be)
	require.NoError(t, err)

	y := NewTanh[*cpu.CPUBackend]().Apply(x)

	for i, v := range in {
		assert.InDelta(t, math.Tanh(float64(v)), float64(y.At(i, 0)), 1e-5, "tanh(%v)", v)
	}
}

func TestTanhOutputRange(t *testing.T) {
	be := cpu.New()
	x, err := tensor.FromSlice([]float32{-50, 50}, tensor.Shape{2, 1}, be)
	require.NoError(t, err)

	y := NewTanh[*cpu.CPUBackend]().Apply(x)

	assert.InDelta(t, -1, y.At(0, 0), 1e-6)
	assert.InDelta(t, 1, y.At(1, 0), 1e-6)
}

func TestTanhBprop(t *testing.T) {
	be := cpu.New()
	y, err := tensor.FromSlice([]float32{0, 0.5, -0.5}, tensor.Shape{3, 1}, be)
	require.NoError(t, err)

	factor := NewTanh[*cpu.CPUBackend]().Bprop(y)
	require.NotNil(t, factor)

	// d/dx tanh = 1 - y^2 at the output y.
	assert.InDelta(t, 1.0, factor.At(0, 0), 1e-6)
	assert.InDelta(t, 0.75, factor.At(1, 0), 1e-6)
	assert.InDelta(t, 0.75, factor.At(2, 0), 1e-6)
}
