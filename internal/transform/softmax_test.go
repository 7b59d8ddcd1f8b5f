package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratum-ml/stratum/internal/backend/cpu"
	"github.com/stratum-ml/stratum/internal/tensor"
)

func TestSoftmaxUniformColumn(t *testing.T) {
	be := cpu.New()
	x, err := tensor.FromSlice([]float32{0, 0, 0}, tensor.Shape{3, 1}, be)
	require.NoError(t, err)

	y := NewSoftmax[*cpu.CPUBackend]().Apply(x)

	require.Equal(t, tensor.Shape{3, 1}, y.Shape())
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 1.0/3.0, y.At(i, 0), 1e-6)
	}
}

func TestSoftmaxColumnsSumToOne(t *testing.T) {
	be := cpu.New()
	x, err := tensor.FromSlice([]float32{
		1, -2, 0.5,
		3, 0, -1,
		-1, 4, 2,
	}, tensor.Shape{3, 3}, be)
	require.NoError(t, err)

	y := NewSoftmax[*cpu.CPUBackend]().Apply(x)

	for c := 0; c < 3; c++ {
		sum := float32(0)
		for r := 0; r < 3; r++ {
			v := y.At(r, c)
			assert.GreaterOrEqual(t, v, float32(0), "entry (%d,%d)", r, c)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-5, "column %d", c)
	}
}

func TestSoftmaxOrdering(t *testing.T) {
	be := cpu.New()
	x, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, be)
	require.NoError(t, err)

	y := NewSoftmax[*cpu.CPUBackend]().Apply(x)

	assert.Less(t, y.At(0, 0), y.At(1, 0))
	assert.Less(t, y.At(1, 0), y.At(2, 0))
}

func TestSoftmaxLargeMagnitudeStable(t *testing.T) {
	be := cpu.New()
	// Naive exp would overflow float32 at 1e4; the max subtraction keeps the
	// computation finite.
	x, err := tensor.FromSlice([]float32{1e4, 0, -1e4}, tensor.Shape{3, 1}, be)
	require.NoError(t, err)

	y := NewSoftmax[*cpu.CPUBackend]().Apply(x)

	assert.InDelta(t, 1.0, y.At(0, 0), 1e-6)
	assert.InDelta(t, 0.0, y.At(1, 0), 1e-6)
	assert.InDelta(t, 0.0, y.At(2, 0), 1e-6)

	sum := y.At(0, 0) + y.At(1, 0) + y.At(2, 0)
	assert.InDelta(t, 1.0, sum, 1e-5)
}

func TestSoftmaxShiftInvariance(t *testing.T) {
	be := cpu.New()
	x1, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3, 1}, be)
	require.NoError(t, err)
	x2, err := tensor.FromSlice([]float32{101, 102, 103}, tensor.Shape{3, 1}, be)
	require.NoError(t, err)

	sm := NewSoftmax[*cpu.CPUBackend]()
	y1, y2 := sm.Apply(x1), sm.Apply(x2)

	for i := 0; i < 3; i++ {
		assert.InDelta(t, y1.At(i, 0), y2.At(i, 0), 1e-6)
	}
}

func TestSoftmaxBpropIsIdentityFactor(t *testing.T) {
	be := cpu.New()
	y, err := tensor.FromSlice([]float32{0.2, 0.8}, tensor.Shape{2, 1}, be)
	require.NoError(t, err)

	assert.Nil(t, NewSoftmax[*cpu.CPUBackend]().Bprop(y))
}
