package kernel_test

import (
	"testing"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from minor units", func(t *testing.T) {
		m, err := kernel.NewMoney(2500)

		require.NoError(t, err)
		assert.Equal(t, int64(2500), m.MinorUnits())
		assert.InDelta(t, 25.00, m.Float(), 0.0001)
	})

	t.Run("should allow zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
	})
}

func TestMoneyFromFloat(t *testing.T) {
	t.Run("should round to nearest minor unit", func(t *testing.T) {
		testCases := []struct {
			amount   float64
			expected int64
		}{
			{25.00, 2500},
			{0.01, 1},
			{19.999, 2000},
			{10.004, 1000},
			{0, 0},
		}

		for _, tc := range testCases {
			m, err := kernel.MoneyFromFloat(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.MinorUnits(), "amount %f", tc.amount)
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)
		require.Error(t, err)
	})
}

func TestMoney_String(t *testing.T) {
	m, err := kernel.NewMoney(1050)
	require.NoError(t, err)
	assert.Equal(t, "10.50", m.String())
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(100)
	b, _ := kernel.NewMoney(100)
	c, _ := kernel.NewMoney(200)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
