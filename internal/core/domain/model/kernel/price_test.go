package kernel_test

import (
	"testing"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("creates_price_from_positive_cents", func(t *testing.T) {
		price, err := kernel.NewPrice(12500)

		require.NoError(t, err)
		assert.Equal(t, int64(12500), price.Cents())
		require.NoError(t, price.Validate())
	})

	t.Run("rejects_zero", func(t *testing.T) {
		_, err := kernel.NewPrice(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative", func(t *testing.T) {
		_, err := kernel.NewPrice(-500)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-500 cents is not greater than 0")
	})
}

func TestPrice_String(t *testing.T) {
	testCases := []struct {
		cents    int64
		expected string
	}{
		{cents: 12500, expected: "125.00"},
		{cents: 99, expected: "0.99"},
		{cents: 100, expected: "1.00"},
		{cents: 101, expected: "1.01"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			price, err := kernel.NewPrice(tc.cents)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price.String())
		})
	}
}

func TestPrice_IsEqual(t *testing.T) {
	a, err := kernel.NewPrice(4200)
	require.NoError(t, err)
	b, err := kernel.NewPrice(4200)
	require.NoError(t, err)
	c, err := kernel.NewPrice(4300)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPrice_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var price kernel.Price

		require.Error(t, price.Validate())
	})
}
