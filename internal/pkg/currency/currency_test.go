package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"₹34,500":   34500,
		"$1,200.50": 1200.5,
		"1000":      1000,
		" 29 000 ":  29000,
		"0":         0,
	}
	for in, want := range cases {
		got, err := ParsePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, in := range []string{"", "₹", "abc", "-5", "12a"} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrInvalidPrice, in)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse("usd", INR)
	require.NoError(t, err)
	assert.Equal(t, USD, c)

	c, err = Parse("", INR)
	require.NoError(t, err)
	assert.Equal(t, INR, c)

	_, err = Parse("EUR", INR)
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "₹34,500", Format(34500, INR))
	assert.Equal(t, "₹12,34,567", Format(1234567, INR))
	assert.Equal(t, "$999", Format(999, USD))
	assert.Equal(t, "$1,000", Format(1000, USD))
	assert.Equal(t, "₹0", Format(0, ""))
}
