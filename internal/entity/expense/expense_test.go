package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnParseAmount_ShouldAcceptNormalizedInput(t *testing.T) {
	cases := []struct {
		in  string
		out float64
	}{
		{"12.50", 12.50},
		{"12,50", 12.50},
		{" 3 ", 3},
		{"0", 0},
		{"-5.5", -5.5},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.out, got, tc.in)
	}
}

func Test_OnParseAmount_ShouldRejectNonNumbers(t *testing.T) {
	cases := []string{"", "  ", "abc", "1.2.3", "12..5", "NaN", "Inf", "+Inf"}
	for _, tc := range cases {
		_, err := ParseAmount(tc)
		assert.ErrorIs(t, err, ErrInvalidAmount, tc)
	}
}

func Test_OnNewRecord_ShouldFillDefaults(t *testing.T) {
	rec := NewRecord("Lunch", Food, 12.5)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, DefaultCurrency, rec.Currency)
	assert.Equal(t, DefaultStore, rec.Store)
	assert.False(t, rec.Date.IsZero())
	assert.Empty(t, rec.Details)
}
