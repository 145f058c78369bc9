package money_test

import (
	"testing"

	"github.com/gurukosh/guru_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already two places", "100.25", "100.25"},
		{"half rounds up", "0.005", "0.01"},
		{"just below half rounds down", "0.0049", "0"},
		{"truncates extra digits", "10.129", "10.13"},
		{"negative half away from zero", "-0.005", "-0.01"},
		{"zero", "0", "0"},
		{"large value", "999999999.995", "1000000000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := decimal.RequireFromString(tc.in)
			want := decimal.RequireFromString(tc.want)
			assert.True(t, money.Round(in).Equal(want), "Round(%s) = %s, want %s", tc.in, money.Round(in), want)
		})
	}
}

func TestRoundNoDriftOverRepeatedAdds(t *testing.T) {
	// 1000 additions of 0.1 must land exactly on 100.00.
	sum := decimal.Zero
	step := decimal.RequireFromString("0.1")
	for i := 0; i < 1000; i++ {
		sum = money.Round(sum.Add(money.Round(step)))
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100")), "got %s", sum)
}

func TestFromFloat(t *testing.T) {
	assert.True(t, money.FromFloat(12.345).Equal(decimal.RequireFromString("12.35")))
	assert.True(t, money.FromFloat(0).Equal(decimal.Zero))
}
