package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRequiredPayment(t *testing.T) {
	whole := decimal.New(1, 18)

	cases := []struct {
		name   string
		tokens decimal.Decimal
		price  decimal.Decimal
		want   decimal.Decimal
	}{
		{
			name:   "five whole tokens at one native unit each",
			tokens: decimal.NewFromInt(5).Mul(whole),
			price:  whole,
			want:   decimal.NewFromInt(5).Mul(whole),
		},
		{
			name:   "half a token",
			tokens: decimal.New(5, 17),
			price:  whole,
			want:   decimal.New(5, 17),
		},
		{
			name:   "single base unit at half price truncates to zero",
			tokens: decimal.NewFromInt(1),
			price:  decimal.New(5, 17),
			want:   decimal.Zero,
		},
		{
			name:   "truncation drops the fractional remainder",
			tokens: decimal.NewFromInt(3),
			price:  decimal.New(1, 17), // 3 * 0.1 = 0.3 native units
			want:   decimal.Zero,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RequiredPayment(tc.tokens, tc.price)
			require.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestUsageFee(t *testing.T) {
	require.True(t, UsageFee(decimal.NewFromInt(10000), 1).Equal(decimal.NewFromInt(1)))
	require.True(t, UsageFee(decimal.NewFromInt(1001), 10).Equal(decimal.NewFromInt(1)), "1001*10/10000 truncates to 1")
	require.True(t, UsageFee(decimal.NewFromInt(500), 0).IsZero())
	require.True(t, UsageFee(decimal.NewFromInt(500), 10000).Equal(decimal.NewFromInt(500)), "10000 bip is the whole amount")
}

func TestCampaignWindow(t *testing.T) {
	c := &Campaign{StartTime: 100, EndTime: 200}

	require.False(t, c.Started(unix(99)))
	require.True(t, c.Started(unix(100)), "start is inclusive")
	require.False(t, c.Ended(unix(199)))
	require.True(t, c.Ended(unix(200)), "end is exclusive")
}

func unix(sec int64) time.Time { return time.Unix(sec, 0) }
