package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

func TestSimpleInterest(t *testing.T) {
	result := SimpleInterest(d(1000), d(5), d(2))

	assert.True(t, result.Interest.Equal(d(100)), "interest = %s", result.Interest)
	assert.True(t, result.Total.Equal(d(1100)), "total = %s", result.Total)
}

func TestSimpleInterestTotalIsPrincipalPlusInterest(t *testing.T) {
	cases := []struct {
		principal, rate, timePeriod float64
	}{
		{1000, 5, 2},
		{2500.50, 12, 1},
		{1, 100, 1200},
		{999999999.99, 0.5, 3},
	}
	for _, tc := range cases {
		result := SimpleInterest(d(tc.principal), d(tc.rate), d(tc.timePeriod))

		raw := d(tc.principal).Mul(d(tc.rate)).Mul(d(tc.timePeriod)).Div(decimal.NewFromInt(100))
		assert.True(t, result.Interest.Equal(raw.Round(1)))
		assert.True(t, result.Total.Equal(d(tc.principal).Add(raw).Round(3)))
	}
}

func TestSimpleInterestZeroRate(t *testing.T) {
	result := SimpleInterest(d(5000), d(0), d(10))

	assert.True(t, result.Interest.IsZero())
	assert.True(t, result.Total.Equal(d(5000)))
}

func TestCompoundInterestMonthly(t *testing.T) {
	result := CompoundInterest(d(1000), d(5), d(1), 12)

	assert.True(t, result.Interest.Equal(d(51.16)), "interest = %s", result.Interest)
	assert.True(t, result.Total.Equal(d(1051.16)), "total = %s", result.Total)
}

func TestCompoundInterestZeroRate(t *testing.T) {
	for _, frequency := range []int{1, 4, 12, 365} {
		result := CompoundInterest(d(1234.56), d(0), d(7.5), frequency)

		assert.True(t, result.Interest.IsZero())
		assert.True(t, result.Total.Equal(d(1234.56)))
	}
}

func TestCompoundInterestFractionalTime(t *testing.T) {
	// 1000 * (1 + 0.12/12)^(12*1.5) = 1000 * 1.01^18
	result := CompoundInterest(d(1000), d(12), d(1.5), 12)

	assert.InDelta(t, 1196.15, result.Total.InexactFloat64(), 0.001)
	assert.InDelta(t, 196.15, result.Interest.InexactFloat64(), 0.001)
}

func TestInstallmentPlan(t *testing.T) {
	result := InstallmentPlan(d(1000), d(12), 12)

	assert.True(t, result.Payment.Equal(d(88.8)), "payment = %s", result.Payment)
	assert.True(t, result.Total.Equal(d(1066.19)), "total = %s", result.Total)
	assert.True(t, result.TotalInterest.Equal(d(66.185)), "interest = %s", result.TotalInterest)
	require.Len(t, result.Schedule, 12)

	previous := d(1000)
	for _, period := range result.Schedule {
		assert.True(t, period.RemainingBalance.LessThan(previous),
			"balance must strictly decrease at period %d", period.Number)
		previous = period.RemainingBalance
	}
	assert.True(t, result.Schedule[11].RemainingBalance.Abs().LessThanOrEqual(d(0.01)),
		"final balance = %s", result.Schedule[11].RemainingBalance)
}

func TestInstallmentPrincipalPortionsSumToPrincipal(t *testing.T) {
	cases := []struct {
		principal, rate float64
		installments    int
	}{
		{1000, 12, 12},
		{250000, 8.5, 360},
		{9999.99, 24, 6},
		{500, 1, 3},
	}
	for _, tc := range cases {
		result := InstallmentPlan(d(tc.principal), d(tc.rate), tc.installments)
		require.Len(t, result.Schedule, tc.installments)

		sum := decimal.Zero
		for _, period := range result.Schedule {
			sum = sum.Add(period.PrincipalPortion)
		}
		tolerance := d(0.01).Mul(decimal.NewFromInt(int64(tc.installments)))
		assert.True(t, sum.Sub(d(tc.principal)).Abs().LessThanOrEqual(tolerance),
			"principal portions sum to %s for %+v", sum, tc)
		assert.True(t, result.Schedule[tc.installments-1].RemainingBalance.Abs().LessThanOrEqual(d(0.01)))
	}
}

func TestInstallmentZeroRate(t *testing.T) {
	result := InstallmentPlan(d(1200), d(0), 12)

	assert.True(t, result.Payment.Equal(d(100)), "payment = %s", result.Payment)
	assert.True(t, result.TotalInterest.IsZero())
	require.Len(t, result.Schedule, 12)
	for _, period := range result.Schedule {
		assert.True(t, period.InterestPortion.IsZero())
		assert.True(t, period.PrincipalPortion.Equal(d(100)))
	}
	assert.True(t, result.Schedule[11].RemainingBalance.IsZero())
}

func TestScheduleRowsRoundToTwoDigits(t *testing.T) {
	result := InstallmentPlan(d(1000), d(12), 12)
	for _, period := range result.Schedule {
		assert.GreaterOrEqual(t, period.PrincipalPortion.Exponent(), int32(-2))
		assert.GreaterOrEqual(t, period.InterestPortion.Exponent(), int32(-2))
		assert.GreaterOrEqual(t, period.RemainingBalance.Exponent(), int32(-2))
	}
}
