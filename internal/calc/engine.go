package calc

import (
	"math"

	"github.com/shopspring/decimal"
)

// The engine is pure and total over validated input: no I/O, no errors, no
// clock. All money math runs on decimals; binary floats appear only at the
// API boundary. The per-field rounding digits below are uneven and are part
// of the response contract; do not normalize them.

const powPrecision = 24

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// SimpleResult holds a simple interest outcome.
type SimpleResult struct {
	Interest decimal.Decimal
	Total    decimal.Decimal
}

// SimpleInterest computes interest = principal * rate% * time / 100.
// Interest rounds to 1 digit, total to 3.
func SimpleInterest(principal, rate, timePeriod decimal.Decimal) SimpleResult {
	interest := principal.Mul(rate).Mul(timePeriod).Div(hundred)
	total := principal.Add(interest)
	return SimpleResult{
		Interest: interest.Round(1),
		Total:    total.Round(3),
	}
}

// CompoundResult holds a compound interest outcome.
type CompoundResult struct {
	Interest decimal.Decimal
	Total    decimal.Decimal
}

// CompoundInterest computes total = principal * (1 + rate%/frequency)^(frequency*time).
// Time is taken exactly as given; no unit rescaling. Both fields round to 2 digits.
func CompoundInterest(principal, rate, timePeriod decimal.Decimal, frequency int) CompoundResult {
	freq := decimal.NewFromInt(int64(frequency))
	base := one.Add(rate.Div(hundred).Div(freq))
	factor := pow(base, freq.Mul(timePeriod))

	total := principal.Mul(factor)
	interest := total.Sub(principal)
	return CompoundResult{
		Interest: interest.Round(2),
		Total:    total.Round(2),
	}
}

// InstallmentPeriod is one row of an amortization schedule. Display fields
// round to 2 digits independently of the summary rounding.
type InstallmentPeriod struct {
	Number           int
	Payment          decimal.Decimal
	PrincipalPortion decimal.Decimal
	InterestPortion  decimal.Decimal
	RemainingBalance decimal.Decimal
}

// InstallmentResult holds the annuity summary plus the full schedule.
type InstallmentResult struct {
	Payment       decimal.Decimal
	Total         decimal.Decimal
	TotalInterest decimal.Decimal
	Schedule      []InstallmentPeriod
}

// InstallmentPlan computes the fixed annuity payment for n monthly periods
// and the resulting amortization schedule. The schedule iterates on the
// unrounded payment so the final balance lands within rounding tolerance of
// zero. Summary digits: payment 1, total 2, total interest 3.
func InstallmentPlan(principal, rate decimal.Decimal, installments int) InstallmentResult {
	monthlyRate := rate.Div(hundred).Div(twelve)
	n := decimal.NewFromInt(int64(installments))

	var payment decimal.Decimal
	if monthlyRate.IsPositive() {
		growth := pow(one.Add(monthlyRate), n)
		payment = principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(one))
	} else {
		payment = principal.Div(n)
	}

	total := payment.Mul(n)
	totalInterest := total.Sub(principal)

	schedule := make([]InstallmentPeriod, 0, installments)
	remaining := principal
	for i := 1; i <= installments; i++ {
		interest := remaining.Mul(monthlyRate)
		principalPortion := payment.Sub(interest)
		remaining = remaining.Sub(principalPortion)

		schedule = append(schedule, InstallmentPeriod{
			Number:           i,
			Payment:          payment.Round(2),
			PrincipalPortion: principalPortion.Round(2),
			InterestPortion:  interest.Round(2),
			RemainingBalance: remaining.Round(2),
		})
	}

	return InstallmentResult{
		Payment:       payment.Round(1),
		Total:         total.Round(2),
		TotalInterest: totalInterest.Round(3),
		Schedule:      schedule,
	}
}

// pow raises base to exp in decimal space. Integer exponents (every
// installment count, most compounding products) take the exact path.
func pow(base, exp decimal.Decimal) decimal.Decimal {
	if exp.IsInteger() && exp.IntPart() <= math.MaxInt32 {
		if v, err := base.PowInt32(int32(exp.IntPart())); err == nil {
			return v
		}
	}
	v, err := base.PowWithPrecision(exp, powPrecision)
	if err != nil {
		// unreachable for validated input: base >= 1 and exp >= 0
		return decimal.Zero
	}
	return v
}
