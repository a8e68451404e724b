package domain

import "time"

// CalculationType identifies a financial calculation in audit rows.
type CalculationType string

const (
	CalculationSimpleInterest   CalculationType = "simple_interest"
	CalculationCompoundInterest CalculationType = "compound_interest"
	CalculationInstallment      CalculationType = "installment"
)

// ResponseName returns the calculation_type value used in API responses.
// Installment responses historically report "installment_simulation" while
// audit rows keep the shorter name; both spellings are part of the contract.
func (t CalculationType) ResponseName() string {
	if t == CalculationInstallment {
		return "installment_simulation"
	}
	return string(t)
}

// AuditRecord is an append-only echo of a calculation request and its result.
type AuditRecord struct {
	ID              int64
	CalculationType CalculationType
	RequestData     []byte
	Result          []byte
	CreatedAt       time.Time
}
