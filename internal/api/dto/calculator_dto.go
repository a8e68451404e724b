package dto

// Calculator requests use pointer fields so validation can distinguish an
// omitted field from a zero value.

// SimpleInterestRequest payload.
type SimpleInterestRequest struct {
	Principal *float64 `json:"principal"`
	Rate      *float64 `json:"rate"`
	Time      *float64 `json:"time"`
}

// CompoundInterestRequest payload.
type CompoundInterestRequest struct {
	Principal            *float64 `json:"principal"`
	Rate                 *float64 `json:"rate"`
	Time                 *float64 `json:"time"`
	CompoundingFrequency *int     `json:"compounding_frequency"`
}

// InstallmentRequest payload.
type InstallmentRequest struct {
	Principal    *float64 `json:"principal"`
	Rate         *float64 `json:"rate"`
	Installments *int     `json:"installments"`
}

// SimpleInterestInputs echoes the validated inputs.
type SimpleInterestInputs struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Time      float64 `json:"time"`
}

// CompoundInterestInputs echoes the validated inputs including the effective
// compounding frequency (12 when the caller omitted it).
type CompoundInterestInputs struct {
	Principal            float64 `json:"principal"`
	Rate                 float64 `json:"rate"`
	Time                 float64 `json:"time"`
	CompoundingFrequency int     `json:"compounding_frequency"`
}

// InstallmentInputs echoes the validated inputs.
type InstallmentInputs struct {
	Principal    float64 `json:"principal"`
	Rate         float64 `json:"rate"`
	Installments int     `json:"installments"`
}

// InterestResults carries interest/total for simple and compound responses.
type InterestResults struct {
	Interest    float64 `json:"interest"`
	TotalAmount float64 `json:"total_amount"`
}

// InstallmentPeriod is one breakdown row.
type InstallmentPeriod struct {
	InstallmentNumber int     `json:"installment_number"`
	InstallmentAmount float64 `json:"installment_amount"`
	PrincipalPayment  float64 `json:"principal_payment"`
	InterestPayment   float64 `json:"interest_payment"`
	RemainingBalance  float64 `json:"remaining_balance"`
}

// InstallmentResults carries the annuity summary plus the breakdown.
type InstallmentResults struct {
	InstallmentAmount float64             `json:"installment_amount"`
	TotalAmount       float64             `json:"total_amount"`
	TotalInterest     float64             `json:"total_interest"`
	Breakdown         []InstallmentPeriod `json:"breakdown"`
}

// SimpleInterestResponse is the full simple interest envelope.
type SimpleInterestResponse struct {
	Success         bool                 `json:"success"`
	CalculationType string               `json:"calculation_type"`
	Inputs          SimpleInterestInputs `json:"inputs"`
	Results         InterestResults      `json:"results"`
}

// CompoundInterestResponse is the full compound interest envelope.
type CompoundInterestResponse struct {
	Success         bool                   `json:"success"`
	CalculationType string                 `json:"calculation_type"`
	Inputs          CompoundInterestInputs `json:"inputs"`
	Results         InterestResults        `json:"results"`
}

// InstallmentResponse is the full installment simulation envelope.
type InstallmentResponse struct {
	Success         bool               `json:"success"`
	CalculationType string             `json:"calculation_type"`
	Inputs          InstallmentInputs  `json:"inputs"`
	Results         InstallmentResults `json:"results"`
}
