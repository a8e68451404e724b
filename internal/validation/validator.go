package validation

import (
	"regexp"
)

// Input bounds. Principal and rate ceilings apply to every calculation type.
const (
	MaxPrincipal            = 999999999.99
	MaxRate                 = 100.0
	MaxTimePeriods          = 1200
	MaxCompoundingFrequency = 365
	MaxInstallments         = 360

	MinPasswordLength = 6
	MaxPasswordLength = 255
	MaxEmailLength    = 255
	MaxNameLength     = 100
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	namePattern  = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
)

// RegistrationInput validates a registration request and returns
// human-readable messages, one per failed rule.
func RegistrationInput(name, email, password string) []string {
	var errs []string

	if email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Invalid email format")
	} else if len(email) > MaxEmailLength {
		errs = append(errs, "Email is too long (max 255 characters)")
	}

	if password == "" {
		errs = append(errs, "Password is required")
	} else if len(password) < MinPasswordLength {
		errs = append(errs, "Password must be at least 6 characters long")
	} else if len(password) > MaxPasswordLength {
		errs = append(errs, "Password is too long (max 255 characters)")
	}

	if name != "" {
		if len(name) > MaxNameLength {
			errs = append(errs, "Name is too long (max 100 characters)")
		}
		if !namePattern.MatchString(name) {
			errs = append(errs, "Name can only contain letters and spaces")
		}
	}

	return errs
}

// LoginInput validates a login request.
func LoginInput(email, password string) []string {
	var errs []string

	if email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "Invalid email format")
	}

	if password == "" {
		errs = append(errs, "Password is required")
	}

	return errs
}

// SimpleInterestInput validates a simple interest request. Nil pointers mark
// fields the caller omitted.
func SimpleInterestInput(principal, rate, timePeriod *float64) []string {
	var errs []string
	errs = appendPrincipalErrors(errs, principal)
	errs = appendRateErrors(errs, rate)

	if timePeriod == nil {
		errs = append(errs, "Time period is required")
	} else if *timePeriod <= 0 {
		errs = append(errs, "Time period must be greater than 0")
	} else if *timePeriod > MaxTimePeriods {
		errs = append(errs, "Time period is too long (max 1200 months)")
	}

	return errs
}

// CompoundInterestInput validates a compound interest request.
func CompoundInterestInput(principal, rate, timePeriod *float64, frequency *int) []string {
	errs := SimpleInterestInput(principal, rate, timePeriod)

	if frequency != nil {
		if *frequency <= 0 {
			errs = append(errs, "Compounding frequency must be greater than 0")
		} else if *frequency > MaxCompoundingFrequency {
			errs = append(errs, "Compounding frequency cannot exceed 365 (daily)")
		}
	}

	return errs
}

// InstallmentInput validates an installment simulation request.
func InstallmentInput(principal, rate *float64, installments *int) []string {
	var errs []string
	errs = appendPrincipalErrors(errs, principal)
	errs = appendRateErrors(errs, rate)

	if installments == nil {
		errs = append(errs, "Number of installments is required")
	} else if *installments <= 0 {
		errs = append(errs, "Number of installments must be greater than 0")
	} else if *installments > MaxInstallments {
		errs = append(errs, "Number of installments cannot exceed 360 (30 years)")
	}

	return errs
}

func appendPrincipalErrors(errs []string, principal *float64) []string {
	if principal == nil {
		return append(errs, "Principal amount is required")
	}
	if *principal <= 0 {
		return append(errs, "Principal must be greater than 0")
	}
	if *principal > MaxPrincipal {
		return append(errs, "Principal amount is too large (max 999,999,999.99)")
	}
	return errs
}

func appendRateErrors(errs []string, rate *float64) []string {
	if rate == nil {
		return append(errs, "Interest rate is required")
	}
	if *rate < 0 {
		return append(errs, "Interest rate cannot be negative")
	}
	if *rate > MaxRate {
		return append(errs, "Interest rate cannot exceed 100%")
	}
	return errs
}
