package booking

import (
	"strings"

	"sanocare/models"
)

// ValidationResult carries the full set of problems with a candidate
// booking, not just the first.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// FirstError returns the first problem, or "" when valid.
func (v ValidationResult) FirstError() string {
	if len(v.Errors) == 0 {
		return ""
	}
	return v.Errors[0]
}

// Validate checks a candidate booking's fields for acceptability. It never
// fails fast: every rule runs so the caller can surface all problems.
func Validate(input models.BookingInput) ValidationResult {
	var errs []string

	if len(strings.TrimSpace(input.PatientName)) < 2 {
		errs = append(errs, "Please enter a valid patient name (at least 2 characters)")
	}

	// Indian format: country code 91 plus a 10-digit subscriber number.
	digits := stripNonDigits(input.Phone)
	if len(digits) != 12 || !strings.HasPrefix(digits, "91") {
		errs = append(errs, "Please enter a valid 10-digit Indian phone number")
	}

	if len(strings.TrimSpace(input.ManualAddress)) < 10 {
		errs = append(errs, "Please enter a complete address (at least 10 characters)")
	}

	if !models.IsValidService(input.ServiceCategory) {
		errs = append(errs, "Please select a valid service type")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// FormatIndianPhone normalizes arbitrary input to the canonical
// "+91 XXXXX XXXXX" shape. Formatting is idempotent: reformatting its own
// output, complete or partial, returns the same string.
func FormatIndianPhone(input string) string {
	trimmed := strings.TrimSpace(input)

	// A "+91" rendering marks the country code explicitly; drop it before
	// counting digits so a partial number is not misread as starting with 91.
	if strings.HasPrefix(trimmed, "+91") {
		trimmed = trimmed[3:]
	}
	digits := stripNonDigits(trimmed)

	// Drop a bare leading country code when a full subscriber number follows it.
	if strings.HasPrefix(digits, "91") && len(digits) > 10 {
		digits = digits[2:]
	}
	if len(digits) > 10 {
		digits = digits[:10]
	}

	formatted := "+91 "
	if len(digits) > 0 {
		formatted += digits[:min(5, len(digits))]
		if len(digits) > 5 {
			formatted += " " + digits[5:]
		}
	}
	return formatted
}

// IsPhoneComplete reports whether the value holds a full 10-digit number
// under country code 91.
func IsPhoneComplete(phone string) bool {
	digits := stripNonDigits(phone)
	return len(digits) == 12 && strings.HasPrefix(digits, "91")
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
