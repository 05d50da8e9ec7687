// Package validation implements the pattern library, the field/step rule
// engine, and the per-keystroke input formatters. Everything here is pure:
// safe to call on every keystroke, no side effects, no stored state.
package validation

import (
	"regexp"

	"udyam/internal/domain"
)

// Rule is one category's authoritative validation constraints with its fixed
// failure message. Process-lifetime constant.
type Rule struct {
	// Pattern is nil for presence-only and boolean rules.
	Pattern *regexp.Regexp
	// Message is returned verbatim on pattern mismatch; never generated.
	Message string
	// RequiredMessage is returned when a required value is empty.
	RequiredMessage string
	Required        bool
	// Length bounds are enforced only when their message is set; patterns
	// already pin the length for fixed-width identifiers.
	MinLength  int
	MinMessage string
	MaxLength  int
	MaxMessage string
	// Boolean rules (consent) require the value to be strictly true.
	Boolean bool
	// CaseFold normalizes alphabetic identifiers to upper case before the
	// pattern test. Numeric categories match digits exactly.
	CaseFold bool
	// RejectRepeated refuses all-zero and all-one values even when the
	// pattern matches (anti-placeholder rule).
	RejectRepeated  bool
	RepeatedMessage string
}

var (
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	otpPattern     = regexp.MustCompile(`^[0-9]{6}$`)
	namePattern    = regexp.MustCompile(`^[\p{L}\p{M}\s.'’-]+$`)
)

// rules keys every known category to its rule. Categories absent here are
// validated as presence-only.
var rules = map[domain.Category]Rule{
	domain.CategoryAadhaar: {
		Pattern:         aadhaarPattern,
		Message:         "Aadhaar number must be 12 digits",
		RequiredMessage: "Aadhaar number is required",
		Required:        true,
		MinLength:       12,
		MaxLength:       12,
		RejectRepeated:  true,
		RepeatedMessage: repeatedAadhaarMessage,
	},
	domain.CategoryEntrepreneurName: {
		Pattern:         namePattern,
		Message:         "Name can only contain letters, spaces, and common punctuation",
		RequiredMessage: "Entrepreneur name is required",
		Required:        true,
		MinLength:       2,
		MinMessage:      "Name must be at least 2 characters",
		MaxLength:       100,
		MaxMessage:      "Name must not exceed 100 characters",
	},
	domain.CategoryConsent: {
		Message:         "Consent must be given",
		RequiredMessage: "Consent must be given",
		Required:        true,
		Boolean:         true,
	},
	domain.CategoryPAN: {
		Pattern:         panPattern,
		Message:         "Invalid PAN number format",
		RequiredMessage: "PAN number is required",
		Required:        true,
		MinLength:       10,
		MaxLength:       10,
		CaseFold:        true,
	},
	domain.CategoryOTP: {
		Pattern:         otpPattern,
		Message:         "OTP must be 6 digits",
		RequiredMessage: "OTP is required",
		Required:        false, // present-if-supplied at step 2
		MinLength:       6,
		MaxLength:       6,
	},
}

// repeatedAadhaarMessage rejects placeholder identifiers that satisfy the
// digit-count pattern.
const repeatedAadhaarMessage = "Invalid Aadhaar number"

// RuleFor returns the category's rule. For categories without a library
// entry the zero Rule is returned, which validates as presence-only.
func RuleFor(category domain.Category) (Rule, bool) {
	r, ok := rules[category]
	return r, ok
}
