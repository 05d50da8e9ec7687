package validation

import (
	"strings"

	"udyam/internal/domain"
)

// Formatters reshape raw keystroke input before storage. They never reject:
// validation runs separately on the stored value. All of them are idempotent.

// FormatAadhaar strips non-digits and truncates to 12.
func FormatAadhaar(raw string) string {
	return digitsOnly(raw, 12)
}

// FormatOTP strips non-digits and truncates to 6.
func FormatOTP(raw string) string {
	return digitsOnly(raw, 6)
}

// FormatPAN upper-cases and truncates to the 10-character PAN length.
// Trimmed again after the cut: truncation can expose trailing whitespace,
// which would break idempotence.
func FormatPAN(raw string) string {
	up := strings.ToUpper(strings.TrimSpace(raw))
	runes := []rune(up)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	return strings.TrimSpace(string(runes))
}

// DisplayAadhaar renders a stored Aadhaar value in XXXX XXXX XXXX groups for
// display. It re-strips first, so feeding its own output back is a no-op.
func DisplayAadhaar(raw string) string {
	digits := digitsOnly(raw, 12)
	switch {
	case len(digits) > 8:
		return digits[:4] + " " + digits[4:8] + " " + digits[8:]
	case len(digits) > 4:
		return digits[:4] + " " + digits[4:]
	default:
		return digits
	}
}

// Format dispatches to the category's formatter. Categories without one
// return the input unchanged.
func Format(category domain.Category, raw string) string {
	switch category {
	case domain.CategoryAadhaar:
		return FormatAadhaar(raw)
	case domain.CategoryOTP:
		return FormatOTP(raw)
	case domain.CategoryPAN:
		return FormatPAN(raw)
	default:
		return raw
	}
}

func digitsOnly(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == max {
				break
			}
		}
	}
	return b.String()
}
