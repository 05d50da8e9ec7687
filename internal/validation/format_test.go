package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAadhaar(t *testing.T) {
	assert.Equal(t, "123456789012", FormatAadhaar("1234 5678 9012"))
	assert.Equal(t, "123456789012", FormatAadhaar("12345678901234"))
	assert.Equal(t, "1234", FormatAadhaar("12a3b4"))
	assert.Equal(t, "", FormatAadhaar("no digits"))
}

func TestFormatOTP(t *testing.T) {
	assert.Equal(t, "123456", FormatOTP("12-34-56"))
	assert.Equal(t, "123456", FormatOTP("1234567890"))
}

func TestFormatPAN(t *testing.T) {
	assert.Equal(t, "ABCDE1234F", FormatPAN("abcde1234f"))
	assert.Equal(t, "ABCDE1234F", FormatPAN(" abcde1234fextra"))
	// Truncation must not leave trailing whitespace behind.
	assert.Equal(t, "1234 5678", FormatPAN("1234 5678 9012"))
}

func TestFormattersIdempotent(t *testing.T) {
	inputs := []string{"", "1234 5678 9012", "abcde1234f", "x1y2z3", "    ", "999999999999999", "१२३"}
	for _, in := range inputs {
		assert.Equal(t, FormatAadhaar(in), FormatAadhaar(FormatAadhaar(in)), in)
		assert.Equal(t, FormatOTP(in), FormatOTP(FormatOTP(in)), in)
		assert.Equal(t, FormatPAN(in), FormatPAN(FormatPAN(in)), in)
		assert.Equal(t, DisplayAadhaar(in), DisplayAadhaar(DisplayAadhaar(in)), in)
	}
}

func TestDisplayAadhaar(t *testing.T) {
	assert.Equal(t, "1234 5678 9012", DisplayAadhaar("123456789012"))
	assert.Equal(t, "1234 5678", DisplayAadhaar("12345678"))
	assert.Equal(t, "1234", DisplayAadhaar("1234"))
	assert.Equal(t, "1234 5", DisplayAadhaar("12345"))
}
