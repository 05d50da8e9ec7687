package schema

import "udyam/internal/domain"

// DefaultSteps is the canonical two-step schema matching the wire contract's
// field names. The step gate always validates against it; the scraped schema
// feeds the UI and may use the portal's own field names.
func DefaultSteps() []domain.StepSchema {
	steps, err := Normalize([]domain.FieldDescriptor{
		{Name: "aadhaarNumber", Label: "Aadhaar Number / आधार संख्या", Kind: domain.KindText,
			Category: domain.CategoryAadhaar, Step: 1},
		{Name: "entrepreneurName", Label: "Name of Entrepreneur / उद्यमी का नाम", Kind: domain.KindText,
			Category: domain.CategoryEntrepreneurName, Step: 1},
		{Name: "consentGiven", Label: "I agree to the consent terms", Kind: domain.KindCheckbox,
			Category: domain.CategoryConsent, Step: 1},
		{Name: "panNumber", Label: "PAN Number", Kind: domain.KindText,
			Category: domain.CategoryPAN, Step: 2},
		{Name: "otp", Label: "OTP", Kind: domain.KindText,
			Category: domain.CategoryOTP, Step: 2},
	})
	if err != nil {
		// Unreachable: the canonical descriptor list always normalizes.
		panic(err)
	}
	return steps
}

// StepByIndex returns the schema for one step, false when absent.
func StepByIndex(steps []domain.StepSchema, index int) (domain.StepSchema, bool) {
	for _, s := range steps {
		if s.StepIndex == index {
			return s, true
		}
	}
	return domain.StepSchema{}, false
}
