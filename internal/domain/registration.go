package domain

import "time"

// Values holds submitted form values keyed by field name. Consent-style
// fields carry booleans, everything else strings; validation is responsible
// for type checks, storage keeps what it was given.
type Values map[string]any

// String returns the trimmed-nothing string form of a value; non-strings
// yield "".
func (v Values) String(name string) string {
	if s, ok := v[name].(string); ok {
		return s
	}
	return ""
}

// Bool reports whether a value is strictly the boolean true.
func (v Values) Bool(name string) bool {
	b, ok := v[name].(bool)
	return ok && b
}

// ErrorMap carries per-field validation messages. Recomputed on every
// validation pass, never patched incrementally.
type ErrorMap map[string]string

// GeneralErrorKey is the ErrorMap key for errors not tied to a single field.
const GeneralErrorKey = "general"

// RegistrationStep1 is the persisted outcome of a successful step-1 submit.
// Its ID doubles as the cross-step token step 2 must present.
type RegistrationStep1 struct {
	ID               string    `json:"id"`
	AadhaarNumber    string    `json:"aadhaarNumber"`
	EntrepreneurName string    `json:"entrepreneurName"`
	ConsentGiven     bool      `json:"consentGiven"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RegistrationStep2 links a PAN registration to its step-1 record.
type RegistrationStep2 struct {
	ID        string    `json:"id"`
	Step1ID   string    `json:"registrationStep1Id"`
	PANNumber string    `json:"panNumber"`
	Validated bool      `json:"validated"`
	CreatedAt time.Time `json:"createdAt"`
}

// Location is the advisory PIN-code lookup result. It never gates validation.
type Location struct {
	City        string               `json:"city"`
	State       string               `json:"state"`
	Country     string               `json:"country"`
	Area        string               `json:"area"`
	Pincode     string               `json:"pincode"`
	Suggestions []LocationSuggestion `json:"suggestions,omitempty"`
}

// LocationSuggestion is one candidate post office for a PIN code.
type LocationSuggestion struct {
	Name     string `json:"name"`
	District string `json:"district"`
	State    string `json:"state"`
}
