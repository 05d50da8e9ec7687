// Package domain holds the shared model types for the registration pipeline.
// Leaf package: everything else imports it, it imports nothing of ours.
package domain

import "encoding/json"

// Category is the semantic role assigned to a form field during extraction.
// It is decided once, in fixed priority order, and every downstream component
// switches over it instead of re-matching label text.
type Category string

const (
	CategoryAadhaar          Category = "aadhaar"
	CategoryEntrepreneurName Category = "entrepreneur_name"
	CategoryConsent          Category = "consent"
	CategoryPAN              Category = "pan"
	CategoryOTP              Category = "otp"
	CategoryUncategorized    Category = "uncategorized"
)

// knownCategories gates decoding; anything else folds to uncategorized so a
// newer producer cannot break an older consumer.
var knownCategories = map[Category]bool{
	CategoryAadhaar:          true,
	CategoryEntrepreneurName: true,
	CategoryConsent:          true,
	CategoryPAN:              true,
	CategoryOTP:              true,
	CategoryUncategorized:    true,
}

// UnmarshalJSON folds unknown category values to CategoryUncategorized.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	cat := Category(s)
	if !knownCategories[cat] {
		cat = CategoryUncategorized
	}
	*c = cat
	return nil
}

// Step returns the workflow step a category belongs to, 0 when it has none.
func (c Category) Step() int {
	switch c {
	case CategoryAadhaar, CategoryEntrepreneurName, CategoryConsent:
		return 1
	case CategoryPAN, CategoryOTP:
		return 2
	default:
		return 0
	}
}

// FieldKind is the interactive element kind kept after extraction. Hidden and
// submit inputs never make it into a descriptor.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindCheckbox FieldKind = "checkbox"
	KindSelect   FieldKind = "select"
)

// FieldDescriptor describes one extracted form field. Immutable once emitted
// for a given extraction run.
type FieldDescriptor struct {
	Name       string    `json:"name"`
	Label      string    `json:"label"`
	Kind       FieldKind `json:"kind"`
	Required   bool      `json:"required"`
	MaxLength  *int      `json:"maxLength"`
	RawPattern *string   `json:"rawPattern"`
	Category   Category  `json:"category"`
	Step       int       `json:"step"`
}

// StepSchema is one workflow step's ordered field set. Field names are unique
// within a step; step indices are contiguous starting at 1. Replaced wholesale
// on re-extraction, never mutated in place.
type StepSchema struct {
	StepIndex int               `json:"stepIndex"`
	Name      string            `json:"name"`
	Fields    []FieldDescriptor `json:"fields"`
}

// Field looks up a descriptor by name, nil when the step has no such field.
func (s StepSchema) Field(name string) *FieldDescriptor {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}
