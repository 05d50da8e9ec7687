// Package schema turns raw extracted fields into the versioned step schema
// the UI and the rule engine consume.
package schema

import (
	"sort"

	"udyam/internal/domain"
	"udyam/internal/validation"
	dErrors "udyam/pkg/domain-errors"
)

// stepNames carries the workflow titles the portal uses for each stage.
var stepNames = map[int]string{
	1: "aadhaar_verification",
	2: "pan_verification",
}

// Normalize groups classified fields by workflow step, preserving document
// order within a step, drops uncategorized noise, dedupes names, and attaches
// the pattern library's authoritative constraints per field. The result is a
// fresh value every call; callers may publish it wholesale.
func Normalize(fields []domain.FieldDescriptor) ([]domain.StepSchema, error) {
	grouped := map[int][]domain.FieldDescriptor{}
	seen := map[int]map[string]bool{}

	for _, field := range fields {
		if field.Category == domain.CategoryUncategorized || field.Step < 1 {
			continue
		}
		if seen[field.Step] == nil {
			seen[field.Step] = map[string]bool{}
		}
		if seen[field.Step][field.Name] {
			continue
		}
		seen[field.Step][field.Name] = true
		grouped[field.Step] = append(grouped[field.Step], attachRule(field))
	}

	if len(grouped) == 0 {
		return nil, dErrors.New(dErrors.CodeUnavailable, "extraction produced no recognizable form fields")
	}

	indices := make([]int, 0, len(grouped))
	for idx := range grouped {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	// Renumber contiguously from 1 so a page missing a whole stage still
	// yields a well-formed schema.
	steps := make([]domain.StepSchema, 0, len(indices))
	for i, original := range indices {
		stepIndex := i + 1
		name := stepNames[original]
		if name == "" {
			name = stepNames[stepIndex]
		}
		fields := grouped[original]
		for j := range fields {
			fields[j].Step = stepIndex
		}
		steps = append(steps, domain.StepSchema{
			StepIndex: stepIndex,
			Name:      name,
			Fields:    fields,
		})
	}
	return steps, nil
}

// attachRule overlays the pattern library's constraints onto what the markup
// declared. The library wins where the markup is silent; a required flag from
// either source sticks.
func attachRule(field domain.FieldDescriptor) domain.FieldDescriptor {
	rule, ok := validation.RuleFor(field.Category)
	if !ok {
		return field
	}
	field.Required = field.Required || rule.Required
	if field.RawPattern == nil && rule.Pattern != nil {
		pattern := rule.Pattern.String()
		field.RawPattern = &pattern
	}
	if field.MaxLength == nil && rule.MaxLength > 0 {
		max := rule.MaxLength
		field.MaxLength = &max
	}
	return field
}
