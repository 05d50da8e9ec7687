package validation

import (
	"strings"

	"udyam/internal/domain"
)

// ValidateField evaluates one value against its category's rule. At most one
// message is returned: the first constraint that fails, using the library's
// fixed wording. Categories without a library entry validate as
// presence-only.
func ValidateField(category domain.Category, value any) []string {
	rule, ok := RuleFor(category)
	if !ok {
		rule = Rule{Required: true}
	}
	return validateValue(rule, string(category), value)
}

// ValidateStep runs ValidateField for every field in the step schema against
// the submitted values. Value keys absent from the schema are ignored, so
// one step's errors never leak into another. The returned map is empty iff
// every field passes.
func ValidateStep(step domain.StepSchema, values domain.Values) domain.ErrorMap {
	errs := domain.ErrorMap{}
	for _, field := range step.Fields {
		rule, ok := RuleFor(field.Category)
		if !ok {
			rule = Rule{Required: field.Required}
		}
		if msgs := validateValue(rule, field.Label, values[field.Name]); len(msgs) > 0 {
			errs[field.Name] = msgs[0]
		}
	}
	return errs
}

func validateValue(rule Rule, label string, value any) []string {
	if rule.Boolean {
		if b, ok := value.(bool); !ok || !b {
			return []string{rule.Message}
		}
		return nil
	}

	s, _ := value.(string)
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		if rule.Required {
			return []string{requiredMessage(rule, label)}
		}
		return nil
	}

	if rule.CaseFold {
		trimmed = strings.ToUpper(trimmed)
	}
	if rule.MinMessage != "" && len([]rune(trimmed)) < rule.MinLength {
		return []string{rule.MinMessage}
	}
	if rule.MaxMessage != "" && len([]rune(trimmed)) > rule.MaxLength {
		return []string{rule.MaxMessage}
	}
	if rule.Pattern != nil && !rule.Pattern.MatchString(trimmed) {
		return []string{rule.Message}
	}
	if rule.RejectRepeated && isPlaceholder(trimmed) {
		return []string{rule.RepeatedMessage}
	}
	return nil
}

func requiredMessage(rule Rule, label string) string {
	if rule.RequiredMessage != "" {
		return rule.RequiredMessage
	}
	return label + " is required"
}

// isPlaceholder reports whether s is all zeros or all ones. Those two pass
// the 12-digit pattern but are placeholders, not identifiers; every other
// value, "999999999999" included, is left to the pattern alone.
func isPlaceholder(s string) bool {
	if len(s) < 2 || (s[0] != '0' && s[0] != '1') {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
