// Package extractor discovers form fields in a rendered markup tree and
// classifies them into semantic categories. Extraction is a pure pass over an
// immutable snapshot: the same document always yields the same descriptors.
package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"udyam/internal/domain"
)

const maxLabelLen = 100

// Extract walks every interactive element in document order and emits one
// FieldDescriptor per registrable field. Hidden and submit inputs, and
// elements with no derivable label, are skipped: they carry no semantics a
// user fills in.
func Extract(doc *goquery.Document) []domain.FieldDescriptor {
	var fields []domain.FieldDescriptor
	doc.Find("input, select, textarea").Each(func(index int, el *goquery.Selection) {
		inputType := strings.ToLower(el.AttrOr("type", ""))
		if inputType == "hidden" || inputType == "submit" {
			return
		}

		label := deriveLabel(doc, el, index)
		if strings.TrimSpace(label) == "" {
			return
		}

		kind := kindOf(el, inputType)
		category := Classify(label, kind)

		name := el.AttrOr("name", "")
		if name == "" {
			name = el.AttrOr("id", "")
		}
		if name == "" {
			name = fmt.Sprintf("field_%d", index)
		}

		fields = append(fields, domain.FieldDescriptor{
			Name:       name,
			Label:      label,
			Kind:       kind,
			Required:   isRequired(el, label),
			MaxLength:  maxLength(el),
			RawPattern: rawPattern(el),
			Category:   category,
			Step:       category.Step(),
		})
	})
	return fields
}

// deriveLabel tries, in priority order: an explicitly associated label
// element, the placeholder attribute, the first line of the nearest enclosing
// cell or container's text, and finally a positional fallback.
func deriveLabel(doc *goquery.Document, el *goquery.Selection, index int) string {
	if id, ok := el.Attr("id"); ok && id != "" {
		if lbl := doc.Find(`label[for="` + id + `"]`).First(); lbl.Length() > 0 {
			if text := strings.TrimSpace(lbl.Text()); text != "" {
				return truncate(text)
			}
		}
	}
	if wrapping := el.Closest("label"); wrapping.Length() > 0 {
		if text := strings.TrimSpace(wrapping.Text()); text != "" {
			return truncate(text)
		}
	}
	if placeholder := strings.TrimSpace(el.AttrOr("placeholder", "")); placeholder != "" {
		return truncate(placeholder)
	}
	if text := containerText(el); text != "" {
		return truncate(text)
	}
	return fmt.Sprintf("Field %d", index)
}

// containerText returns the first non-empty line of the nearest td, falling
// back to the nearest div, then the direct parent.
func containerText(el *goquery.Selection) string {
	for _, container := range []*goquery.Selection{el.Closest("td"), el.Closest("div"), el.Parent()} {
		if container.Length() == 0 {
			continue
		}
		for _, line := range strings.Split(container.Text(), "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// Classify assigns the semantic category by case-insensitive keyword match,
// bilingual (Latin and Devanagari). Priority order is fixed and significant:
// a labeled checkbox mentioning Aadhaar is still a consent field.
func Classify(label string, kind domain.FieldKind) domain.Category {
	lower := strings.ToLower(label)
	switch {
	case kind == domain.KindCheckbox,
		strings.Contains(lower, "consent"),
		strings.Contains(lower, "agree"):
		return domain.CategoryConsent
	case strings.Contains(lower, "aadhaar"), strings.Contains(label, "आधार"):
		return domain.CategoryAadhaar
	case strings.Contains(lower, "entrepreneur"), strings.Contains(label, "उद्यमी"):
		return domain.CategoryEntrepreneurName
	case strings.Contains(lower, "pan"):
		return domain.CategoryPAN
	case strings.Contains(lower, "otp"):
		return domain.CategoryOTP
	default:
		return domain.CategoryUncategorized
	}
}

func kindOf(el *goquery.Selection, inputType string) domain.FieldKind {
	switch {
	case goquery.NodeName(el) == "select":
		return domain.KindSelect
	case inputType == "checkbox":
		return domain.KindCheckbox
	default:
		return domain.KindText
	}
}

// isRequired honors the native attribute and the asterisk convention in
// visible labels.
func isRequired(el *goquery.Selection, label string) bool {
	if _, ok := el.Attr("required"); ok {
		return true
	}
	return strings.Contains(label, "*")
}

func maxLength(el *goquery.Selection) *int {
	raw, ok := el.Attr("maxlength")
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return nil
	}
	return &n
}

func rawPattern(el *goquery.Selection) *string {
	raw, ok := el.Attr("pattern")
	if !ok || raw == "" {
		return nil
	}
	return &raw
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > maxLabelLen {
		return string(runes[:maxLabelLen])
	}
	return s
}
