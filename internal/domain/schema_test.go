package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryUnknownFoldsToUncategorized(t *testing.T) {
	var f FieldDescriptor
	payload := `{"name":"gstin","label":"GSTIN","kind":"text","required":false,` +
		`"maxLength":null,"rawPattern":null,"category":"gstin","step":3}`
	require.NoError(t, json.Unmarshal([]byte(payload), &f))
	assert.Equal(t, CategoryUncategorized, f.Category)
}

func TestCategoryKnownValuesSurvive(t *testing.T) {
	for _, cat := range []Category{
		CategoryAadhaar, CategoryEntrepreneurName, CategoryConsent,
		CategoryPAN, CategoryOTP, CategoryUncategorized,
	} {
		var got Category
		payload, err := json.Marshal(cat)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, cat, got)
	}
}

func TestCategoryStep(t *testing.T) {
	assert.Equal(t, 1, CategoryAadhaar.Step())
	assert.Equal(t, 1, CategoryEntrepreneurName.Step())
	assert.Equal(t, 1, CategoryConsent.Step())
	assert.Equal(t, 2, CategoryPAN.Step())
	assert.Equal(t, 2, CategoryOTP.Step())
	assert.Equal(t, 0, CategoryUncategorized.Step())
}

func TestStepSchemaJSONShape(t *testing.T) {
	max := 12
	pattern := "^[0-9]{12}$"
	step := StepSchema{
		StepIndex: 1,
		Name:      "aadhaar_verification",
		Fields: []FieldDescriptor{{
			Name:       "aadhaarNumber",
			Label:      "Aadhaar Number",
			Kind:       KindText,
			Required:   true,
			MaxLength:  &max,
			RawPattern: &pattern,
			Category:   CategoryAadhaar,
			Step:       1,
		}},
	}

	payload, err := json.Marshal(step)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.Equal(t, float64(1), raw["stepIndex"])
	fields := raw["fields"].([]any)
	field := fields[0].(map[string]any)
	for _, key := range []string{"name", "label", "kind", "required", "maxLength", "rawPattern", "category", "step"} {
		_, ok := field[key]
		assert.True(t, ok, key)
	}
}

func TestValuesAccessors(t *testing.T) {
	v := Values{"a": "x", "b": true, "c": 3}
	assert.Equal(t, "x", v.String("a"))
	assert.Equal(t, "", v.String("b"))
	assert.True(t, v.Bool("b"))
	assert.False(t, v.Bool("a"))
	assert.False(t, v.Bool("missing"))
}
