package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONString_RequirementsList_Valid(t *testing.T) {
	doc := `["2+ years medical office experience", "EMR/EHR system proficiency"]`

	err := ValidateJSONString(RequirementsList, doc)
	assert.NoError(t, err)
}

func TestValidateJSONString_RequirementsList_EmptyItem(t *testing.T) {
	doc := `["EMR proficiency", ""]`

	err := ValidateJSONString(RequirementsList, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_RequirementsList_WrongType(t *testing.T) {
	doc := `{"requirements": ["EMR proficiency"]}`

	err := ValidateJSONString(RequirementsList, doc)
	require.Error(t, err)

	_, ok := err.(*ValidationError)
	assert.True(t, ok, "error should be ValidationError type")
}

func TestValidateJSONString_QuestionCategorization_Valid(t *testing.T) {
	doc := `[{"id": "q1", "category": "Technical Skills", "subcategory": "EMR Systems", "importance": 8}]`

	err := ValidateJSONString(QuestionCategorization, doc)
	assert.NoError(t, err)
}

func TestValidateJSONString_QuestionCategorization_MissingField(t *testing.T) {
	doc := `[{"id": "q1", "subcategory": "EMR Systems"}]`

	err := ValidateJSONString(QuestionCategorization, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_QuestionCategorization_ImportanceOutOfRange(t *testing.T) {
	doc := `[{"id": "q1", "category": "Technical Skills", "importance": 11}]`

	err := ValidateJSONString(QuestionCategorization, doc)
	require.Error(t, err)
}

func TestValidateJSONString_InvalidSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `[]`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "0.id", Message: "is required"},
	}}

	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "0.id")
}
