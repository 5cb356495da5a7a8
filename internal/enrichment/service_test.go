package enrichment

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-scripter/internal/llm"
	"github.com/jonathan/interview-scripter/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "[]", nil
}

func (m *MockLLMClient) GetModel(_ llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func TestExtractRequirements_Success(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			assert.Contains(t, prompt, "Medical assistant needed")
			return `["2+ years medical office experience", "EMR/EHR system proficiency"]`, nil
		},
	}

	service := NewService(mockClient)
	requirements, err := service.ExtractRequirements(context.Background(), "Medical assistant needed")

	require.NoError(t, err)
	assert.Equal(t, []string{"2+ years medical office experience", "EMR/EHR system proficiency"}, requirements)
}

func TestExtractRequirements_MarkdownWrapped(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "```json\n[\"EMR proficiency\"]\n```", nil
		},
	}

	service := NewService(mockClient)
	requirements, err := service.ExtractRequirements(context.Background(), "job text")

	require.NoError(t, err)
	assert.Equal(t, []string{"EMR proficiency"}, requirements)
}

func TestExtractRequirements_PreambleBeforeArray(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `Here are the requirements: ["EMR proficiency", "CPR certification"]`, nil
		},
	}

	service := NewService(mockClient)
	requirements, err := service.ExtractRequirements(context.Background(), "job text")

	require.NoError(t, err)
	assert.Len(t, requirements, 2)
}

func TestExtractRequirements_APIError(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("rate limited")
		},
	}

	service := NewService(mockClient)
	_, err := service.ExtractRequirements(context.Background(), "job text")

	require.Error(t, err)
	var apiErr *APICallError
	assert.True(t, errors.As(err, &apiErr))
}

func TestExtractRequirements_NotAnArray(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"requirements": ["EMR proficiency"]}`, nil
		},
	}

	service := NewService(mockClient)
	_, err := service.ExtractRequirements(context.Background(), "job text")

	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestExtractRequirements_EmptyArray(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `[]`, nil
		},
	}

	service := NewService(mockClient)
	_, err := service.ExtractRequirements(context.Background(), "job text")

	require.Error(t, err)
	var emptyErr *EmptyResultError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestDefineRequirement_Success(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			assert.Contains(t, prompt, "Strong communication skills")
			assert.Contains(t, prompt, "medical")
			return "  Explains billing codes to 20-30 patients daily with 95% first-call resolution.  ", nil
		},
	}

	service := NewService(mockClient)
	def, err := service.DefineRequirement(context.Background(), "Strong communication skills", "medical")

	require.NoError(t, err)
	assert.Equal(t, "Explains billing codes to 20-30 patients daily with 95% first-call resolution.", def.Definition)
	assert.Equal(t, types.KSAOSkills, def.Category)
	assert.Len(t, def.Suggestions, 3)
}

func TestDefineRequirement_DefaultsToGeneralIndustry(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			assert.Contains(t, prompt, "general")
			return "A concrete definition.", nil
		},
	}

	service := NewService(mockClient)
	_, err := service.DefineRequirement(context.Background(), "Attention to detail", "")
	require.NoError(t, err)
}

func TestDefineRequirement_EmptyResponse(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateContentFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "   ", nil
		},
	}

	service := NewService(mockClient)
	_, err := service.DefineRequirement(context.Background(), "Team player", "general")

	require.Error(t, err)
	var emptyErr *EmptyResultError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestDefinitionSuggestions_PerCategory(t *testing.T) {
	tests := []struct {
		category types.KSAOCategory
		contains string
	}{
		{types.KSAOKnowledge, "depth of knowledge"},
		{types.KSAOSkills, "tools or software"},
		{types.KSAOAbilities, "performance metrics"},
		{types.KSAOOther, "certifications or licenses"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			suggestions := DefinitionSuggestions(tt.category)
			require.Len(t, suggestions, 3)

			found := false
			for _, s := range suggestions {
				if strings.Contains(strings.ToLower(s), tt.contains) {
					found = true
				}
			}
			assert.True(t, found, "expected a suggestion mentioning %q", tt.contains)
		})
	}
}

func sampleQuestions() []types.InterviewQuestion {
	return []types.InterviewQuestion{
		{ID: "req-1-q1", Question: "Tell me about a time you entered high volumes of EMR data.", Kind: types.KindRequirement, IsSTAR: true, FollowUps: []string{"What was the volume?"}},
		{ID: "req-2-q1", Question: "How do you keep learning new billing systems?", Kind: types.KindRequirement, IsSTAR: true, FollowUps: []string{"Give an example."}},
		{ID: "nature-1", Question: "What does your ideal workday look like?", Kind: types.KindNatureDiscovery},
	}
}

func TestCategorizeQuestions_AnnotatesAndReorders(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `[
				{"id": "req-1-q1", "category": "Technical Skills", "subcategory": "EMR Systems", "importance": 9},
				{"id": "req-2-q1", "category": "Growth & Learning", "subcategory": "Adaptability", "importance": 6},
				{"id": "nature-1", "category": "Soft Skills & Culture Fit", "subcategory": "Work Style", "importance": 7}
			]`, nil
		},
	}

	service := NewService(mockClient)
	questions, err := service.CategorizeQuestions(context.Background(), sampleQuestions())

	require.NoError(t, err)
	require.Len(t, questions, 3)

	// Reordered by category rank: Technical, Soft Skills, Growth.
	assert.Equal(t, "req-1-q1", questions[0].ID)
	assert.Equal(t, "nature-1", questions[1].ID)
	assert.Equal(t, "req-2-q1", questions[2].ID)

	assert.Equal(t, "Technical Skills", questions[0].Category)
	assert.Equal(t, "EMR Systems", questions[0].Subcategory)
	assert.Equal(t, 9, questions[0].Importance)
}

func TestCategorizeQuestions_PositionalIDs(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `[
				{"id": "q1", "category": "Technical Skills", "importance": 8},
				{"id": "q2", "category": "Growth & Learning", "importance": 5},
				{"id": "q3", "category": "Soft Skills & Culture Fit", "importance": 6}
			]`, nil
		},
	}

	service := NewService(mockClient)
	questions, err := service.CategorizeQuestions(context.Background(), sampleQuestions())

	require.NoError(t, err)
	assert.Equal(t, "Technical Skills", questions[0].Category)
	assert.Equal(t, "General", questions[0].Subcategory)
}

func TestCategorizeQuestions_MissingAssignmentGetsDefaults(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `[{"id": "req-1-q1", "category": "Technical Skills", "importance": 9}]`, nil
		},
	}

	service := NewService(mockClient)
	questions, err := service.CategorizeQuestions(context.Background(), sampleQuestions())

	require.NoError(t, err)

	var unassigned *types.InterviewQuestion
	for i := range questions {
		if questions[i].ID == "nature-1" {
			unassigned = &questions[i]
		}
	}
	require.NotNil(t, unassigned)
	assert.Equal(t, "Other", unassigned.Category)
	assert.Equal(t, "General", unassigned.Subcategory)
	assert.Equal(t, 5, unassigned.Importance)
}

func TestCategorizeQuestions_NeverMutatesText(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `[{"id": "req-1-q1", "category": "Technical Skills", "importance": 9}]`, nil
		},
	}

	original := sampleQuestions()
	service := NewService(mockClient)
	questions, err := service.CategorizeQuestions(context.Background(), sampleQuestions())

	require.NoError(t, err)
	for _, q := range questions {
		for _, o := range original {
			if o.ID == q.ID {
				assert.Equal(t, o.Question, q.Question)
				assert.Equal(t, o.FollowUps, q.FollowUps)
				assert.Equal(t, o.IsSTAR, q.IsSTAR)
			}
		}
	}
}

func TestCategorizeQuestions_FailureReturnsInputUnchanged(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}

	input := sampleQuestions()
	service := NewService(mockClient)
	questions, err := service.CategorizeQuestions(context.Background(), input)

	require.Error(t, err)
	assert.Equal(t, input, questions)
}

func TestCategorizeQuestions_ObjectPayloadRejected(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"categories": [{"id": "req-1-q1", "category": "Technical Skills", "importance": 9}]}`, nil
		},
	}

	input := sampleQuestions()
	service := NewService(mockClient)
	questions, err := service.CategorizeQuestions(context.Background(), input)

	require.Error(t, err)
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, input, questions)
}

func TestCategorizeQuestions_EmptyInput(t *testing.T) {
	service := NewService(&MockLLMClient{})
	questions, err := service.CategorizeQuestions(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, questions)
}
