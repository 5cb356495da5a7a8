package scoring

import (
	"testing"

	"github.com/jonathan/interview-scripter/internal/types"
	"github.com/stretchr/testify/assert"
)

func testScript() types.InterviewScript {
	return types.InterviewScript{
		Requirements: []types.Requirement{
			{ID: "mh", Text: "EMR proficiency", FinalClassification: types.ClassMustHave},
			{ID: "wt", Text: "Scheduling", FinalClassification: types.ClassWillTrain},
		},
		Questions: []types.InterviewQuestion{
			{ID: "q1", RequirementID: "mh", Kind: types.KindRequirement},
			{ID: "q2", RequirementID: "wt", Kind: types.KindRequirement},
			{ID: "q3", Kind: types.KindNatureDiscovery},
		},
	}
}

func respond(scores map[string]types.Score) []types.InterviewResponse {
	var out []types.InterviewResponse
	for id, score := range scores {
		out = append(out, types.InterviewResponse{QuestionID: id, Score: score})
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		scores   map[string]types.Score
		validate func(*testing.T, Summary)
	}{
		{
			name: "All pass",
			scores: map[string]types.Score{
				"q1": types.ScorePass, "q2": types.ScorePass, "q3": types.ScorePass,
			},
			validate: func(t *testing.T, s Summary) {
				assert.Equal(t, types.ScorePass, s.Overall)
				assert.Equal(t, 1, s.MustHave.Pass)
				assert.Equal(t, 1, s.WillTrain.Pass)
				assert.Equal(t, 1, s.Discovery.Pass)
				assert.Zero(t, s.Unanswered)
			},
		},
		{
			name: "Failed must-have fails overall",
			scores: map[string]types.Score{
				"q1": types.ScoreFail, "q2": types.ScorePass, "q3": types.ScorePass,
			},
			validate: func(t *testing.T, s Summary) {
				assert.Equal(t, types.ScoreFail, s.Overall)
				assert.Equal(t, 1, s.MustHave.Fail)
			},
		},
		{
			name: "Failed will-train is only a maybe",
			scores: map[string]types.Score{
				"q1": types.ScorePass, "q2": types.ScoreFail, "q3": types.ScorePass,
			},
			validate: func(t *testing.T, s Summary) {
				assert.Equal(t, types.ScoreMaybe, s.Overall)
			},
		},
		{
			name: "Maybe scores give a maybe",
			scores: map[string]types.Score{
				"q1": types.ScoreMaybe, "q2": types.ScorePass, "q3": types.ScorePass,
			},
			validate: func(t *testing.T, s Summary) {
				assert.Equal(t, types.ScoreMaybe, s.Overall)
				assert.Equal(t, 1, s.MustHave.Maybe)
			},
		},
		{
			name:   "Unanswered questions block a pass",
			scores: map[string]types.Score{"q1": types.ScorePass},
			validate: func(t *testing.T, s Summary) {
				assert.Equal(t, types.ScoreMaybe, s.Overall)
				assert.Equal(t, 2, s.Unanswered)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Summarize(testScript(), respond(tt.scores)))
		})
	}
}

func TestSummarize_EmptyScript(t *testing.T) {
	s := Summarize(types.InterviewScript{}, nil)
	assert.Equal(t, types.ScoreMaybe, s.Overall)
	assert.Zero(t, s.MustHave.Total())
}
