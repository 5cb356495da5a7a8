package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWellFormed(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"Tell me about your experience with EMR systems.", true},
		{"Walk me through your busiest day.", true},
		{"What was your approach to onboarding?", true},
		{"Do you have EMR experience?", false},
		{"Can you work weekends?", false},
		{"Are you comfortable with phones?", false},
		{"Were you familiar with HIPAA?", false},
		{"Is you available Monday?", false},
		{"Did your team use Epic?", true}, // "did you" requires "you" as the next word
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWellFormed(tt.question))
		})
	}
}

func TestMatchesSTARPattern(t *testing.T) {
	tests := []struct {
		question string
		want     bool
	}{
		{"Tell me about a time you handled an upset patient.", true},
		{"Describe your scheduling process.", true},
		{"Walk me through a recent example.", true},
		{"Give me an example of meeting a deadline.", true},
		{"Explain how you prioritize.", true},
		{"What was your process for closing the day?", true},
		{"What is your greatest weakness?", false},
		{"Do you have EMR experience?", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSTARPattern(tt.question))
		})
	}
}

func TestTemplateBankQuestionsAreWellFormed(t *testing.T) {
	for category, templates := range templateBank {
		for _, tmpl := range templates {
			assert.True(t, IsWellFormed(tmpl.MainQuestion),
				"%s template %q fails the well-formed check", category, tmpl.MainQuestion)
		}
	}
	for _, q := range NatureDiscoveryQuestions {
		assert.True(t, IsWellFormed(q.Question))
	}
}
