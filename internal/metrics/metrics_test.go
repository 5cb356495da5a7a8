package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		validate   func(*testing.T, []string)
	}{
		{
			name:       "Volume and percentage",
			definition: "handle 30+ calls daily with 95% satisfaction",
			validate: func(t *testing.T, got []string) {
				assert.Contains(t, got, "95%")
				assert.Contains(t, got, "30+ calls")
			},
		},
		{
			name:       "Scan order puts percentages before volumes regardless of position",
			definition: "process 50 claims while keeping 99% accuracy",
			validate: func(t *testing.T, got []string) {
				require.Len(t, got, 2)
				assert.Equal(t, "99%", got[0])
				assert.Equal(t, "50 claims", got[1])
			},
		},
		{
			name:       "Time frames and rates",
			definition: "respond within 2 hours, 40 per day",
			validate: func(t *testing.T, got []string) {
				assert.Contains(t, got, "within 2 hours")
				assert.Contains(t, got, "40 per day")
			},
		},
		{
			name:       "No metrics",
			definition: "friendly and professional demeanor",
			validate: func(t *testing.T, got []string) {
				assert.Empty(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Extract(tt.definition))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("answer 30 calls"))
	assert.True(t, Contains("99% uptime"))
	assert.True(t, Contains("twice per week"))
	assert.True(t, Contains("respond within 4 hours"))
	assert.False(t, Contains("friendly demeanor"))
	assert.False(t, Contains(""))
}
