// Package scoring turns per-question interview responses into a scored
// summary and an overall pass/maybe/fail recommendation.
package scoring

import "github.com/jonathan/interview-scripter/internal/types"

// Tally counts responses by score for one classification bucket.
type Tally struct {
	Pass  int `json:"pass"`
	Maybe int `json:"maybe"`
	Fail  int `json:"fail"`
}

// Total returns the number of scored responses in the tally.
func (t Tally) Total() int { return t.Pass + t.Maybe + t.Fail }

// Summary is the scored outcome of one interview.
type Summary struct {
	Overall    types.Score `json:"overall"`
	MustHave   Tally       `json:"must_have"`
	WillTrain  Tally       `json:"will_train"`
	Discovery  Tally       `json:"discovery"`
	Unanswered int         `json:"unanswered"`
}

// Summarize scores an interview. The overall recommendation hinges on
// must-have coverage: any failed must-have question fails the candidate; a
// clean sweep of pass scores passes them; everything in between is a maybe.
func Summarize(script types.InterviewScript, responses []types.InterviewResponse) Summary {
	classByRequirement := make(map[string]types.FinalClassification, len(script.Requirements))
	for _, req := range script.Requirements {
		classByRequirement[req.ID] = req.FinalClassification
	}

	byQuestion := make(map[string]types.InterviewResponse, len(responses))
	for _, resp := range responses {
		byQuestion[resp.QuestionID] = resp
	}

	var summary Summary
	allPass := true
	mustHaveFailed := false

	for _, q := range script.Questions {
		resp, answered := byQuestion[q.ID]
		if !answered {
			summary.Unanswered++
			allPass = false
			continue
		}

		var bucket *Tally
		switch {
		case q.Kind == types.KindNatureDiscovery:
			bucket = &summary.Discovery
		case classByRequirement[q.RequirementID] == types.ClassMustHave:
			bucket = &summary.MustHave
		default:
			bucket = &summary.WillTrain
		}

		switch resp.Score {
		case types.ScorePass:
			bucket.Pass++
		case types.ScoreMaybe:
			bucket.Maybe++
			allPass = false
		case types.ScoreFail:
			bucket.Fail++
			allPass = false
			if bucket == &summary.MustHave {
				mustHaveFailed = true
			}
		}
	}

	switch {
	case mustHaveFailed:
		summary.Overall = types.ScoreFail
	case allPass && len(script.Questions) > 0:
		summary.Overall = types.ScorePass
	default:
		summary.Overall = types.ScoreMaybe
	}
	return summary
}
