package types

import "time"

// Score is a tri-state interviewer judgement for a question or a candidate.
type Score string

// Score constants
const (
	ScorePass  Score = "pass"
	ScoreMaybe Score = "maybe"
	ScoreFail  Score = "fail"
)

// InterviewResponse records the interviewer's judgement for one question.
type InterviewResponse struct {
	QuestionID string `json:"question_id"`
	Score      Score  `json:"score"`
	Notes      string `json:"notes,omitempty"`
}

// InterviewScript is the full prepared script for one position: the analyzed
// requirements and the questions generated from them.
type InterviewScript struct {
	CompanyName    string              `json:"company_name,omitempty"`
	PositionTitle  string              `json:"position_title,omitempty"`
	JobDescription string              `json:"job_description,omitempty"`
	Requirements   []Requirement       `json:"requirements"`
	Questions      []InterviewQuestion `json:"questions"`
}

// Session is one wizard session persisted by the session store. Requirements
// and questions are stored verbatim in their wire shapes; the core components
// never read or write the store directly.
type Session struct {
	ID        string              `json:"id"`
	Script    InterviewScript     `json:"script"`
	Responses []InterviewResponse `json:"responses,omitempty"`

	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	OverallScore   Score  `json:"overall_score,omitempty"`
	Notes          string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
