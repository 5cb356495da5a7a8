// Package types provides type definitions for structured data used throughout the interview-scripter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority is the legacy tri-state requirement tag kept for backward
// compatibility with the pre-decision-tree classification flow.
// FinalClassification supersedes it when present.
type Priority string

// Priority constants for the legacy classification flow
const (
	PriorityMandatory  Priority = "mandatory"
	PriorityTrainable  Priority = "trainable"
	PriorityNiceToHave Priority = "nice-to-have"
)

// FinalClassification is the terminal outcome of the three-question
// classification decision tree.
type FinalClassification string

// FinalClassification constants
const (
	ClassMustHave   FinalClassification = "must-have"
	ClassWillTrain  FinalClassification = "will-train"
	ClassNiceToHave FinalClassification = "nice-to-have"
)

// KSAOCategory is the four-way taxonomy for job requirements:
// Knowledge, Skills, Abilities, Other.
type KSAOCategory string

// KSAOCategory constants
const (
	KSAOKnowledge KSAOCategory = "Knowledge"
	KSAOSkills    KSAOCategory = "Skills"
	KSAOAbilities KSAOCategory = "Abilities"
	KSAOOther     KSAOCategory = "Other"
)

// Requirement represents a single job requirement under analysis.
// The three decision-tree answers are pointers so that "not yet answered"
// is distinguishable from an explicit false.
type Requirement struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`

	Definition   string       `json:"definition,omitempty"`
	KSAOCategory KSAOCategory `json:"ksao_category,omitempty"`

	IsMandatory    *bool `json:"is_mandatory,omitempty"`
	IsTrainable    *bool `json:"is_trainable,omitempty"`
	WillingToTrain *bool `json:"willing_to_train,omitempty"`

	// FinalClassification is derived from the three booleans above and is
	// never set by direct user input. Empty means the tree is incomplete.
	FinalClassification FinalClassification `json:"final_classification,omitempty"`
}

// VaguenessAnalysis is the ephemeral output of the vagueness detector.
// It is recomputed on demand from a requirement's raw text and never persisted.
type VaguenessAnalysis struct {
	IsVague     bool     `json:"is_vague"`
	Confidence  float64  `json:"confidence"` // 0-1 scale
	Reason      string   `json:"reason"`
	Suggestions []string `json:"suggestions"`
}
