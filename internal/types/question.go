package types

// QuestionKind is the explicit discriminant for the two question variants.
type QuestionKind string

// QuestionKind constants
const (
	KindRequirement     QuestionKind = "requirement"
	KindNatureDiscovery QuestionKind = "nature-discovery"
)

// InterviewQuestion is a generated interview question, usually tied to one
// requirement. Nature-discovery questions carry no requirement ID.
type InterviewQuestion struct {
	ID            string       `json:"id"`
	Question      string       `json:"question"`
	RequirementID string       `json:"requirement_id,omitempty"`
	Kind          QuestionKind `json:"kind"`

	// ExpectedBehavior is an advisory semicolon-joined list of behaviors the
	// interviewer should listen for.
	ExpectedBehavior string `json:"expected_behavior,omitempty"`

	// IsSTAR marks a Situation-Task-Action-Result question. Invariant:
	// when true, FollowUps is non-empty.
	IsSTAR    bool     `json:"is_star"`
	FollowUps []string `json:"follow_ups,omitempty"`

	// Purpose explains what a nature-discovery question is probing for.
	Purpose string `json:"purpose,omitempty"`

	// Display-only annotations from the optional categorization service.
	// They never alter the question text or behavior contracts.
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Importance  int    `json:"importance,omitempty"`
}
