// Package classification implements the three-question decision tree that
// derives a requirement's final classification.
//
// The tree uses the Day-1 polarity: question 1 asks whether the requirement
// is needed on day one. A yes is immediately terminal (must-have); questions
// 2 and 3 are only reached when the answer is no.
package classification

import "github.com/jonathan/interview-scripter/internal/types"

// Classify computes the terminal classification for the three decision-tree
// answers. A nil pointer means the question has not been answered. The second
// return value reports whether a terminal node was reached; when it is false
// the classification is empty and the requirement is still incomplete.
func Classify(isMandatory, isTrainable, willingToTrain *bool) (types.FinalClassification, bool) {
	if isMandatory == nil {
		return "", false
	}
	if *isMandatory {
		return types.ClassMustHave, true
	}

	if isTrainable == nil {
		return "", false
	}
	if !*isTrainable {
		return types.ClassNiceToHave, true
	}

	if willingToTrain == nil {
		return "", false
	}
	if *willingToTrain {
		return types.ClassWillTrain, true
	}
	// Trainable in principle, but the organization will not invest.
	return types.ClassNiceToHave, true
}

// Apply recomputes FinalClassification from the requirement's current
// answers, clearing it when the tree is incomplete. It returns whether the
// requirement reached a terminal node.
func Apply(req *types.Requirement) bool {
	class, complete := Classify(req.IsMandatory, req.IsTrainable, req.WillingToTrain)
	if !complete {
		req.FinalClassification = ""
		return false
	}
	req.FinalClassification = class
	return true
}

// IsComplete reports whether a requirement's decision tree has reached a
// terminal node for its current answers.
func IsComplete(req types.Requirement) bool {
	_, complete := Classify(req.IsMandatory, req.IsTrainable, req.WillingToTrain)
	return complete
}

// AllComplete is the proceed gate for the classification step: every
// requirement in the set must have a terminal classification.
func AllComplete(reqs []types.Requirement) bool {
	for _, req := range reqs {
		if !IsComplete(req) {
			return false
		}
	}
	return true
}
