// Package questions generates STAR-format interview questions from classified
// requirements using a static template bank keyed by KSAO category.
package questions

import "github.com/jonathan/interview-scripter/internal/types"

// placeholder is substituted with the requirement text when a template is
// instantiated.
const placeholder = "[REQUIREMENT]"

// Template is one entry of the template bank: a main STAR question, its
// follow-ups, and the behaviors the interviewer should listen for.
type Template struct {
	MainQuestion      string
	FollowUps         []string
	ExpectedBehaviors []string
}

var templateBank = map[types.KSAOCategory][]Template{
	types.KSAOKnowledge: {
		{
			MainQuestion: "Explain your understanding of [REQUIREMENT]. What are the key factors that influence success in this area?",
			FollowUps: []string{
				"Can you give me a specific example of how you've applied this knowledge?",
				"What resources do you use to stay current in this area?",
				"How would you explain this concept to someone new to the field?",
			},
			ExpectedBehaviors: []string{
				"Demonstrates deep understanding of concepts",
				"Provides concrete examples from experience",
				"Shows continuous learning mindset",
			},
		},
		{
			MainQuestion: "Tell me about a time when your knowledge of [REQUIREMENT] was critical to solving a problem. Walk me through your thought process.",
			FollowUps: []string{
				"What was the outcome?",
				"What alternatives did you consider?",
				"How did you validate your solution?",
			},
			ExpectedBehaviors: []string{
				"Shows practical application of knowledge",
				"Demonstrates analytical thinking",
				"Can articulate decision-making process",
			},
		},
	},
	types.KSAOSkills: {
		{
			MainQuestion: "Walk me through your process for [REQUIREMENT]. Take me through a recent example step by step.",
			FollowUps: []string{
				"What challenges did you encounter?",
				"How long did each step take?",
				"What tools or resources did you use?",
				"How do you ensure quality in this process?",
			},
			ExpectedBehaviors: []string{
				"Has a clear, systematic approach",
				"Can articulate specific steps",
				"Shows attention to detail and quality",
			},
		},
		{
			MainQuestion: "Describe a situation where you had to [REQUIREMENT] under challenging circumstances. What made it challenging?",
			FollowUps: []string{
				"How did you adapt your usual approach?",
				"What was the result?",
				"What did you learn from this experience?",
				"How would you handle it differently today?",
			},
			ExpectedBehaviors: []string{
				"Shows adaptability and problem-solving",
				"Can work under pressure",
				"Demonstrates learning from experience",
			},
		},
		{
			MainQuestion: "If I asked you to [REQUIREMENT] right now, how would you approach it? What would be your first three steps?",
			FollowUps: []string{
				"What information would you need to gather first?",
				"How would you prioritize if you had multiple competing requests?",
				"How would you measure success?",
			},
			ExpectedBehaviors: []string{
				"Can think on their feet",
				"Shows strategic planning ability",
				"Understands success metrics",
			},
		},
	},
	types.KSAOAbilities: {
		{
			MainQuestion: "Tell me about a time when you successfully [REQUIREMENT]. What was the volume/scale involved?",
			FollowUps: []string{
				"How did you manage the workload?",
				"What systems or processes did you use?",
				"How did you maintain quality at that volume?",
				"What metrics did you track?",
			},
			ExpectedBehaviors: []string{
				"Can handle specified volume/metrics",
				"Has systems for efficiency",
				"Tracks and measures performance",
			},
		},
		{
			MainQuestion: "Describe your busiest day handling [REQUIREMENT]. Walk me through how you managed it.",
			FollowUps: []string{
				"What was your prioritization strategy?",
				"How did you handle competing deadlines?",
				"What was the outcome?",
				"How do you prevent burnout at high volumes?",
			},
			ExpectedBehaviors: []string{
				"Can work at required pace",
				"Has stress management strategies",
				"Maintains performance under pressure",
			},
		},
	},
	types.KSAOOther: {
		{
			MainQuestion: "What current certifications do you hold related to [REQUIREMENT]? When did you obtain them?",
			FollowUps: []string{
				"How do you maintain your certification?",
				"How has this certification helped in your work?",
			},
			ExpectedBehaviors: []string{
				"Holds required certifications",
				"Maintains current status",
				"Applies certification knowledge",
			},
		},
	},
}

// templateCount returns how many templates to instantiate for a category.
func templateCount(category types.KSAOCategory) int {
	switch category {
	case types.KSAOOther:
		return 1
	case types.KSAOKnowledge, types.KSAOAbilities:
		return 2
	default:
		return 3
	}
}

// NatureDiscoveryQuestions is the fixed block appended to every generated
// script. These surface how the candidate naturally works, independent of any
// requirement, and are not STAR questions.
var NatureDiscoveryQuestions = []types.InterviewQuestion{
	{
		ID:       "nature-1",
		Question: "Think about your best day at work in the last 6 months. Walk me through what made it great - what were you doing, who were you working with, what did you accomplish?",
		Kind:     types.KindNatureDiscovery,
		Purpose:  "Identifies what energizes the candidate and their ideal work environment",
	},
	{
		ID:       "nature-2",
		Question: "Now think about a day that really drained you. What made it exhausting - was it the type of work, the people, the environment, or something else?",
		Kind:     types.KindNatureDiscovery,
		Purpose:  "Reveals what exhausts the candidate and potential mismatches",
	},
	{
		ID:       "nature-3",
		Question: "If you could design your perfect role, what would your typical Tuesday look like from 9am to 5pm? Be specific about tasks, interactions, and environment.",
		Kind:     types.KindNatureDiscovery,
		Purpose:  "Uncovers intrinsic motivations and preferred work style",
	},
	{
		ID:       "nature-4",
		Question: "Tell me about a time when you felt completely in your element at work - when everything just clicked. What were the conditions that made that possible?",
		Kind:     types.KindNatureDiscovery,
		Purpose:  "Identifies optimal performance conditions and natural strengths",
	},
}
