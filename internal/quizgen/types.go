package quizgen

import (
	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/progress"
)

// QuizQuestion is one validated question. Immutable once parsed.
type QuizQuestion struct {
	// Question is the prompt shown to the learner.
	Question string

	// Options are the answer choices, at least two.
	Options []string

	// CorrectAnswer equals exactly one entry in Options.
	CorrectAnswer string

	// Explanation is shown after the learner answers.
	Explanation string

	// LearningPoint is the question's key takeaway.
	LearningPoint string

	// DifficultyLevel is the model's per-question difficulty label.
	DifficultyLevel string

	// TopicTag is the content tag the question addresses.
	TopicTag string
}

// QuizMetadata carries quiz-level context alongside the questions.
type QuizMetadata struct {
	Topic            string
	Difficulty       string
	AdaptiveElements AdaptiveElements
}

// AdaptiveElements is the model's quiz-level personalization block.
type AdaptiveElements struct {
	DifficultyProgression string   `json:"difficulty_progression"`
	TopicRelationships    []string `json:"topic_relationships"`
	ReinforcementPoints   []string `json:"reinforcement_points"`
}

// ParsedQuiz is a fully validated quiz ready to store.
type ParsedQuiz struct {
	Questions []QuizQuestion
	Metadata  QuizMetadata

	// TotalPoints equals the question count; one point per question.
	TotalPoints int

	// LearningObjectives are the questions' learning points, deduplicated
	// in first-seen order.
	LearningObjectives []string

	// EstimatedMinutes is a rough duration estimate for the attempt.
	EstimatedMinutes int
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Topic is the quiz subject, e.g. "Period Care".
	Topic string

	// Tags are the content tags framing the topic.
	Tags []catalog.ContentTag

	// AgeGroup selects the vocabulary register.
	AgeGroup catalog.AgeGroup

	// Difficulty is the user's current tier.
	Difficulty catalog.Difficulty

	// NumQuestions is how many questions to request.
	NumQuestions int

	// Adjustment is the analyzer's output for this user.
	Adjustment progress.ContentAdjustment
}
