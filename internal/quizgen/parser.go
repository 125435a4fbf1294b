package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lunara-health/lunara/internal/catalog"
)

// QuizParsingError reports why a model response could not be turned into
// a quiz. Position is the 1-based index of the offending question, 0 when
// the failure is structural rather than per-question.
type QuizParsingError struct {
	// Position is the 1-based question index, 0 for quiz-level failures.
	Position int

	// MissingFields lists required fields absent from the question.
	MissingFields []string

	// Reason describes the failure when it is not a missing field.
	Reason string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *QuizParsingError) Error() string {
	var b strings.Builder
	b.WriteString("quiz parsing failed")
	if e.Position > 0 {
		fmt.Fprintf(&b, " at question %d", e.Position)
	}
	if len(e.MissingFields) > 0 {
		fmt.Fprintf(&b, ": missing fields %s", strings.Join(e.MissingFields, ", "))
	} else if e.Reason != "" {
		b.WriteString(": " + e.Reason)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *QuizParsingError) Unwrap() error { return e.Cause }

// Parser validates raw model output against the quiz contract.
type Parser struct {
	// Lenient, when true, skips malformed questions with a warning
	// instead of failing the whole parse. A parse that skips every
	// question still fails.
	Lenient bool

	// Warnf receives skip warnings in lenient mode. Nil discards them.
	Warnf func(format string, args ...any)
}

// rawQuiz mirrors the wire shape; pointers distinguish absent from empty.
type rawQuiz struct {
	Questions        []rawQuestion    `json:"questions"`
	AdaptiveElements AdaptiveElements `json:"adaptive_elements"`
}

type rawQuestion struct {
	Question        *string  `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswer   *string  `json:"correct_answer"`
	Explanation     *string  `json:"explanation"`
	LearningPoint   *string  `json:"learning_point"`
	DifficultyLevel *string  `json:"difficulty_level"`
	TopicTag        *string  `json:"topic_tag"`
}

// minutesPerQuestion feeds the duration estimate, rounded up.
const minutesPerQuestion = 1

// Parse validates raw model output and assembles a ParsedQuiz. The topic
// and requested difficulty are carried into the metadata; the effective
// difficulty is recomputed as the mode of the per-question labels.
func (p *Parser) Parse(raw []byte, topic string, difficulty catalog.Difficulty) (*ParsedQuiz, error) {
	var quiz rawQuiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, &QuizParsingError{Reason: "malformed JSON", Cause: err}
	}
	if quiz.Questions == nil {
		return nil, &QuizParsingError{Reason: "response has no questions collection"}
	}

	questions := make([]QuizQuestion, 0, len(quiz.Questions))
	for i, rq := range quiz.Questions {
		q, err := validateQuestion(rq, i+1)
		if err != nil {
			if p.Lenient {
				p.warnf("skipping question %d: %v", i+1, err)
				continue
			}
			return nil, err
		}
		questions = append(questions, *q)
	}
	if len(questions) == 0 {
		return nil, &QuizParsingError{Reason: "no valid questions survived parsing"}
	}

	return &ParsedQuiz{
		Questions: questions,
		Metadata: QuizMetadata{
			Topic:            topic,
			Difficulty:       effectiveDifficulty(questions, difficulty),
			AdaptiveElements: quiz.AdaptiveElements,
		},
		TotalPoints:        len(questions),
		LearningObjectives: learningObjectives(questions),
		EstimatedMinutes:   len(questions) * minutesPerQuestion,
	}, nil
}

// validateQuestion checks one question's required fields and answer
// consistency. pos is 1-based.
func validateQuestion(rq rawQuestion, pos int) (*QuizQuestion, error) {
	var missing []string
	if rq.Question == nil {
		missing = append(missing, "question")
	}
	if rq.Options == nil {
		missing = append(missing, "options")
	}
	if rq.CorrectAnswer == nil {
		missing = append(missing, "correct_answer")
	}
	if rq.Explanation == nil {
		missing = append(missing, "explanation")
	}
	if rq.LearningPoint == nil {
		missing = append(missing, "learning_point")
	}
	if rq.DifficultyLevel == nil {
		missing = append(missing, "difficulty_level")
	}
	if rq.TopicTag == nil {
		missing = append(missing, "topic_tag")
	}
	if len(missing) > 0 {
		return nil, &QuizParsingError{Position: pos, MissingFields: missing}
	}

	if len(rq.Options) < 2 {
		return nil, &QuizParsingError{
			Position: pos,
			Reason:   fmt.Sprintf("needs at least 2 options, got %d", len(rq.Options)),
		}
	}

	// Exact string match, no normalization.
	found := false
	for _, opt := range rq.Options {
		if opt == *rq.CorrectAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, &QuizParsingError{
			Position: pos,
			Reason:   fmt.Sprintf("correct_answer %q does not match any option", *rq.CorrectAnswer),
		}
	}

	return &QuizQuestion{
		Question:        *rq.Question,
		Options:         rq.Options,
		CorrectAnswer:   *rq.CorrectAnswer,
		Explanation:     *rq.Explanation,
		LearningPoint:   *rq.LearningPoint,
		DifficultyLevel: *rq.DifficultyLevel,
		TopicTag:        *rq.TopicTag,
	}, nil
}

// effectiveDifficulty is the mode of the per-question labels, ties broken
// by first encounter. The requested difficulty is the fallback when no
// question carries a label.
func effectiveDifficulty(questions []QuizQuestion, requested catalog.Difficulty) string {
	counts := make(map[string]int)
	var order []string
	for _, q := range questions {
		if counts[q.DifficultyLevel] == 0 {
			order = append(order, q.DifficultyLevel)
		}
		counts[q.DifficultyLevel]++
	}

	best := string(requested)
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// learningObjectives collects each question's learning point, first-seen
// order preserved, duplicates dropped.
func learningObjectives(questions []QuizQuestion) []string {
	seen := make(map[string]bool, len(questions))
	var objectives []string
	for _, q := range questions {
		if seen[q.LearningPoint] {
			continue
		}
		seen[q.LearningPoint] = true
		objectives = append(objectives, q.LearningPoint)
	}
	return objectives
}

func (p *Parser) warnf(format string, args ...any) {
	if p.Warnf != nil {
		p.Warnf(format, args...)
	}
}
