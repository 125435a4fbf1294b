package quizgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lunara-health/lunara/internal/catalog"
)

func validPayload(n int) []byte {
	type q map[string]any
	questions := make([]q, n)
	for i := range questions {
		questions[i] = q{
			"question":         fmt.Sprintf("Question %d?", i+1),
			"options":          []string{"A) yes", "B) no", "C) maybe", "D) unsure"},
			"correct_answer":   "A) yes",
			"explanation":      "Because it is so.",
			"learning_point":   fmt.Sprintf("Takeaway %d", i+1),
			"difficulty_level": "beginner",
			"topic_tag":        "menstrual_health",
		}
	}
	raw, _ := json.Marshal(map[string]any{
		"questions": questions,
		"adaptive_elements": map[string]any{
			"difficulty_progression": "steady",
			"topic_relationships":    []string{"Sleep Health"},
			"reinforcement_points":   []string{"cycle basics"},
		},
	})
	return raw
}

func TestParseValidQuiz(t *testing.T) {
	p := &Parser{}
	quiz, err := p.Parse(validPayload(5), "Period Care", catalog.DifficultyBeginner)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(quiz.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(quiz.Questions))
	}
	if quiz.TotalPoints != 5 {
		t.Errorf("total points = %d, want 5", quiz.TotalPoints)
	}
	if quiz.Metadata.Topic != "Period Care" {
		t.Errorf("topic = %q", quiz.Metadata.Topic)
	}
	if quiz.Metadata.Difficulty != "beginner" {
		t.Errorf("difficulty = %q, want beginner", quiz.Metadata.Difficulty)
	}
	if len(quiz.LearningObjectives) != 5 {
		t.Errorf("objectives = %v, want 5 distinct", quiz.LearningObjectives)
	}
	if quiz.Metadata.AdaptiveElements.DifficultyProgression != "steady" {
		t.Errorf("adaptive elements not carried: %+v", quiz.Metadata.AdaptiveElements)
	}
}

func TestParseMalformedJSON(t *testing.T) {
	p := &Parser{}
	_, err := p.Parse([]byte("{not json"), "Topic", catalog.DifficultyBeginner)
	var perr *QuizParsingError
	if !errors.As(err, &perr) {
		t.Fatalf("want QuizParsingError, got %v", err)
	}
	if perr.Cause == nil {
		t.Error("syntax error should be surfaced as the cause")
	}
}

func TestParseMissingQuestionsCollection(t *testing.T) {
	p := &Parser{}
	_, err := p.Parse([]byte(`{"adaptive_elements":{}}`), "Topic", catalog.DifficultyBeginner)
	var perr *QuizParsingError
	if !errors.As(err, &perr) {
		t.Fatalf("want QuizParsingError, got %v", err)
	}
	if perr.Position != 0 {
		t.Errorf("structural failure should carry no question position, got %d", perr.Position)
	}
}

func TestParseMissingFieldNamesPosition(t *testing.T) {
	payload := []byte(`{
		"questions": [
			{
				"question": "Fine?",
				"options": ["A) yes", "B) no"],
				"correct_answer": "A) yes",
				"explanation": "ok",
				"learning_point": "ok",
				"difficulty_level": "beginner",
				"topic_tag": "general_wellness"
			},
			{
				"question": "Broken?",
				"options": ["A) yes", "B) no"],
				"explanation": "ok",
				"learning_point": "ok",
				"difficulty_level": "beginner",
				"topic_tag": "general_wellness"
			}
		],
		"adaptive_elements": {}
	}`)

	p := &Parser{}
	_, err := p.Parse(payload, "Topic", catalog.DifficultyBeginner)
	var perr *QuizParsingError
	if !errors.As(err, &perr) {
		t.Fatalf("want QuizParsingError, got %v", err)
	}
	if perr.Position != 2 {
		t.Errorf("position = %d, want 2 (1-based)", perr.Position)
	}
	if len(perr.MissingFields) != 1 || perr.MissingFields[0] != "correct_answer" {
		t.Errorf("missing fields = %v, want [correct_answer]", perr.MissingFields)
	}
	if !strings.Contains(perr.Error(), "question 2") {
		t.Errorf("error message should name the position: %q", perr.Error())
	}
}

func TestParseTooFewOptions(t *testing.T) {
	payload := []byte(`{
		"questions": [{
			"question": "Only one?",
			"options": ["A) yes"],
			"correct_answer": "A) yes",
			"explanation": "ok",
			"learning_point": "ok",
			"difficulty_level": "beginner",
			"topic_tag": "general_wellness"
		}],
		"adaptive_elements": {}
	}`)
	p := &Parser{}
	_, err := p.Parse(payload, "Topic", catalog.DifficultyBeginner)
	var perr *QuizParsingError
	if !errors.As(err, &perr) {
		t.Fatalf("want QuizParsingError, got %v", err)
	}
	if perr.Position != 1 {
		t.Errorf("position = %d, want 1", perr.Position)
	}
}

func TestParseAnswerNotInOptions(t *testing.T) {
	payload := []byte(`{
		"questions": [{
			"question": "Which?",
			"options": ["A) yes", "B) no"],
			"correct_answer": "A) yes ",
			"explanation": "ok",
			"learning_point": "ok",
			"difficulty_level": "beginner",
			"topic_tag": "general_wellness"
		}],
		"adaptive_elements": {}
	}`)
	p := &Parser{}
	_, err := p.Parse(payload, "Topic", catalog.DifficultyBeginner)
	// Trailing whitespace must not be normalized away.
	var perr *QuizParsingError
	if !errors.As(err, &perr) {
		t.Fatalf("want QuizParsingError, got %v", err)
	}
}

func TestParseDifficultyMode(t *testing.T) {
	mk := func(levels ...string) []byte {
		type q map[string]any
		questions := make([]q, len(levels))
		for i, lvl := range levels {
			questions[i] = q{
				"question":         fmt.Sprintf("Q%d?", i+1),
				"options":          []string{"A) x", "B) y"},
				"correct_answer":   "A) x",
				"explanation":      "ok",
				"learning_point":   "ok",
				"difficulty_level": lvl,
				"topic_tag":        "general_wellness",
			}
		}
		raw, _ := json.Marshal(map[string]any{"questions": questions, "adaptive_elements": map[string]any{}})
		return raw
	}

	p := &Parser{}

	quiz, err := p.Parse(mk("beginner", "intermediate", "intermediate"), "T", catalog.DifficultyBeginner)
	if err != nil {
		t.Fatal(err)
	}
	if quiz.Metadata.Difficulty != "intermediate" {
		t.Errorf("mode = %q, want intermediate", quiz.Metadata.Difficulty)
	}

	// Tie: first-encountered wins.
	quiz, err = p.Parse(mk("advanced", "beginner"), "T", catalog.DifficultyBeginner)
	if err != nil {
		t.Fatal(err)
	}
	if quiz.Metadata.Difficulty != "advanced" {
		t.Errorf("tie-break = %q, want advanced", quiz.Metadata.Difficulty)
	}
}

func TestParseDedupesLearningObjectives(t *testing.T) {
	payload := []byte(`{
		"questions": [
			{"question": "Q1?", "options": ["A) x", "B) y"], "correct_answer": "A) x",
			 "explanation": "ok", "learning_point": "hydration", "difficulty_level": "beginner", "topic_tag": "nutrition"},
			{"question": "Q2?", "options": ["A) x", "B) y"], "correct_answer": "B) y",
			 "explanation": "ok", "learning_point": "sleep", "difficulty_level": "beginner", "topic_tag": "general_wellness"},
			{"question": "Q3?", "options": ["A) x", "B) y"], "correct_answer": "A) x",
			 "explanation": "ok", "learning_point": "hydration", "difficulty_level": "beginner", "topic_tag": "nutrition"}
		],
		"adaptive_elements": {}
	}`)
	p := &Parser{}
	quiz, err := p.Parse(payload, "T", catalog.DifficultyBeginner)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hydration", "sleep"}
	if len(quiz.LearningObjectives) != len(want) {
		t.Fatalf("objectives = %v, want %v", quiz.LearningObjectives, want)
	}
	for i := range want {
		if quiz.LearningObjectives[i] != want[i] {
			t.Errorf("objective %d = %q, want %q", i, quiz.LearningObjectives[i], want[i])
		}
	}
}

func TestLenientSkipsBadQuestions(t *testing.T) {
	payload := []byte(`{
		"questions": [
			{"question": "Good?", "options": ["A) x", "B) y"], "correct_answer": "A) x",
			 "explanation": "ok", "learning_point": "ok", "difficulty_level": "beginner", "topic_tag": "general_wellness"},
			{"question": "Bad?", "options": ["A) x", "B) y"],
			 "explanation": "ok", "learning_point": "ok", "difficulty_level": "beginner", "topic_tag": "general_wellness"}
		],
		"adaptive_elements": {}
	}`)

	var warnings []string
	p := &Parser{Lenient: true, Warnf: func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}}

	quiz, err := p.Parse(payload, "T", catalog.DifficultyBeginner)
	if err != nil {
		t.Fatalf("lenient parse should survive one bad question: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Errorf("questions = %d, want 1", len(quiz.Questions))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "question 2") {
		t.Errorf("warnings = %v, want one naming question 2", warnings)
	}
}

func TestLenientAllBadIsTerminal(t *testing.T) {
	payload := []byte(`{
		"questions": [
			{"question": "Bad?", "options": ["A) x"], "correct_answer": "A) x",
			 "explanation": "ok", "learning_point": "ok", "difficulty_level": "beginner", "topic_tag": "general_wellness"}
		],
		"adaptive_elements": {}
	}`)
	p := &Parser{Lenient: true}
	_, err := p.Parse(payload, "T", catalog.DifficultyBeginner)
	var perr *QuizParsingError
	if !errors.As(err, &perr) {
		t.Fatalf("zero surviving questions must fail, got %v", err)
	}
}
