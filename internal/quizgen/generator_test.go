package quizgen

import (
	"context"
	"strings"
	"testing"

	"github.com/lunara-health/lunara/internal/catalog"
	"github.com/lunara-health/lunara/internal/llm"
)

func TestGenerateParsesModelOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload(5)})
	gen := New(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(quiz.Questions) != 5 {
		t.Errorf("questions = %d, want 5", len(quiz.Questions))
	}
	if quiz.TotalPoints != 5 {
		t.Errorf("total points = %d, want 5", quiz.TotalPoints)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request should carry the quiz schema")
	}
	if req.System != systemPrompt {
		t.Error("request should carry the system prompt")
	}
}

func TestGenerateDefaultsQuestionCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload(5)})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.NumQuestions = 0
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatal(err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "with 5 questions") {
		t.Errorf("default question count not applied:\n%s", msg)
	}
}

func TestGenerateCapsQuestionCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validPayload(5)})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.NumQuestions = 500
	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatal(err)
	}
	if msg := mock.Calls[0].Messages[0].Content; !strings.Contains(msg, "with 20 questions") {
		t.Errorf("question cap not applied:\n%s", msg)
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("want error from provider")
	}
}

// The prompt's format instructions and the parser accept the same shape:
// a fixture written by following the prompt's contract must parse.
func TestFormatContractRoundTrip(t *testing.T) {
	fixture := []byte(`{
		"questions": [
			{
				"question": "How long does a typical menstrual cycle last?",
				"options": ["A) 7-10 days", "B) 21-35 days", "C) 45-60 days", "D) 90 days"],
				"correct_answer": "B) 21-35 days",
				"explanation": "Most cycles fall between 21 and 35 days, measured from the first day of one period to the first day of the next.",
				"learning_point": "Cycle length varies and a 21-35 day range is typical",
				"difficulty_level": "beginner",
				"topic_tag": "menstrual_health"
			},
			{
				"question": "Which habit best supports cycle regularity?",
				"options": ["A) Skipping meals", "B) Consistent sleep", "C) Extra caffeine", "D) Ignoring stress"],
				"correct_answer": "B) Consistent sleep",
				"explanation": "Regular sleep supports the hormonal rhythms that regulate the cycle.",
				"learning_point": "Sleep and stress management support hormonal balance",
				"difficulty_level": "beginner",
				"topic_tag": "general_wellness"
			}
		],
		"adaptive_elements": {
			"difficulty_progression": "start with recall, end with application",
			"topic_relationships": ["Sleep Health", "Stress Management"],
			"reinforcement_points": ["cycle tracking basics"]
		}
	}`)

	p := &Parser{}
	quiz, err := p.Parse(fixture, "Period Care", catalog.DifficultyBeginner)
	if err != nil {
		t.Fatalf("conforming fixture must parse: %v", err)
	}
	if len(quiz.Questions) != 2 || quiz.TotalPoints != 2 {
		t.Errorf("quiz = %d questions %d points, want 2/2", len(quiz.Questions), quiz.TotalPoints)
	}
	if len(quiz.Metadata.AdaptiveElements.TopicRelationships) != 2 {
		t.Errorf("adaptive elements lost: %+v", quiz.Metadata.AdaptiveElements)
	}
}
