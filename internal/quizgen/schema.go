package quizgen

import "github.com/lunara-health/lunara/internal/llm"

// QuizSchema defines the JSON schema for LLM quiz generation responses.
// It is the same contract the prompt's format instructions describe; the
// two must change together (see formatInstructions in prompt.go).
var QuizSchema = &llm.Schema{
	Name:        "health-quiz",
	Description: "A personalized health education quiz with adaptive elements",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"minItems":    2,
							"description": "Answer choices, e.g. \"A) option text\". One must be correct.",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct option, copied verbatim from the options array",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right, shown after answering",
						},
						"learning_point": map[string]any{
							"type":        "string",
							"description": "The key takeaway this question teaches",
						},
						"difficulty_level": map[string]any{
							"type":        "string",
							"enum":        []any{"beginner", "intermediate", "advanced"},
							"description": "This question's difficulty",
						},
						"topic_tag": map[string]any{
							"type":        "string",
							"description": "The content tag this question addresses",
						},
					},
					"required": []any{
						"question", "options", "correct_answer", "explanation",
						"learning_point", "difficulty_level", "topic_tag",
					},
					"additionalProperties": false,
				},
			},
			"adaptive_elements": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"difficulty_progression": map[string]any{
						"type":        "string",
						"description": "How the quiz ramps difficulty across questions",
					},
					"topic_relationships": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "string",
						},
						"description": "Related topics worth exploring next",
					},
					"reinforcement_points": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "string",
						},
						"description": "Concepts this quiz reinforces from earlier topics",
					},
				},
				"required":             []any{"difficulty_progression", "topic_relationships", "reinforcement_points"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"questions", "adaptive_elements"},
		"additionalProperties": false,
	},
}
