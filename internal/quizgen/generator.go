package quizgen

import (
	"context"
	"fmt"
	"os"

	"github.com/lunara-health/lunara/internal/llm"
)

// Generator produces quizzes using an LLM provider.
type Generator interface {
	// Generate produces a validated quiz for the given input context.
	Generate(ctx context.Context, input GenerateInput) (*ParsedQuiz, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	parser   *Parser
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		parser: &Parser{
			Lenient: cfg.Lenient,
			Warnf: func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
			},
		},
		config: cfg,
	}
}

// Generate builds the prompt, calls the model with the quiz schema, and
// parses the structured response.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*ParsedQuiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	if input.NumQuestions <= 0 {
		input.NumQuestions = g.config.DefaultQuestions
	}
	if g.config.MaxQuestions > 0 && input.NumQuestions > g.config.MaxQuestions {
		input.NumQuestions = g.config.MaxQuestions
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	quiz, err := g.parser.Parse(resp.Content, input.Topic, input.Difficulty)
	if err != nil {
		return nil, err
	}
	return quiz, nil
}
