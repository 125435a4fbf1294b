package quizgen

// Config controls quiz generation.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// DefaultQuestions is used when a request does not specify a count.
	DefaultQuestions int

	// MaxQuestions caps per-request question counts.
	MaxQuestions int

	// Lenient forwards to the parser: skip malformed questions instead
	// of failing the parse.
	Lenient bool
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:        4096,
		Temperature:      0.7,
		DefaultQuestions: 5,
		MaxQuestions:     20,
	}
}
