package quizgen

// DefaultQuestionCount is how many questions the model is asked for.
const DefaultQuestionCount = 15

// Config controls the behavior of the Generator.
type Config struct {
	// Count is the number of questions requested. It is not checked
	// against what the model returns.
	Count int

	// MaxTokens is the token budget for the reply. Zero leaves the
	// provider default.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0). Zero leaves the
	// provider default.
	Temperature float64
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{
		Count: DefaultQuestionCount,
	}
}
