package quizgen

import "fmt"

// Validator checks one generated question. Validators only run from the
// check command; generation itself never rejects questions.
type Validator interface {
	// Name returns a short identifier used in reports, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators is the chain used by Check.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&AnswerValidator{},
	}
}
