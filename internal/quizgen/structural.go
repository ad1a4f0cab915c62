package quizgen

import (
	"fmt"
	"strings"
)

// OptionCount is the number of choices every question should carry.
const OptionCount = 4

// StructuralValidator checks that the question text and options are present
// and that there are exactly four distinct, non-empty options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q Question) *ValidationError {
	if strings.TrimSpace(q.Question) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)),
		}
	}

	seen := make(map[string]bool, len(q.Options))
	for i, opt := range q.Options {
		norm := strings.ToLower(strings.TrimSpace(opt))
		if norm == "" {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("option %d is empty", i+1)}
		}
		if seen[norm] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("option %q is duplicated", opt)}
		}
		seen[norm] = true
	}
	return nil
}

// AnswerValidator checks that the answer names one of the options.
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer" }

func (v *AnswerValidator) Validate(q Question) *ValidationError {
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{Validator: v.Name(), Message: "answer is empty"}
	}
	if _, ok := AnswerIndex(q); !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %q does not match any option", q.Answer),
		}
	}
	return nil
}

// AnswerIndex resolves the answer to an option index. The answer may be the
// option text, a letter A-D, or text contained in exactly one option
// (for options written like "B) Paris").
func AnswerIndex(q Question) (int, bool) {
	answer := strings.TrimSpace(q.Answer)
	if answer == "" {
		return 0, false
	}

	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == answer {
			return i, true
		}
	}

	if len(answer) == 1 {
		idx := int(strings.ToUpper(answer)[0] - 'A')
		if idx >= 0 && idx < len(q.Options) {
			return idx, true
		}
	}

	match := -1
	for i, opt := range q.Options {
		if strings.Contains(opt, answer) {
			if match >= 0 {
				return 0, false
			}
			match = i
		}
	}
	return match, match >= 0
}
