package quizgen

import (
	"encoding/json"
	"fmt"
)

// Issue is one failed check for one question.
type Issue struct {
	// Index is the zero-based position of the question in the array.
	Index     int
	Validator string
	Message   string
}

// Report summarizes a shape check of a question array.
type Report struct {
	Source Source
	Total  int

	// SchemaErr is the JSON Schema verdict for the whole document.
	SchemaErr error

	Issues []Issue
}

// OK reports whether the document passed the schema and every validator.
func (r Report) OK() bool {
	return r.SchemaErr == nil && len(r.Issues) == 0
}

// Check validates a question array: either the pipeline's output or a raw
// model reply holding a fenced block. It fails only when no JSON array can
// be decoded at all. With no validators given, DefaultValidators is used.
func Check(data []byte, validators ...Validator) (Report, error) {
	if len(validators) == 0 {
		validators = DefaultValidators()
	}

	payload, source := extractPayload(string(data))
	report := Report{Source: source}

	var doc any
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return report, fmt.Errorf("decode quiz JSON: %w", err)
	}
	if _, ok := doc.([]any); !ok {
		return report, fmt.Errorf("quiz JSON must be an array, got %T", doc)
	}
	report.SchemaErr = ValidateSchema(doc)

	// Records whose fields have the wrong JSON type still get a report.
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return report, fmt.Errorf("decode quiz array: %w", err)
	}
	report.Total = len(items)

	for i, item := range items {
		var q Question
		if err := json.Unmarshal(item, &q); err != nil {
			report.Issues = append(report.Issues, Issue{Index: i, Validator: "decode", Message: err.Error()})
			continue
		}
		for _, v := range validators {
			if verr := v.Validate(q); verr != nil {
				report.Issues = append(report.Issues, Issue{Index: i, Validator: verr.Validator, Message: verr.Message})
				break
			}
		}
	}

	return report, nil
}
