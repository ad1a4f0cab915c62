package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// QuizSchema is the JSON Schema of a question array as the prompt
// describes it.
var QuizSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 4,
				"maxItems": 4,
				"items": map[string]any{
					"type": "string",
				},
			},
			"answer": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"required": []any{"question", "options", "answer"},
	},
}

const quizSchemaURL = "schema://quiz.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func quizSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with
		// typed slices, so round-trip the definition.
		defBytes, err := json.Marshal(QuizSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(quizSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(quizSchemaURL)
	})
	return compiled, compileErr
}

// ValidateSchema checks a decoded JSON document against QuizSchema.
func ValidateSchema(doc any) error {
	s, err := quizSchema()
	if err != nil {
		return fmt.Errorf("compile quiz schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
