package quizgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	opts := []string{"Paris", "London", "Rome", "Berlin"}

	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"valid", Question{Question: "Capital of Italy?", Options: opts, Answer: "Rome"}, false},
		{"empty question", Question{Question: "  ", Options: opts, Answer: "Rome"}, true},
		{"three options", Question{Question: "Q", Options: opts[:3], Answer: "Rome"}, true},
		{"five options", Question{Question: "Q", Options: append([]string{"Oslo"}, opts...), Answer: "Rome"}, true},
		{"blank option", Question{Question: "Q", Options: []string{"Paris", "", "Rome", "Berlin"}, Answer: "Rome"}, true},
		{"duplicate option", Question{Question: "Q", Options: []string{"Paris", "paris ", "Rome", "Berlin"}, Answer: "Rome"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.q)
			if tt.wantErr {
				assert.NotNil(t, err)
				assert.Equal(t, "structural", err.Validator)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestAnswerIndex(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		answer  string
		want    int
		wantOK  bool
	}{
		{"exact text", []string{"Paris", "London", "Rome", "Berlin"}, "Rome", 2, true},
		{"letter", []string{"Paris", "London", "Rome", "Berlin"}, "B", 1, true},
		{"lowercase letter", []string{"Paris", "London", "Rome", "Berlin"}, "d", 3, true},
		{"letter options", []string{"A", "B", "C", "D"}, "B", 1, true},
		{"labelled options", []string{"A) Paris", "B) London", "C) Rome", "D) Berlin"}, "London", 1, true},
		{"ambiguous substring", []string{"Rome, Italy", "Rome, Georgia", "Paris", "Oslo"}, "Rome", 0, false},
		{"no match", []string{"Paris", "London", "Rome", "Berlin"}, "Madrid", 0, false},
		{"letter out of range", []string{"Paris", "London"}, "D", 0, false},
		{"empty", []string{"Paris", "London", "Rome", "Berlin"}, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AnswerIndex(Question{Options: tt.options, Answer: tt.answer})
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAnswerValidator(t *testing.T) {
	v := &AnswerValidator{}
	opts := []string{"Paris", "London", "Rome", "Berlin"}

	assert.Nil(t, v.Validate(Question{Options: opts, Answer: "C"}))
	assert.NotNil(t, v.Validate(Question{Options: opts, Answer: ""}))
	assert.NotNil(t, v.Validate(Question{Options: opts, Answer: "Madrid"}))
}
