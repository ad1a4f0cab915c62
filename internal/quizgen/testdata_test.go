package quizgen

import (
	"encoding/json"
	"fmt"
)

const singleRecord = `[{"question":"Q","options":["A","B","C","D"],"answer":"B"}]`

func fenced(body string) string {
	return "```json\n" + body + "\n```"
}

// fifteenQuestions returns a well-formed 15-record array as compact JSON.
func fifteenQuestions() ([]Question, string) {
	qs := make([]Question, 15)
	for i := range qs {
		qs[i] = Question{
			Question: fmt.Sprintf("Question %d?", i+1),
			Options:  []string{"Alpha", "Bravo", "Charlie", "Delta"},
			Answer:   []string{"Alpha", "Bravo", "Charlie", "Delta"}[i%4],
		}
	}
	b, _ := json.Marshal(qs)
	return qs, string(b)
}
