package quizgen

import (
	"fmt"
	"strings"
)

const promptTemplate = `
Generate %d multiple choice questions with 4 options and correct answers based on the following content.

Content:
"""
%s
"""

Format:
[
    {
        "question": "...",
        "options": ["A", "B", "C", "D"],
        "answer": "B"
    },
    ...
]
`

// BuildPrompt embeds the document text into the question request. A count
// below one falls back to DefaultQuestionCount.
func BuildPrompt(text string, count int) string {
	if count < 1 {
		count = DefaultQuestionCount
	}
	// The text goes in verbatim; only the count is formatted.
	head, tail, _ := strings.Cut(promptTemplate, "%s")
	return fmt.Sprintf(head, count) + text + tail
}
