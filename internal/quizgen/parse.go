package quizgen

import (
	"encoding/json"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// fencedJSON matches the first ```json block. The tag must be followed by a
// line break and the closing fence must start its own line.
var fencedJSON = regexp.MustCompile("(?s)```json[ \t]*\r?\n(.*?)\r?\n[ \t]*```")

// Parse recovers the question array from a model reply. A fenced ```json
// block wins when present; otherwise the whole reply is decoded. There is
// no second chance: a fenced block that fails to decode is a failure even
// if the surrounding text would have parsed.
//
// Only the array itself is required. Its elements are kept verbatim
// whatever their shape.
func Parse(raw string) Result {
	payload, source := extractPayload(raw)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return Result{
			Source: source,
			Stage:  StageParse,
			Raw:    raw,
			Err: goerr.Wrap(err, "decode question array",
				goerr.V("source", string(source)),
				goerr.V("raw", raw),
			),
		}
	}

	questions := make([]Question, len(items))
	for i, item := range items {
		questions[i] = looseQuestion(item)
	}

	return Result{
		Items:     items,
		Questions: questions,
		Source:    source,
		Raw:       raw,
	}
}

// extractPayload returns the text that should hold the question array.
func extractPayload(raw string) (string, Source) {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return m[1], SourceFenced
	}
	return raw, SourceRaw
}

// looseQuestion reads the known fields of one element without failing.
// Non-objects give a zero Question.
func looseQuestion(item json.RawMessage) Question {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return Question{}
	}

	q := Question{
		Question: looseString(fields["question"]),
		Answer:   looseString(fields["answer"]),
	}

	var opts []json.RawMessage
	if err := json.Unmarshal(fields["options"], &opts); err == nil {
		for _, o := range opts {
			q.Options = append(q.Options, looseString(o))
		}
	}
	return q
}

// looseString returns a JSON string's value, or the JSON text of any other
// value (so an answer of 2 reads as "2"). Missing and null give "".
func looseString(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
