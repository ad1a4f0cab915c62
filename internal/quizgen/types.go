package quizgen

import "encoding/json"

// Question is one multiple-choice question as the model is asked to write
// it. Nothing about the shape is enforced by the generation pipeline.
type Question struct {
	// Question is the question prompt.
	Question string `json:"question"`

	// Options holds the answer choices in display order. The model is asked
	// for exactly four.
	Options []string `json:"options"`

	// Answer names the correct choice: usually the option text, sometimes
	// its letter ("B").
	Answer string `json:"answer"`
}

// Source records where in the model reply the question array was found.
type Source string

const (
	SourceNone   Source = ""
	SourceFenced Source = "fenced"
	SourceRaw    Source = "raw"
)

// Stage names the step at which generation failed.
type Stage string

const (
	StageNone     Stage = ""
	StageConnect  Stage = "connect"
	StageGenerate Stage = "generate"
	StageParse    Stage = "parse"
)

// Result is the outcome of generating and parsing one batch of questions.
// Failures keep their reason; Records collapses them to an empty list.
type Result struct {
	// Items holds each array element exactly as the model wrote it,
	// including fields Question does not know about.
	Items []json.RawMessage

	// Questions is a best-effort typed view of Items, one per element.
	// Fields of the wrong JSON type are carried as their JSON text.
	Questions []Question

	// Source is where the array was read from. Set for parse failures too.
	Source Source

	// Stage is StageNone on success.
	Stage Stage
	Err   error

	// Raw is the unparsed model reply, kept for diagnostics.
	Raw string
}

// OK reports whether questions were recovered.
func (r Result) OK() bool { return r.Err == nil }

// Records returns the array elements to print, or an empty non-nil slice
// when anything failed.
func (r Result) Records() []json.RawMessage {
	if r.Err != nil || r.Items == nil {
		return []json.RawMessage{}
	}
	return r.Items
}

// Failed builds a failed Result for the given stage.
func Failed(stage Stage, err error) Result {
	return Result{Stage: stage, Err: err}
}
