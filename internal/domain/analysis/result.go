package analysis

import (
	"encoding/json"
	"fmt"
)

// RawResult is whatever the execution engine got back. It is closed to the
// three shapes below.
type RawResult interface {
	fmt.Stringer
	rawResult()
}

// StructuredResult carries a primary raw text plus provider metadata.
type StructuredResult struct {
	Raw          string `json:"raw"`
	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
	TotalTokens  int    `json:"total_tokens,omitempty"`
}

// PlainText is a result that already is a string.
type PlainText string

// Other wraps any representation the engine could not classify.
type Other struct {
	Value any
}

func (StructuredResult) rawResult() {}
func (PlainText) rawResult()        {}
func (Other) rawResult()            {}

func (r StructuredResult) String() string {
	// only strings and ints, Marshal cannot fail
	b, _ := json.Marshal(r)
	return string(b)
}

func (p PlainText) String() string { return string(p) }

func (o Other) String() string {
	if o.Value == nil {
		return ""
	}
	// fmt recovers from panicking String methods on its own.
	return fmt.Sprintf("%v", o.Value)
}

// Normalize flattens r into the canonical result string. It never fails:
// a non-empty raw attribute wins, anything else falls back to the result's
// own string form.
func Normalize(r RawResult) string {
	switch v := r.(type) {
	case nil:
		return ""
	case StructuredResult:
		if v.Raw != "" {
			return v.Raw
		}
		return v.String()
	case *StructuredResult:
		if v == nil {
			return ""
		}
		return Normalize(*v)
	default:
		return v.String()
	}
}
