package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForAnalysisTitle(t *testing.T) {
	r := ForAnalysis("doc-1", []Section{{Label: "Summary", Text: "x"}})
	assert.Equal(t, "Analysis Report for Document ID: doc-1", r.Title)
	assert.Len(t, r.Sections, 1)
}

func TestForRewrite(t *testing.T) {
	r := ForRewrite("doc-2", "new text")
	assert.Equal(t, "Rephrased Contract for Document ID: doc-2", r.Title)
	assert.Equal(t, []Section{{Text: "new text"}}, r.Sections)
}

func TestPairDropsExtras(t *testing.T) {
	got := Pair([]string{"A", "B", "C"}, []string{"a", "b"})
	assert.Equal(t, []Section{{Label: "A", Text: "a"}, {Label: "B", Text: "b"}}, got)
	assert.Empty(t, Pair(nil, []string{"a"}))
}
