package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/report"
)

func TestRenderAnalysisReport(t *testing.T) {
	var buf bytes.Buffer
	r := domain.ForAnalysis("abc-123", []domain.Section{
		{Label: "Summary", Text: "Line one\nLine two"},
		{Label: "Risk", Text: ""},
	})
	require.NoError(t, NewPDF(false).Render(&buf, r))

	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Contains(t, out, "Analysis Report for Document ID: abc-123")
	assert.Contains(t, out, "(Summary)")
	assert.Contains(t, out, "(Line one)")
	assert.Contains(t, out, "(Line two)")
	assert.Contains(t, out, "(Risk)")
}

func TestRenderTransliterates(t *testing.T) {
	var buf bytes.Buffer
	r := domain.ForRewrite("d1", "The \u201cSeller\u201d \u2014 shall pay\u2026 \u6f22")
	require.NoError(t, NewPDF(false).Render(&buf, r))

	assert.Contains(t, buf.String(), `The "Seller" - shall pay... ?`)
}

func TestRenderCarriageReturnBreaks(t *testing.T) {
	var buf bytes.Buffer
	r := domain.ForAnalysis("d1", []domain.Section{
		{Label: "Summary", Text: "Line one\rLine two\r\nLine three"},
	})
	require.NoError(t, NewPDF(false).Render(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "(Line one)")
	assert.Contains(t, out, "(Line two)")
	assert.Contains(t, out, "(Line three)")
	assert.NotContains(t, out, "Line oneLine two")
}

func TestRenderWrapsLongLabel(t *testing.T) {
	var buf bytes.Buffer
	label := strings.TrimSpace(strings.Repeat("Deadline and Obligation Tracker ", 12))
	r := domain.ForAnalysis("d1", []domain.Section{{Label: label, Text: "body"}})
	require.NoError(t, NewPDF(false).Render(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "(Deadline and Obligation Tracker")
	assert.NotContains(t, out, "("+label+")")
}

func TestRenderNoSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPDF(true).Render(&buf, domain.ForAnalysis("x", nil)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestLatin1(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"\u2018quoted\u2019", "'quoted'"},
		{"a\u00a0b", "a b"},
		{"café", "caf\xe9"},
		{"tab\there", "tab    here"},
		{"bell\x07", "bell"},
		{"\u6f22\u5b57", "??"},
		{"line\nbreak", "line\nbreak"},
		{"cr\rbreak", "cr\nbreak"},
		{"crlf\r\nbreak", "crlf\nbreak"},
		{"bad\xffutf8", "bad?utf8"},
	}
	for _, tt := range tests {
		got, err := Latin1(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitLines("a\r\nb\rc\n"))
	assert.Nil(t, splitLines(""))
}
