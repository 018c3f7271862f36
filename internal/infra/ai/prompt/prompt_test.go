package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiskFindings(t *testing.T) {
	raw := "Here are the risks:\n```json\n[\n" +
		`{"clause type": "Termination", "clause text": "may terminate at any time", "risk description": "unilateral"},` +
		`{"clause type": "", "clause text": "", "risk description": ""}` +
		"\n]\n```"

	got, err := ParseRiskFindings(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, RiskFinding{
		ClauseType:      "Termination",
		ClauseText:      "may terminate at any time",
		RiskDescription: "unilateral",
	}, got[0])
}

func TestParseRiskFindingsNoArray(t *testing.T) {
	_, err := ParseRiskFindings("No risky clauses were found.")
	require.ErrorIs(t, err, ErrNoFindings)

	_, err = ParseRiskFindings("[not json]")
	require.Error(t, err)
}

func TestSystem(t *testing.T) {
	assert.Equal(t, "You are Contract Summarizer.\nYour personal goal is: Summarize.\nBackground.",
		System(" Contract Summarizer ", "Summarize.", "Background."))
	assert.Equal(t, "You are X.", System("X", "", ""))
}

func TestTask(t *testing.T) {
	got := Task("Do it.", "the contract", "desc", "a list")
	assert.Equal(t, "Do it.\n\nCurrent Task: desc\n\nContract text:\nthe contract\n\nThis is the expected criteria for your final answer: a list", got)
	assert.Equal(t, "Do it.", Task("Do it.", "", "", ""))
}

func TestRewritePrompt(t *testing.T) {
	got := Rewrite("ORIGINAL", "FINDINGS")
	assert.Contains(t, got, "Contract Text:\nORIGINAL")
	assert.Contains(t, got, "Ambiguities and Suggestions:\nFINDINGS")
	assert.Contains(t, got, "Rephrased Contract:")
}
