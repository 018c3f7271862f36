package persona

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEveryType(t *testing.T) {
	for _, typ := range Types() {
		p, err := Lookup(typ)
		require.NoError(t, err, typ)
		assert.Equal(t, typ, p.Type)
		assert.NotEmpty(t, p.Role)
		assert.NotEmpty(t, p.Prompt)
		assert.NotEmpty(t, p.ExpectedOutput)
		assert.Equal(t, DefaultModel, p.Model)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("poetry")
	require.ErrorIs(t, err, ErrNotSupported)
	assert.Contains(t, err.Error(), "poetry")
}

func TestTypesOrderAndCopy(t *testing.T) {
	got := Types()
	assert.Equal(t, []Type{TypeAmbiguity, TypeFramework, TypeSummary, TypeObligation, TypeRisk}, got)

	got[0] = "mutated"
	assert.Equal(t, TypeAmbiguity, Types()[0])
}

func TestLookupReturnsCopy(t *testing.T) {
	p, err := Lookup(TypeSummary)
	require.NoError(t, err)
	p.Prompt = "changed"

	again, err := Lookup(TypeSummary)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Prompt)
}

func TestOnlyRiskHasPlaceholder(t *testing.T) {
	for _, p := range All() {
		if p.Type == TypeRisk {
			assert.True(t, p.HasPlaceholder())
			assert.Equal(t, 1, strings.Count(p.Prompt, InputPlaceholder))
			continue
		}
		assert.False(t, p.HasPlaceholder(), p.Type)
	}
}

func TestRiskPromptAsksForJSONWithoutInvention(t *testing.T) {
	p, err := Lookup(TypeRisk)
	require.NoError(t, err)
	assert.Contains(t, p.Prompt, `"clause type"`)
	assert.Contains(t, p.Prompt, `"clause text"`)
	assert.Contains(t, p.Prompt, `"risk description"`)
	assert.Contains(t, p.Prompt, "Do NOT add any extra details")
}

func TestParseType(t *testing.T) {
	assert.Equal(t, TypeRisk, ParseType("  RISK "))
	assert.Equal(t, Type("unknown"), ParseType("Unknown"))
}
