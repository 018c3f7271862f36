package rewrite

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/automaton-legal/internal/application/reports"
	domai "github.com/bryanwahyu/automaton-legal/internal/domain/ai"
	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
	pdfreport "github.com/bryanwahyu/automaton-legal/internal/infra/report"
)

type cannedCompleter struct {
	out  *domai.Completion
	err  error
	last domai.Request
}

func (c *cannedCompleter) Complete(_ context.Context, req domai.Request) (*domai.Completion, error) {
	c.last = req
	return c.out, c.err
}

const (
	original = "The supplier shall deliver goods in a reasonable time."
	findings = "'reasonable time' is vague; use 'within 14 days'."
)

func TestRewrite(t *testing.T) {
	c := &cannedCompleter{out: &domai.Completion{Text: "\n  The supplier shall deliver goods within 14 days.  \n"}}
	svc := &Service{Client: c}

	got, err := svc.Rewrite(context.Background(), original, findings)
	require.NoError(t, err)
	assert.Equal(t, "The supplier shall deliver goods within 14 days.", got)
	assert.NotEqual(t, original, got)
	assert.NotEqual(t, findings, got)

	assert.Equal(t, MaxTokens, c.last.MaxTokens)
	assert.Equal(t, persona.DefaultModel, c.last.Model)
	assert.Contains(t, c.last.Prompt, original)
	assert.Contains(t, c.last.Prompt, findings)
	assert.Contains(t, c.last.Prompt, "Rephrased Contract:")
}

func TestRewriteFailures(t *testing.T) {
	tests := map[string]*cannedCompleter{
		"service error": {err: errors.New("timeout")},
		"nil response":  {},
		"blank output":  {out: &domai.Completion{Text: "   "}},
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := (&Service{Client: c}).Rewrite(context.Background(), original, findings)
			require.ErrorIs(t, err, domai.ErrRewriteFailed)
		})
	}
}

func TestRewriteKeepsQuotaCause(t *testing.T) {
	c := &cannedCompleter{err: domai.ErrQuotaExceeded}
	_, err := (&Service{Client: c, Model: "gpt-4o"}).Rewrite(context.Background(), original, findings)
	require.ErrorIs(t, err, domai.ErrRewriteFailed)
	require.ErrorIs(t, err, domai.ErrQuotaExceeded)
	assert.Equal(t, "gpt-4o", c.last.Model)
}

func TestRewriteAndExport(t *testing.T) {
	c := &cannedCompleter{out: &domai.Completion{Text: "Clear contract."}}
	svc := &Service{
		Client:  c,
		Reports: &reports.Service{Renderer: pdfreport.NewPDF(false), TempDir: t.TempDir()},
	}

	exp, err := svc.RewriteAndExport(context.Background(), "doc-7", original, findings)
	require.NoError(t, err)
	assert.Equal(t, "rephrased_contract_doc-7.pdf", exp.Filename)
	assert.True(t, bytes.Contains(exp.Data, []byte("Rephrased Contract for Document ID: doc-7")))
	assert.True(t, bytes.Contains(exp.Data, []byte("(Clear contract.)")))
}
