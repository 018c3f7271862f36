package rewrite

import (
	"context"
	"fmt"
	"strings"

	"github.com/bryanwahyu/automaton-legal/internal/application/reports"
	domai "github.com/bryanwahyu/automaton-legal/internal/domain/ai"
	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
	"github.com/bryanwahyu/automaton-legal/internal/domain/report"
	"github.com/bryanwahyu/automaton-legal/internal/infra/ai/prompt"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

// MaxTokens bounds the length of a rewritten contract.
const MaxTokens = 4096

// Service rewrites contracts using ambiguity findings.
type Service struct {
	Client  domai.Completer
	Model   string
	Reports *reports.Service
	Log     *logger.Logger
}

// Rewrite issues one completion call and returns its trimmed text.
// Any failure, including an empty answer, is ErrRewriteFailed.
func (s *Service) Rewrite(ctx context.Context, original, findings string) (string, error) {
	model := s.Model
	if model == "" {
		model = persona.DefaultModel
	}
	c, err := s.Client.Complete(ctx, domai.Request{
		Model:     model,
		Prompt:    prompt.Rewrite(original, findings),
		MaxTokens: MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domai.ErrRewriteFailed, err)
	}
	if c == nil {
		return "", fmt.Errorf("%w: empty response", domai.ErrRewriteFailed)
	}
	out := strings.TrimSpace(c.Text)
	if out == "" {
		return "", fmt.Errorf("%w: empty response", domai.ErrRewriteFailed)
	}

	logger.OrNop(s.Log).Info("contract rewritten", "original_len", len(original), "rewritten_len", len(out))
	return out, nil
}

// RewriteAndExport rewrites the contract and renders it as a downloadable file.
func (s *Service) RewriteAndExport(ctx context.Context, documentID, original, findings string) (*reports.Export, error) {
	text, err := s.Rewrite(ctx, original, findings)
	if err != nil {
		return nil, err
	}
	return s.Reports.Export(ctx, report.ForRewrite(documentID, text), "rephrased_contract_"+documentID)
}
