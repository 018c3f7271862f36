package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bryanwahyu/automaton-legal/internal/application"
	"github.com/bryanwahyu/automaton-legal/internal/domain/analyst"
	domain "github.com/bryanwahyu/automaton-legal/internal/domain/analysis"
	"github.com/bryanwahyu/automaton-legal/internal/domain/documents"
	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

// Service runs one persona against one stored document.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	Docs    documents.Repository
	Builder *Builder
	Engine  *Engine
	// History is optional; when set every successful result is recorded.
	History analyst.Repository
	Clock   application.Clock
	Log     *logger.Logger
}

// Result is the canonical outcome of one analysis run.
type Result struct {
	ID           string       `json:"id,omitempty"`
	DocumentID   string       `json:"document_id"`
	AnalysisType persona.Type `json:"analysis_type"`
	Text         string       `json:"response"`
}

// Analyze fetches the document text, builds the task, runs it and normalizes
// the output. The analysis type is checked before anything else is touched.
func (s *Service) Analyze(ctx context.Context, documentID string, t persona.Type) (*Result, error) {
	log := logger.OrNop(s.Log).With("document_id", documentID, "analysis_type", string(t))

	if _, err := persona.Lookup(t); err != nil {
		return nil, err
	}

	doc, err := s.Docs.Get(ctx, documents.DocumentID(documentID))
	if err != nil {
		return nil, err
	}

	res, err := s.AnalyzeText(ctx, t, doc.Text)
	if err != nil {
		log.Warn("analysis failed", "error", err)
		return nil, err
	}
	res.DocumentID = documentID

	if s.History != nil {
		a := &analyst.Analysis{
			ID:         analyst.AnalysisID(uuid.NewString()),
			DocumentID: documentID,
			Type:       string(t),
			Result:     res.Text,
			CreatedAt:  application.OrSystem(s.Clock).Now(),
		}
		// the caller already has its answer; a history write failure only gets logged
		if err := s.History.Save(ctx, a); err != nil {
			log.Error("save analysis history", "error", err)
		} else {
			res.ID = string(a.ID)
		}
	}

	log.Info("analysis done", "result_len", len(res.Text))
	return res, nil
}

// AnalyzeText runs build, run and normalize on text that is already in hand.
func (s *Service) AnalyzeText(ctx context.Context, t persona.Type, text string) (*Result, error) {
	task, err := s.builder().Build(t, text)
	if err != nil {
		return nil, err
	}
	raw, err := s.Engine.Run(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("run %s analysis: %w", t, err)
	}
	return &Result{AnalysisType: t, Text: domain.Normalize(raw)}, nil
}

// ListHistory lists recorded analyses for a document, newest first.
func (s *Service) ListHistory(ctx context.Context, documentID string, page, pageSize int) ([]*analyst.Analysis, error) {
	if s.History == nil {
		return []*analyst.Analysis{}, nil
	}
	return s.History.Paginate(ctx, documentID, page, pageSize)
}

// LatestResult returns the newest recorded result of type t for a document,
// or documents.ErrNotFound when there is none.
func (s *Service) LatestResult(ctx context.Context, documentID string, t persona.Type) (string, error) {
	if s.History == nil {
		return "", fmt.Errorf("%w: no %s analysis recorded for %s", documents.ErrNotFound, t, documentID)
	}
	a, err := s.History.LatestByType(ctx, documentID, string(t))
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", fmt.Errorf("%w: no %s analysis recorded for %s", documents.ErrNotFound, t, documentID)
	}
	return a.Result, nil
}

func (s *Service) builder() *Builder {
	if s.Builder == nil {
		return &Builder{Log: s.Log}
	}
	return s.Builder
}
