package documents

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/bryanwahyu/automaton-legal/internal/application"
	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

// Service ingests uploads and serves their extracted text.
type Service struct {
	Repo      domain.Repository
	Extractor domain.Extractor
	// Sources is optional; when set the original upload is kept for previews.
	Sources domain.SourceStore
	Clock   application.Clock
	Log     *logger.Logger
}

// UploadCommand is one uploaded file.
type UploadCommand struct {
	Filename string
	MimeType string
	Data     []byte
}

// UploadResult is what the caller gets back after ingestion.
type UploadResult struct {
	DocumentID string `json:"document_id"`
	Filename   string `json:"filename"`
	Status     string `json:"status"`
}

// Upload extracts text from the file and stores it under a new document id.
func (s *Service) Upload(ctx context.Context, cmd UploadCommand) (UploadResult, error) {
	log := logger.OrNop(s.Log).With("filename", cmd.Filename)
	if len(cmd.Data) == 0 {
		return UploadResult{}, fmt.Errorf("%w: empty upload", domain.ErrExtractionFailed)
	}

	mimeType := cmd.MimeType
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = DetectMimeType(cmd.Filename, cmd.Data)
	}

	text, err := s.Extractor.ExtractText(ctx, cmd.Data, mimeType)
	if err != nil {
		log.Warn("text extraction failed", "mime_type", mimeType, "error", err)
		return UploadResult{}, err
	}
	if strings.TrimSpace(text) == "" {
		return UploadResult{}, fmt.Errorf("%w: no text detected, scan may be blurry or low quality", domain.ErrExtractionFailed)
	}

	doc := &domain.Document{
		ID:        domain.DocumentID(uuid.NewString()),
		Filename:  cmd.Filename,
		MimeType:  mimeType,
		Text:      text,
		CreatedAt: application.OrSystem(s.Clock).Now(),
	}

	if s.Sources != nil {
		key := fmt.Sprintf("uploads/%s/%s", doc.ID, path.Base(cmd.Filename))
		if _, err := s.Sources.Put(ctx, key, bytes.NewReader(cmd.Data), int64(len(cmd.Data)), mimeType); err != nil {
			log.Warn("keep original upload", "key", key, "error", err)
		} else {
			doc.SourceKey = key
		}
	}

	if err := s.Repo.Save(ctx, doc); err != nil {
		return UploadResult{}, fmt.Errorf("store document text: %w", err)
	}
	log.Info("document stored", "document_id", doc.ID, "text_len", len(text))

	return UploadResult{DocumentID: string(doc.ID), Filename: cmd.Filename, Status: "processed"}, nil
}

// Text returns the stored text of a document.
func (s *Service) Text(ctx context.Context, id string) (string, error) {
	doc, err := s.Repo.Get(ctx, domain.DocumentID(id))
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

// Preview returns a temporary URL to the original upload.
func (s *Service) Preview(ctx context.Context, id string) (string, error) {
	doc, err := s.Repo.Get(ctx, domain.DocumentID(id))
	if err != nil {
		return "", err
	}
	if s.Sources == nil || doc.SourceKey == "" {
		return "", fmt.Errorf("%w: no preview kept for %s", domain.ErrNotFound, id)
	}
	return s.Sources.PresignedURL(ctx, doc.SourceKey)
}
