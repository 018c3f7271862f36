package reports

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bryanwahyu/automaton-legal/internal/application"
	"github.com/bryanwahyu/automaton-legal/internal/domain/report"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
)

// Export is one rendered document ready for download.
type Export struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
	URL         string `json:"url,omitempty"` // set when an artifact store kept a copy
}

// Service renders reports through a temporary file.
type Service struct {
	Renderer report.Renderer
	// Artifacts is optional; when set the rendered file is uploaded and cleaned up by it.
	Artifacts report.ArtifactStore
	// TempDir defaults to os.TempDir().
	TempDir string
	Clock   application.Clock
	Log     *logger.Logger
}

// ExportAnalysis renders the labelled analysis outputs of one document.
func (s *Service) ExportAnalysis(ctx context.Context, documentID string, sections []report.Section) (*Export, error) {
	return s.Export(ctx, report.ForAnalysis(documentID, sections), "analysis_"+documentID)
}

// Export renders r into a uniquely named temp file, reads it back and releases
// the file before returning.
func (s *Service) Export(ctx context.Context, r report.Report, baseName string) (*Export, error) {
	f, err := os.CreateTemp(s.TempDir, "report-*"+s.Renderer.Extension())
	if err != nil {
		return nil, fmt.Errorf("%w: temp file: %v", report.ErrRender, err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := s.Renderer.Render(f, r); err != nil {
		f.Close()
		if errors.Is(err, report.ErrRender) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", report.ErrRender, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRender, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrRender, err)
	}

	out := &Export{
		Filename:    baseName + s.Renderer.Extension(),
		ContentType: s.Renderer.ContentType(),
		Data:        data,
	}

	if s.Artifacts != nil {
		now := application.OrSystem(s.Clock).Now()
		key := fmt.Sprintf("reports/%s/%d-%s", now.Format("2006-01-02"), now.UnixNano(), out.Filename)
		url, err := s.Artifacts.UploadAndCleanup(ctx, path, key)
		if err != nil {
			// the bytes are already in hand, the stored copy is a convenience
			logger.OrNop(s.Log).Warn("report upload failed", "key", key, "error", err)
		} else {
			out.URL = url
		}
	}

	logger.OrNop(s.Log).Info("report rendered", "filename", out.Filename, "bytes", len(data), "sections", len(r.Sections))
	return out, nil
}
