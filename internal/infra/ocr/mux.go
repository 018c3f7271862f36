package ocr

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

// Mux routes text/* uploads to Text and everything else to Scanned.
type Mux struct {
	Text    domain.Extractor
	Scanned domain.Extractor // nil when no OCR backend is configured
}

func (m *Mux) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	mt := strings.ToLower(strings.TrimSpace(strings.SplitN(mimeType, ";", 2)[0]))
	if strings.HasPrefix(mt, "text/") {
		return m.Text.ExtractText(ctx, data, mt)
	}
	if m.Scanned == nil {
		return "", fmt.Errorf("%w: no OCR backend configured for %s", domain.ErrExtractionFailed, mt)
	}
	return m.Scanned.ExtractText(ctx, data, mt)
}
