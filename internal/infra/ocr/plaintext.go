package ocr

import (
	"context"
	"fmt"
	"unicode/utf8"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

// PlainText accepts already-typed documents as they are.
type PlainText struct{}

func (PlainText) ExtractText(_ context.Context, data []byte, _ string) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text upload is not valid UTF-8", domain.ErrExtractionFailed)
	}
	return string(data), nil
}
