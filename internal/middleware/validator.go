package middleware

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
)

// Input validation and sanitization utilities

var documentIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateDocumentID checks the opaque document token format
func ValidateDocumentID(id string) error {
	if id == "" {
		return fmt.Errorf("document_id cannot be empty")
	}
	if !documentIDPattern.MatchString(id) {
		return fmt.Errorf("invalid document_id format (alphanumeric, dash, underscore only, max 64 chars)")
	}
	return nil
}

// ValidateAnalysisType normalizes s and checks it against the persona registry
func ValidateAnalysisType(s string) (persona.Type, error) {
	t := persona.ParseType(s)
	if _, err := persona.Lookup(t); err != nil {
		allowed := make([]string, 0, 5)
		for _, v := range persona.Types() {
			allowed = append(allowed, string(v))
		}
		return "", fmt.Errorf("%w (allowed: %s)", err, strings.Join(allowed, ", "))
	}
	return t, nil
}

// ValidateFilename rejects names that could escape an object key prefix
func ValidateFilename(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if filepath.Base(name) != name || strings.Contains(name, "..") {
		return fmt.Errorf("invalid filename")
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' || r == '\r' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}
