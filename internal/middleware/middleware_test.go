package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
)

func TestValidateDocumentID(t *testing.T) {
	assert.NoError(t, ValidateDocumentID("6f1c2a9e-1b7d-4a53-9b0e-3c1d2e4f5a6b"))
	assert.Error(t, ValidateDocumentID(""))
	assert.Error(t, ValidateDocumentID("../etc/passwd"))
	assert.Error(t, ValidateDocumentID(string(make([]byte, 65))))
}

func TestValidateAnalysisType(t *testing.T) {
	got, err := ValidateAnalysisType(" Obligation ")
	require.NoError(t, err)
	assert.Equal(t, persona.TypeObligation, got)

	_, err = ValidateAnalysisType("poetry")
	require.ErrorIs(t, err, persona.ErrNotSupported)
	assert.Contains(t, err.Error(), "ambiguity, framework, summary, obligation, risk")
}

func TestValidateFilename(t *testing.T) {
	assert.NoError(t, ValidateFilename("contract.pdf"))
	assert.Error(t, ValidateFilename(" "))
	assert.Error(t, ValidateFilename("a/b.pdf"))
	assert.Error(t, ValidateFilename("..pdf"))
}

func TestSanitizeAndLimit(t *testing.T) {
	assert.Equal(t, "ab\ncd", SanitizeString(" a\x00b\ncd\x07 "))
	assert.Equal(t, 20, ValidateLimit(0))
	assert.Equal(t, 100, ValidateLimit(1000))
	assert.Equal(t, 7, ValidateLimit(7))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(GetClientFromContext(r.Context())))
	})
}

func TestAPIKeyAuth(t *testing.T) {
	h := APIKeyAuth(map[string]string{"frontend": "secret"})(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/personas", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/personas", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/personas", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "frontend", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIKeyAuthDisabled(t *testing.T) {
	rec := httptest.NewRecorder()
	APIKeyAuth(nil)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/personas", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := RateLimitMiddleware(2, 0)(okHandler())
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/personas", nil)
		req.RemoteAddr = "10.0.0.1:" + string(rune('1'+i)) + "000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestClientIP(t *testing.T) {
	assert.Equal(t, "10.0.0.1", clientIP("10.0.0.1:5555"))
	assert.Equal(t, "bogus", clientIP("bogus"))
}
