package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/automaton-legal/internal/application/analysis"
	appdocs "github.com/bryanwahyu/automaton-legal/internal/application/documents"
	appreports "github.com/bryanwahyu/automaton-legal/internal/application/reports"
	apprewrite "github.com/bryanwahyu/automaton-legal/internal/application/rewrite"
	domai "github.com/bryanwahyu/automaton-legal/internal/domain/ai"
	"github.com/bryanwahyu/automaton-legal/internal/domain/documents"
	"github.com/bryanwahyu/automaton-legal/internal/domain/persona"
	"github.com/bryanwahyu/automaton-legal/internal/domain/report"
	"github.com/bryanwahyu/automaton-legal/internal/infra/ai/prompt"
	"github.com/bryanwahyu/automaton-legal/internal/logger"
	"github.com/bryanwahyu/automaton-legal/internal/middleware"
)

var (
	// errBadRequest marks caller mistakes that are not domain failures.
	errBadRequest = errors.New("bad request")
	// errTooLarge marks uploads over the configured size limit.
	errTooLarge = errors.New("upload too large")
)

// Services are the use cases the router exposes.
type Services struct {
	Documents *appdocs.Service
	Analysis  *appanalysis.Service
	Reports   *appreports.Service
	Rewrite   *apprewrite.Service
}

// Options tune the middleware stack.
type Options struct {
	AllowedOrigins []string
	APIKeys        map[string]string
	RateCapacity   int
	RateRefill     int
	MaxUploadBytes int64
	HealthCheckers map[string]middleware.HealthChecker
	Log            *logger.Logger
}

type Router struct {
	svc       Services
	log       *logger.Logger
	maxUpload int64
}

func NewRouter(svc Services, opts Options) http.Handler {
	r := &Router{svc: svc, log: logger.OrNop(opts.Log), maxUpload: opts.MaxUploadBytes}
	if r.maxUpload <= 0 {
		r.maxUpload = 20 << 20
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	mux.Use(middleware.Logging(r.log))
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.APIKeyAuth(opts.APIKeys))
	if opts.RateCapacity > 0 {
		mux.Use(middleware.RateLimitMiddleware(opts.RateCapacity, opts.RateRefill))
	}

	mux.Get("/health", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/healthz", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/readyz", middleware.ReadinessHandler)
	mux.Get("/livez", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Get("/personas", r.wrap(r.handlePersonas))
	mux.Post("/upload", r.wrap(r.handleUpload))
	mux.Post("/chat", r.handleChat)
	mux.Post("/analyze/{document_id}", r.wrap(r.handleAnalyze))
	mux.Post("/export-pdf/{document_id}", r.wrap(r.handleExportPDF))
	mux.Post("/rewrite-contract/{document_id}", r.wrap(r.handleRewrite))
	mux.Get("/contract-text/{document_id}", r.wrap(r.handleContractText))
	mux.Get("/documents/{document_id}/preview", r.wrap(r.handlePreview))
	mux.Get("/documents/{document_id}/analyses", r.wrap(r.handleAnalyses))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// startedWriter remembers whether the response header has gone out.
type startedWriter struct {
	http.ResponseWriter
	started bool
}

func (w *startedWriter) WriteHeader(code int) {
	w.started = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *startedWriter) Write(b []byte) (int, error) {
	w.started = true
	return w.ResponseWriter.Write(b)
}

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		sw := &startedWriter{ResponseWriter: w}
		err := h(sw, req)
		if err == nil {
			return
		}
		// the status line is already sent, nothing left to report to the client
		if sw.started {
			r.log.Warn("response write failed", "path", req.URL.Path, "error", err)
			return
		}
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			r.log.Error("request failed", "path", req.URL.Path, "error", err)
		}
		writeJSON(w, status, map[string]string{"detail": err.Error()})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, persona.ErrNotSupported),
		errors.Is(err, documents.ErrExtractionFailed):
		return http.StatusBadRequest
	case errors.Is(err, documents.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domai.ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, domai.ErrRewriteFailed),
		errors.Is(err, domai.ErrCompletionService):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func decodeBody(req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

func documentID(req *http.Request) (string, error) {
	id := chi.URLParam(req, "document_id")
	if err := middleware.ValidateDocumentID(id); err != nil {
		return "", fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return id, nil
}

// GET /personas
func (r *Router) handlePersonas(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, http.StatusOK, persona.All())
}

// POST /upload (multipart, field "file")
func (r *Router) handleUpload(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxUpload)
	file, header, err := req.FormFile("file")
	if err != nil {
		if tooLarge(err) {
			return fmt.Errorf("%w: limit is %d bytes", errTooLarge, r.maxUpload)
		}
		return fmt.Errorf("%w: file is required: %v", errBadRequest, err)
	}
	defer file.Close()

	name := middleware.SanitizeString(filepath.Base(header.Filename))
	if err := middleware.ValidateFilename(name); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	data, err := io.ReadAll(file)
	if err != nil {
		if tooLarge(err) {
			return fmt.Errorf("%w: limit is %d bytes", errTooLarge, r.maxUpload)
		}
		return fmt.Errorf("%w: read upload: %v", errBadRequest, err)
	}

	res, err := r.svc.Documents.Upload(req.Context(), appdocs.UploadCommand{
		Filename: name,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		return err
	}
	middleware.IncrementUploads()
	return writeJSON(w, http.StatusOK, res)
}

// POST /chat
// Single-shot dispatch: failures are reported inside the response body.
func (r *Router) handleChat(w http.ResponseWriter, req *http.Request) {
	var body struct {
		Message    string `json:"message"`
		DocumentID string `json:"document_id"`
		AgentType  string `json:"agent_type"`
	}
	agent := string(persona.TypeSummary)
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusOK, map[string]string{"response": "Error: invalid request body", "agent": agent})
		return
	}
	if strings.TrimSpace(body.AgentType) != "" {
		agent = string(persona.ParseType(body.AgentType))
	}

	res, err := r.svc.Analysis.Analyze(req.Context(), body.DocumentID, persona.Type(agent))
	middleware.IncrementAnalyses(err != nil)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]string{"response": "Error: " + err.Error(), "agent": agent})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": res.Text, "agent": agent})
}

// POST /analyze/{document_id}
// Body: {"analysis_type": "ambiguity|framework|summary|obligation|risk"}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	id, err := documentID(req)
	if err != nil {
		return err
	}
	var body struct {
		AnalysisType string `json:"analysis_type"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}
	t, err := middleware.ValidateAnalysisType(body.AnalysisType)
	if err != nil {
		return err
	}

	res, err := r.svc.Analysis.Analyze(req.Context(), id, t)
	middleware.IncrementAnalyses(err != nil)
	if err != nil {
		return err
	}

	resp := map[string]any{"response": res.Text, "agent": string(t)}
	if res.ID != "" {
		resp["id"] = res.ID
	}
	// the core passes risk output through untouched; structure is a bonus when it parses
	if t == persona.TypeRisk {
		if findings, perr := prompt.ParseRiskFindings(res.Text); perr == nil {
			resp["findings"] = findings
		}
	}
	return writeJSON(w, http.StatusOK, resp)
}

// POST /export-pdf/{document_id}
// Body: {"outputs": [...], "agent_names": [...]}
func (r *Router) handleExportPDF(w http.ResponseWriter, req *http.Request) error {
	id, err := documentID(req)
	if err != nil {
		return err
	}
	var body struct {
		Outputs    []string `json:"outputs"`
		AgentNames []string `json:"agent_names"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	exp, err := r.svc.Reports.ExportAnalysis(req.Context(), id, report.Pair(body.AgentNames, body.Outputs))
	if err != nil {
		return err
	}
	middleware.IncrementReports()
	return writeFile(w, exp)
}

// POST /rewrite-contract/{document_id}
// Body: {"original_text": "...", "ambiguities_output": "..."}; either may be
// omitted to use the stored text or the latest recorded ambiguity analysis.
func (r *Router) handleRewrite(w http.ResponseWriter, req *http.Request) error {
	id, err := documentID(req)
	if err != nil {
		return err
	}
	var body struct {
		OriginalText      string `json:"original_text"`
		AmbiguitiesOutput string `json:"ambiguities_output"`
	}
	if err := decodeBody(req, &body); err != nil {
		return err
	}

	original := body.OriginalText
	if strings.TrimSpace(original) == "" {
		if original, err = r.svc.Documents.Text(req.Context(), id); err != nil {
			return err
		}
	}
	findings := body.AmbiguitiesOutput
	if strings.TrimSpace(findings) == "" {
		if findings, err = r.svc.Analysis.LatestResult(req.Context(), id, persona.TypeAmbiguity); err != nil {
			return fmt.Errorf("%w: ambiguities_output is required: %v", errBadRequest, err)
		}
	}

	exp, err := r.svc.Rewrite.RewriteAndExport(req.Context(), id, original, findings)
	if err != nil {
		return err
	}
	middleware.IncrementRewrites()
	return writeFile(w, exp)
}

// GET /contract-text/{document_id}
func (r *Router) handleContractText(w http.ResponseWriter, req *http.Request) error {
	id, err := documentID(req)
	if err != nil {
		return err
	}
	text, err := r.svc.Documents.Text(req.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// GET /documents/{document_id}/preview
func (r *Router) handlePreview(w http.ResponseWriter, req *http.Request) error {
	id, err := documentID(req)
	if err != nil {
		return err
	}
	u, err := r.svc.Documents.Preview(req.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]string{"preview_url": u})
}

// GET /documents/{document_id}/analyses?page=&page_size=
func (r *Router) handleAnalyses(w http.ResponseWriter, req *http.Request) error {
	id, err := documentID(req)
	if err != nil {
		return err
	}
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))

	list, err := r.svc.Analysis.ListHistory(req.Context(), id, page, middleware.ValidateLimit(size))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, list)
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func writeFile(w http.ResponseWriter, exp *appreports.Export) error {
	w.Header().Set("Content-Type", exp.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(exp.Data)))
	if exp.URL != "" {
		w.Header().Set("X-Report-URL", exp.URL)
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(exp.Data)
	return err
}
