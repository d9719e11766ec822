package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-phonemize/internal/phonemize"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// Phonemizer runs the text-to-pronunciation pipeline for one request.
type Phonemizer interface {
	Phonemize(ctx context.Context, text string) (*phonemize.Result, error)
}

// PipelineSet resolves a request's language code to its pipeline. The
// empty code resolves to the server's default language.
type PipelineSet interface {
	Pipeline(code string) (Phonemizer, bool)
	Languages() []string
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxTextBytes   int
	workers        int
	requestTimeout time.Duration
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		maxTextBytes:   65536,
		workers:        4,
		requestTimeout: 30 * time.Second,
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxTextBytes sets the maximum allowed text length in bytes for POST /phonemize.
func WithMaxTextBytes(n int) Option {
	return func(o *options) { o.maxTextBytes = n }
}

// WithWorkers sets the maximum number of concurrent pipeline runs.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithRequestTimeout sets the per-request pipeline deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	pipelines PipelineSet
	opts      options
	sem       chan struct{} // semaphore for worker pool
	log       *slog.Logger
}

// NewHandler returns an http.Handler serving /health, /languages, and
// POST /phonemize.
func NewHandler(pipelines PipelineSet, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		pipelines: pipelines,
		opts:      opts,
		log:       opts.logger,
	}
	if opts.workers > 0 {
		h.sem = make(chan struct{}, opts.workers)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/languages", h.handleLanguages)
	mux.HandleFunc("/phonemize", h.handlePhonemize)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildVersion(),
	})
}

func (h *handler) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	codes := h.pipelines.Languages()
	if codes == nil {
		codes = []string{}
	}
	writeJSON(w, http.StatusOK, codes)
}

type phonemizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// WordResponse is one word or punctuation token of the response.
type WordResponse struct {
	Text     string            `json:"text"`
	IsWord   bool              `json:"is_word"`
	Features map[string]string `json:"features,omitempty"`
	Phonemes string            `json:"phonemes"`
	Break    string            `json:"break,omitempty"`
	Guessed  bool              `json:"guessed,omitempty"`
	Failed   bool              `json:"failed,omitempty"`
}

// SentenceResponse is one sentence of the response.
type SentenceResponse struct {
	Raw   string         `json:"raw_text"`
	Break string         `json:"break"`
	Words []WordResponse `json:"words"`
}

type phonemizeResponse struct {
	Sentences []SentenceResponse `json:"sentences"`
	Warnings  []string           `json:"warnings,omitempty"`
}

// BuildResponse flattens a pipeline result into the wire shape, joining
// each word's phonemes with single spaces.
func BuildResponse(res *phonemize.Result) phonemizeResponse {
	out := phonemizeResponse{Sentences: BuildSentences(res)}
	for _, warn := range res.Warnings {
		out.Warnings = append(out.Warnings, warn.String())
	}
	return out
}

// BuildSentences converts resolved sentences into response records; the
// CLI emits these as JSON lines and the server nests them in its body.
func BuildSentences(res *phonemize.Result) []SentenceResponse {
	sentences := make([]SentenceResponse, 0, len(res.Sentences))
	for _, s := range res.Sentences {
		sr := SentenceResponse{
			Raw:   s.Raw,
			Break: s.Break.String(),
			Words: make([]WordResponse, 0, len(s.Tokens)),
		}
		for _, tok := range s.Tokens {
			wr := WordResponse{
				Text:     tok.Text,
				IsWord:   tok.IsWord,
				Features: tok.Features,
				Phonemes: strings.Join(tok.Phonemes, " "),
				Guessed:  tok.Guessed,
				Failed:   tok.Failed,
			}
			if !tok.IsWord {
				wr.Break = tok.Break.String()
			}
			sr.Words = append(sr.Words, wr)
		}
		sentences = append(sentences, sr)
	}
	return sentences
}

func (h *handler) handlePhonemize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return
	}

	var req phonemizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text field is required")
		return
	}

	if len(req.Text) > h.opts.maxTextBytes {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("text exceeds maximum size of %d bytes", h.opts.maxTextBytes))
		return
	}

	pipeline, ok := h.pipelines.Pipeline(req.Language)
	if !ok {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unknown language %q (supported: %s)", req.Language, strings.Join(h.pipelines.Languages(), ", ")))
		return
	}

	// Acquire a worker slot, honouring context cancellation while waiting.
	if h.sem != nil {
		select {
		case h.sem <- struct{}{}:
			// slot acquired
		case <-r.Context().Done():
			writeError(w, http.StatusServiceUnavailable, "request cancelled while waiting for worker")
			return
		}
		defer func() { <-h.sem }()
	}

	// Apply per-request timeout.
	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	start := time.Now()
	res, err := pipeline.Phonemize(ctx, req.Text)
	durationMS := time.Since(start).Milliseconds()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			h.log.WarnContext(r.Context(), "phonemization timed out",
				slog.Int("text_len", len(req.Text)),
				slog.Int64("duration_ms", durationMS),
				slog.String("error", err.Error()),
			)
			writeError(w, http.StatusGatewayTimeout, "phonemization timed out")
			return
		}
		h.log.ErrorContext(r.Context(), "phonemization failed",
			slog.Int("text_len", len(req.Text)),
			slog.Int64("duration_ms", durationMS),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.InfoContext(r.Context(), "phonemization complete",
		slog.Int("text_len", len(req.Text)),
		slog.Int("sentences", len(res.Sentences)),
		slog.Int("warnings", len(res.Warnings)),
		slog.Int64("duration_ms", durationMS),
	)

	writeJSON(w, http.StatusOK, BuildResponse(res))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server: wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	addr            string
	handler         http.Handler
	log             *slog.Logger
	shutdownTimeout time.Duration
}

// New builds a Server listening on addr around a set of per-language
// pipelines.
func New(addr string, pipelines PipelineSet, optFns ...Option) *Server {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Server{
		addr:            addr,
		handler:         NewHandler(pipelines, optFns...),
		log:             opts.logger,
		shutdownTimeout: 30 * time.Second,
	}
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
