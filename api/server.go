// Package api exposes the highlighter as a JSON HTTP API.
//
// Endpoints:
//
//	POST /api/highlight        body: model.HighlightRequest
//	POST /api/filter           body: {"text":"..."}
//	POST /api/reverse          body: {"text":"..."}
//	POST /api/okuri            body: model.OkuriRequest
//	POST /api/annotate         body: {"text":"..."}
//	GET  /api/readings/{kanji}
//	GET  /health
//	GET  /ws                   one highlight request per text message
package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/rs/cors"

	"kanahighlight/highlight"
	"kanahighlight/kanji"
	"kanahighlight/logger"
	"kanahighlight/lookup"
	"kanahighlight/model"
	"kanahighlight/okurigana"
	"kanahighlight/store"
	"kanahighlight/tokenize"
)

// Option configures a Server.
type Option func(*Server)

// WithStore looks up missing readings in st and caches highlights there.
func WithStore(st *store.Store) Option {
	return func(s *Server) { s.store = st }
}

// WithAnnotator enables /api/annotate.
func WithAnnotator(a *tokenize.Annotator) Option {
	return func(s *Server) { s.annotator = a }
}

// WithDetector is used when the conjugation table finds no okurigana.
func WithDetector(d okurigana.Detector) Option {
	return func(s *Server) { s.detector = d }
}

// WithLogger sets the request and engine logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithOrigins sets the origins allowed by CORS and the websocket. An empty
// list allows any origin.
func WithOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// Server serves the API.
type Server struct {
	plain     *highlight.Highlighter
	okuri     *highlight.Highlighter
	store     *store.Store
	annotator *tokenize.Annotator
	detector  okurigana.Detector
	log       logger.Logger
	origins   []string
}

// New builds a Server.
func New(opts ...Option) *Server {
	s := &Server{log: logger.Nop}
	for _, opt := range opts {
		opt(s)
	}
	s.plain = highlight.New(highlight.WithLogger(s.log))
	okuriOpts := []highlight.Option{highlight.WithLogger(s.log), highlight.WithOkurigana()}
	if s.detector != nil {
		okuriOpts = append(okuriOpts, highlight.WithDetector(s.detector))
	}
	s.okuri = highlight.New(okuriOpts...)
	return s
}

// Handler returns the routes wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/highlight", s.handleHighlight)
	mux.HandleFunc("POST /api/filter", s.handleText(highlight.KanaFilter))
	mux.HandleFunc("POST /api/reverse", s.handleText(highlight.ReverseFurigana))
	mux.HandleFunc("POST /api/okuri", s.handleOkuri)
	mux.HandleFunc("POST /api/annotate", s.handleAnnotate)
	mux.HandleFunc("GET /api/readings/{kanji}", s.handleReadings)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ws", s.handleWebSocket)

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return s.logRequests(c.Handler(mux))
}

func (s *Server) allowedOrigins() []string {
	if len(s.origins) == 0 {
		return []string{"*"}
	}
	return s.origins
}

// ---- errors ------------------------------------------------------------

type errorResponse struct {
	Error string `json:"error"`
}

// badRequest marks an error caused by the request itself.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func statusOf(err error) int {
	var br badRequest
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest
	case errors.Is(err, lookup.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warning("encode error", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	s.writeError(w, status, err.Error())
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest{"body must be JSON: " + err.Error()}
	}
	return nil
}

// logger returns the request's logger when ctx carries one.
func (s *Server) logger(ctx context.Context) logger.Logger {
	if l := logger.FromContext(ctx); l != logger.Nop {
		return l
	}
	return s.log
}

// ---- highlighting --------------------------------------------------------

func singleKanji(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, badRequest{fmt.Sprintf("kanji must be a single character, got %q", s)}
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// source is the store, when configured, then kanjidic.
func (s *Server) source() lookup.Source {
	if s.store != nil {
		return lookup.Chain{s.store, lookup.Kanjidic{}}
	}
	return lookup.Kanjidic{}
}

// Highlight answers one highlight request, from the cache when possible.
func (s *Server) Highlight(ctx context.Context, req model.HighlightRequest) (model.HighlightResponse, error) {
	resp := model.HighlightResponse{ID: model.EnsureID(req.ID)}
	k, err := singleKanji(req.Kanji)
	if err != nil {
		return resp, err
	}
	mode := highlight.KanaOnly
	if req.Mode != "" {
		if mode, err = highlight.ParseMode(req.Mode); err != nil {
			return resp, badRequest{err.Error()}
		}
	}
	// every spelling of a mode shares one cache entry
	req.Mode = mode.String()
	if req.Onyomi == "" && req.Kunyomi == "" {
		on, kun, err := s.source().Readings(ctx, req.Kanji)
		switch {
		case err == nil:
			req.Onyomi, req.Kunyomi = on, kun
		case errors.Is(err, lookup.ErrNotFound):
			s.logger(ctx).Debug("no readings known", "kanji", req.Kanji)
		default:
			return resp, err
		}
	}

	var key string
	if s.store != nil {
		key = store.Key(req)
		if cached, err := s.store.CachedHighlight(ctx, key); err == nil {
			resp.Result, resp.Cached = cached, true
			return resp, nil
		} else if !errors.Is(err, store.ErrNotFound) {
			s.logger(ctx).Warning("cache read failed", "err", err)
		}
	}

	h := s.plain
	if req.Okurigana {
		h = s.okuri
	}
	resp.Result = h.HighlightContext(ctx, k, req.Onyomi, req.Kunyomi, req.Text, mode)

	if s.store != nil {
		if err := s.store.PutHighlight(ctx, key, resp.Result); err != nil {
			s.logger(ctx).Warning("cache write failed", "err", err)
		}
	}
	return resp, nil
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	var req model.HighlightRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	resp, err := s.Highlight(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleText(fn func(string) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req model.TextRequest
		if err := decode(r, &req); err != nil {
			s.fail(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, model.TextResponse{ID: model.EnsureID(req.ID), Result: fn(req.Text)})
	}
}

// Okuri runs the inflection check, falling back to the detector.
func (s *Server) Okuri(ctx context.Context, req model.OkuriRequest) (model.OkuriResponse, error) {
	resp := model.OkuriResponse{ID: model.EnsureID(req.ID)}
	k, err := singleKanji(req.Kanji)
	if err != nil {
		return resp, err
	}
	resp.Result = okurigana.CheckInflection(req.Okurigana, req.Reading, req.Text, k, req.PartOfSpeech)
	if resp.Type == okurigana.NoOkuri && s.detector != nil {
		res, err := s.detector.Detect(ctx, req.Kanji, req.Text, k, req.Reading)
		if err != nil {
			return resp, fmt.Errorf("detecting okurigana: %w", err)
		}
		resp.Result = res
	}
	return resp, nil
}

func (s *Server) handleOkuri(w http.ResponseWriter, r *http.Request) {
	var req model.OkuriRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	resp, err := s.Okuri(r.Context(), req)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	if s.annotator == nil {
		s.writeError(w, http.StatusNotImplemented, "annotation is not configured")
		return
	}
	var req model.TextRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	result, toks, err := s.annotator.Annotate(r.Context(), req.Text)
	if err != nil {
		s.fail(w, err)
		return
	}
	entries, err := lookup.Lookup(r.Context(), toks, s.source())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.AnnotateResponse{ID: model.EnsureID(req.ID), Result: result, Tokens: entries})
}

func (s *Server) handleReadings(w http.ResponseWriter, r *http.Request) {
	k := r.PathValue("kanji")
	if _, err := singleKanji(k); err != nil {
		s.fail(w, err)
		return
	}
	on, kun, err := s.source().Readings(r.Context(), k)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, model.ReadingsResponse{Kanji: k, Onyomi: on, Kunyomi: kun})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"kanji":    kanji.Count(),
		"store":    s.store != nil,
		"annotate": s.annotator != nil,
	})
}

// ---- middleware ------------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Hijack lets the websocket upgrade through the recorder.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer can't be hijacked")
	}
	r.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		var reqLog logger.Logger = s.log
		if sl, ok := s.log.(*logger.Slog); ok {
			reqLog = sl.With("method", r.Method, "path", r.URL.Path)
		}
		next.ServeHTTP(rec, r.WithContext(logger.WithContext(r.Context(), reqLog)))
		s.log.Info("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}
