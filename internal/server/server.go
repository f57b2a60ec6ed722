package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/net/netutil"

	"github.com/raysh454/xssrisk/internal/app"
	"github.com/raysh454/xssrisk/internal/logging"
	"github.com/raysh454/xssrisk/internal/model"
	"github.com/raysh454/xssrisk/internal/observability"
	_ "github.com/raysh454/xssrisk/internal/server/docs" // swagger docs
)

type ctxKey int

const requestIDKey ctxKey = iota

// Server is the HTTP + WebSocket API surface for the analyzer.
type Server struct {
	cfg      Config
	analyzer *app.Analyzer
	metrics  *observability.Metrics
	router   chi.Router
	upgrader websocket.Upgrader
	logger   logging.Logger
}

// NewServer creates a Server around analyzer. metrics may be nil, in which
// case /metrics serves an empty registry.
func NewServer(cfg Config, analyzer *app.Analyzer, metrics *observability.Metrics) (*Server, error) {
	if analyzer == nil {
		return nil, errors.New("server: nil analyzer")
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewStdoutLogger("server")
	}

	if metrics == nil {
		m, err := observability.NewMetrics(observability.MetricsConfig{})
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}
		metrics = m
	}

	s := &Server{
		cfg:      cfg,
		analyzer: analyzer,
		metrics:  metrics,
		router:   chi.NewRouter(),
		logger:   logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Same policy as CORS: any origin.
				return true
			},
		},
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(s.requestIDMiddleware)
	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/", s.optionsHandler("GET"))
	r.Options("/health", s.optionsHandler("GET"))
	r.Options("/analyze", s.optionsHandler("POST"))
	r.Options("/diff", s.optionsHandler("POST"))

	r.Get("/", s.handleStatus)
	r.Get("/health", s.handleStatus)

	r.Post("/analyze", s.handleAnalyze)
	r.Post("/diff", s.handleDiff)

	r.Get("/ws/analyze", s.handleAnalyzeWS)

	r.Handle("/metrics", s.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Browsers refuse "*" on credentialed requests, so the caller's origin is echoed.
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Add("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			w.Header().Set("Access-Control-Allow-Headers", requested)
			w.Header().Add("Vary", "Access-Control-Request-Headers")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fields := []logging.Field{
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}

	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}
	if r.ContentLength > 0 {
		fields = append(fields, logging.Field{Key: "content_length", Value: r.ContentLength})
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Enhancement may take up to its own timeout on top of scoring.
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Serve listens on cfg.ListenAddr, capping concurrent connections at
// cfg.MaxConns, until ctx is canceled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.ListenAddr, err)
	}
	return s.serveListener(ctx, ln)
}

func (s *Server) serveListener(ctx context.Context, ln net.Listener) error {
	if s.cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConns)
	}

	srv := s.HTTPServer()
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.Field{Key: "addr", Value: ln.Addr().String()})
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// decodeBody decodes a size-capped JSON body into v and maps failures to an
// HTTP status: 413 for oversize, 422 for type mismatches, 400 otherwise.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return decodeStatus(err), err
	}
	return http.StatusOK, nil
}

func decodeStatus(err error) int {
	var maxErr *http.MaxBytesError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &typeErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func decodeMessage(status int, err error) string {
	var typeErr *json.UnmarshalTypeError
	switch status {
	case http.StatusRequestEntityTooLarge:
		return "request body too large"
	case http.StatusUnprocessableEntity:
		if errors.As(err, &typeErr) {
			return fmt.Sprintf("%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return err.Error()
	default:
		return "invalid JSON"
	}
}

// analysisStatus maps an analyzer error to its HTTP status.
func analysisStatus(err error) int {
	if model.IsValidationError(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) requestLogger(r *http.Request) logging.Logger {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return s.logger.With(logging.Field{Key: "request_id", Value: id})
	}
	return s.logger
}

// --- HTTP handlers ---

// handleStatus godoc
// @Summary Service status
// @Description Returns service identity and whether LLM enhancement is configured.
// @Tags status
// @Produce json
// @Success 200 {object} app.Status
// @Router / [get]
// @Router /health [get]
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.analyzer.Status())
}

// handleAnalyze godoc
// @Summary Analyze an evidence report
// @Tags analysis
// @Accept json
// @Produce json
// @Param report body AnalyzeRequest true "Evidence report"
// @Success 200 {object} model.Assessment
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /analyze [post]
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	var body AnalyzeRequest
	if status, err := s.decodeBody(w, r, &body); err != nil {
		logger.Warn("decoding analyze body", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, status, decodeMessage(status, err))
		return
	}

	report, err := body.Report()
	if err == nil {
		var res *model.Assessment
		if res, err = s.analyzer.Analyze(r.Context(), report); err == nil {
			logger.Info("analyzed report",
				logging.Field{Key: "url", Value: report.Metadata.URL},
				logging.Field{Key: "risk_score", Value: res.RiskScore},
				logging.Field{Key: "verdict", Value: res.Verdict.String()})
			writeJSON(w, http.StatusOK, res)
			return
		}
	}

	status := analysisStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("analyzing report", logging.Field{Key: "error", Value: err.Error()})
	} else {
		logger.Warn("rejected report", logging.Field{Key: "error", Value: err.Error()})
	}
	writeError(w, status, err.Error())
}

// handleDiff godoc
// @Summary Compare the assessments of two reports
// @Tags analysis
// @Accept json
// @Produce json
// @Param reports body DiffRequest true "Base and head reports"
// @Success 200 {object} model.AssessmentDiff
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /diff [post]
func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	var body DiffRequest
	if status, err := s.decodeBody(w, r, &body); err != nil {
		logger.Warn("decoding diff body", logging.Field{Key: "error", Value: err.Error()})
		writeError(w, status, decodeMessage(status, err))
		return
	}

	base, head, err := body.Reports()
	if err == nil {
		var d *model.AssessmentDiff
		if d, err = s.analyzer.Diff(r.Context(), base, head); err == nil {
			logger.Info("diffed reports", logging.Field{Key: "score_delta", Value: d.ScoreDelta})
			writeJSON(w, http.StatusOK, d)
			return
		}
	}

	status := analysisStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("diffing reports", logging.Field{Key: "error", Value: err.Error()})
	}
	writeError(w, status, err.Error())
}

// WebSockets

// handleAnalyzeWS godoc
// @Summary Streaming analysis
// @Description Upgrades to a WebSocket. Each text message is a report; each reply is an assessment or an error object.
// @Tags analysis
// @Router /ws/analyze [get]
func (s *Server) handleAnalyzeWS(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.MaxBodyBytes)

	ctx := r.Context()
	for n := 0; ; n++ {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("reading websocket message", logging.Field{Key: "error", Value: err.Error()})
			}
			return
		}

		if err := conn.WriteJSON(s.analyzeMessage(ctx, msg)); err != nil {
			// Assume client disconnected
			logger.Info("websocket closed by client", logging.Field{Key: "messages", Value: n})
			return
		}
	}
}

// analyzeMessage returns the reply for one websocket message.
func (s *Server) analyzeMessage(ctx context.Context, msg []byte) any {
	var body AnalyzeRequest
	if err := json.Unmarshal(msg, &body); err != nil {
		return ErrorResponse{Error: decodeMessage(decodeStatus(err), err)}
	}
	report, err := body.Report()
	if err != nil {
		return ErrorResponse{Error: err.Error()}
	}
	res, err := s.analyzer.Analyze(ctx, report)
	if err != nil {
		return ErrorResponse{Error: err.Error()}
	}
	return res
}
