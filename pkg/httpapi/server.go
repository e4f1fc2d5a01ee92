// Package httpapi exposes the layout engine over HTTP.
//
// The API is intentionally small: one layout endpoint and a health
// check. Rendering to image formats stays on the CLI side; the API
// returns the placement mapping so frontends can draw the grid with
// their own styling.
//
//	POST /v1/layout  - compute placements for a JSON day schedule
//	GET  /healthz    - liveness probe
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	apperrors "github.com/heirclark/dayplan/pkg/errors"
	"github.com/heirclark/dayplan/pkg/pipeline"
	"github.com/heirclark/dayplan/pkg/schedule"
	"github.com/heirclark/dayplan/pkg/schedule/overlap"
)

// Server wires the layout pipeline into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// NewServer builds the HTTP handler around the given runner.
// A nil logger falls back to log.Default.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		router: chi.NewRouter(),
	}
	s.router.Use(requestID)
	s.router.Use(requestLogger(logger))
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/v1/layout", s.handleLayout)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// layoutRequest is the POST /v1/layout body. The anchor is optional and
// defaults to the standard 06:00 wake time.
type layoutRequest struct {
	Anchor *schedule.Clock  `json:"anchor,omitempty"`
	Blocks []schedule.Block `json:"blocks"`
}

// layoutResponse maps block IDs to their horizontal placements.
type layoutResponse struct {
	Anchor       schedule.Clock               `json:"anchor"`
	ScheduleHash string                       `json:"scheduleHash"`
	Layouts      map[string]overlap.Placement `json:"layouts"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, decodeError(err))
		return
	}

	anchor := schedule.DefaultAnchor
	if req.Anchor != nil {
		anchor = *req.Anchor
	}
	day := &schedule.Day{Anchor: anchor, Blocks: req.Blocks}
	if err := day.Validate(); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidSchedule, err, "invalid schedule"))
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{Day: day})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Anchor:       day.Anchor,
		ScheduleHash: result.ScheduleHash,
		Layouts:      result.Layout,
	})
}

// decodeError classifies JSON body errors so malformed clock strings get
// a more specific code than generic bad JSON.
func decodeError(err error) error {
	if errors.Is(err, schedule.ErrInvalidClock) {
		return apperrors.Wrap(apperrors.ErrCodeInvalidClock, err, "invalid clock value")
	}
	return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body")
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidClock,
		apperrors.ErrCodeInvalidSchedule, apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound,
		apperrors.ErrCodeBlockNotFound:
		status = http.StatusNotFound
	}

	s.logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"code", code,
		"err", err)

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	}})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
