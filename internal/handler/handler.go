package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Dan9191/calc-service/internal/config"
	"github.com/Dan9191/calc-service/internal/integrations/cbr"
	"github.com/Dan9191/calc-service/internal/service"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// RateSource provides the central bank reference rate
type RateSource interface {
	GetKeyRate(ctx context.Context) (cbr.KeyRate, error)
}

type Handler struct {
	svc      *service.Service
	rates    RateSource
	cfg      *config.Config
	log      *logrus.Logger
	now      func() time.Time
	upgrader websocket.Upgrader
}

func NewHandler(svc *service.Service, rates RateSource, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{
		svc:   svc,
		rates: rates,
		cfg:   cfg,
		log:   log,
		now:   time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Outcome is the envelope of every calculator response. Result is omitted
// until the inputs are complete.
type Outcome struct {
	Ready  bool `json:"ready"`
	Result any  `json:"result,omitempty"`
}

func outcome[T any](result T, ready bool) Outcome {
	if !ready {
		return Outcome{}
	}
	return Outcome{Ready: true, Result: result}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// maxBodyBytes caps every request body
const maxBodyBytes = 64 << 10

// decode reads a JSON body of at most maxBodyBytes into v. An empty body
// leaves v untouched.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// NotFound answers unknown routes
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, http.StatusNotFound, "page not found: "+r.URL.Path)
}
