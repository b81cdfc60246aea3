package httpapi

import (
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/bnema/kioskclock/internal/application/usecase"
	"github.com/bnema/kioskclock/internal/domain/entity"
	"github.com/bnema/kioskclock/internal/logging"
)

const maxBodyBytes = 1 << 10

//go:embed assets/kiosk.js
var kioskScript []byte

// WakeLockResponse is the body of GET /api/wakelock.
type WakeLockResponse struct {
	Held       bool       `json:"held"`
	Pending    bool       `json:"pending"`
	Backend    string     `json:"backend,omitempty"`
	AcquiredAt *time.Time `json:"acquired_at,omitempty"`
}

// FinanceFeedResponse is the body of GET /api/feeds/finance.
type FinanceFeedResponse struct {
	Location  string     `json:"location"`
	Loaded    bool       `json:"loaded"`
	Error     string     `json:"error,omitempty"`
	Items     int        `json:"items"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Status    string     `json:"status,omitempty"`
	Stale     bool       `json:"stale"`
}

type visibilityRequest struct {
	State string `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleMount(w http.ResponseWriter, r *http.Request) {
	s.trigger(w, r, entity.TriggerMount)
}

func (s *Server) handleInteraction(w http.ResponseWriter, r *http.Request) {
	s.trigger(w, r, entity.TriggerInteraction)
}

func (s *Server) handleUnmount(w http.ResponseWriter, r *http.Request) {
	s.trigger(w, r, entity.TriggerUnmount)
}

// handleVisibility accepts any content type: the page sends it with
// sendBeacon, which posts text/plain.
func (s *Server) handleVisibility(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	var req visibilityRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	trigger, err := entity.ParseVisibility(req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.trigger(w, r, trigger)
}

// trigger forwards to the manager. The platform call must finish even if the
// page navigates away and drops the connection.
func (s *Server) trigger(w http.ResponseWriter, r *http.Request, trigger entity.Trigger) {
	ctx := logging.WithComponent(context.WithoutCancel(r.Context()), "httpapi")
	s.wake.HandleTrigger(ctx, trigger)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWakeLock(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, wakeLockResponse(s.wake.Status()))
}

func wakeLockResponse(status usecase.WakeLockStatus) WakeLockResponse {
	resp := WakeLockResponse{
		Held:    status.Held,
		Pending: status.Pending,
		Backend: status.Backend,
	}
	if !status.AcquiredAt.IsZero() {
		at := status.AcquiredAt
		resp.AcquiredAt = &at
	}
	return resp
}

func (s *Server) handleFinanceFeed(w http.ResponseWriter, r *http.Request) {
	if s.finance == nil {
		writeError(w, http.StatusNotFound, "no finance feed configured")
		return
	}

	check := usecase.CheckFinanceFeed(r.Context(), s.finance, s.config.FinanceStaleAfter, s.clock.Now())
	resp := FinanceFeedResponse{
		Location: check.Location,
		Loaded:   check.Loaded,
		Error:    check.Error,
		Items:    check.Items,
		Status:   check.Status,
		Stale:    check.Stale,
	}
	if !check.UpdatedAt.IsZero() {
		at := check.UpdatedAt
		resp.UpdatedAt = &at
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleScript(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(kioskScript)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
