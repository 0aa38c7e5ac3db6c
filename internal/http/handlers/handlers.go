package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/preston-bernstein/nba-standings-service/internal/app/league"
	"github.com/preston-bernstein/nba-standings-service/internal/bracket"
	"github.com/preston-bernstein/nba-standings-service/internal/domain/games"
	"github.com/preston-bernstein/nba-standings-service/internal/logging"
	"github.com/preston-bernstein/nba-standings-service/internal/poller"
	"github.com/preston-bernstein/nba-standings-service/internal/standings"
)

// LeagueService is the read API the handlers serve.
type LeagueService interface {
	Games() games.Ledger
	GameByID(id string) (games.Game, bool)
	Standings() league.StandingsView
	Conference(name string) ([]standings.Standing, error)
	PlayIn() league.PlayInView
	Playoffs() (bracket.Bracket, error)
	Cup() (bracket.Bracket, error)
	Overview(ctx context.Context) (league.Overview, error)
}

// Handler wires HTTP routes to the league service.
type Handler struct {
	svc      LeagueService
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case /ready always succeeds.
func NewHandler(svc LeagueService, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Games returns the current ledger snapshot.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	ledger := h.svc.Games()
	logging.Info(loggerFromContext(r, h.logger), "served games",
		logging.FieldSeason, ledger.Season,
		logging.FieldCount, len(ledger.Games),
	)
	writeJSON(w, nethttp.StatusOK, ledger, h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	id, err := url.PathUnescape(r.PathValue("id"))
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	game, ok := h.svc.GameByID(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// Standings returns both ranked conferences and season progress.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.Standings(), h.logger)
}

// ConferenceStandings returns one conference's ranked rows.
func (h *Handler) ConferenceStandings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	name := r.PathValue("conference")
	rows, err := h.svc.Conference(name)
	if errors.Is(err, league.ErrUnknownConference) {
		writeError(w, r, nethttp.StatusNotFound, "unknown conference", h.logger)
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		logging.FieldConference: name,
		"standings":             rows,
	}, h.logger)
}

// PlayIn returns each conference's play-in outcome.
func (h *Handler) PlayIn(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.svc.PlayIn(), h.logger)
}

// Playoffs returns the playoff bracket, or a status while it cannot be built yet.
func (h *Handler) Playoffs(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	b, err := h.svc.Playoffs()
	h.writeBracket(w, r, b, err)
}

// Cup returns the in-season cup bracket, or a status while it is incomplete or stale.
func (h *Handler) Cup(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	b, err := h.svc.Cup()
	h.writeBracket(w, r, b, err)
}

// Overview returns every view computed from one snapshot.
func (h *Handler) Overview(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !h.allowGet(w, r) {
		return
	}
	out, err := h.svc.Overview(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, out, h.logger)
}

// writeBracket answers 200 for both a bracket and a not-ready status.
func (h *Handler) writeBracket(w nethttp.ResponseWriter, r *nethttp.Request, b bracket.Bracket, err error) {
	switch {
	case err == nil:
		writeJSON(w, nethttp.StatusOK, league.BracketView{Status: league.StatusOK, Bracket: &b}, h.logger)
	case errors.Is(err, bracket.ErrStale):
		writeJSON(w, nethttp.StatusOK, league.BracketView{Status: league.StatusStale}, h.logger)
	case league.IsNotReady(err):
		writeJSON(w, nethttp.StatusOK, league.BracketView{Status: league.StatusIncomplete}, h.logger)
	default:
		h.internalError(w, r, err)
	}
}

func (h *Handler) internalError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logging.Error(loggerFromContext(r, h.logger), "request failed", err)
	writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
}

func (h *Handler) allowGet(w nethttp.ResponseWriter, r *nethttp.Request) bool {
	if r.Method == nethttp.MethodGet || r.Method == nethttp.MethodHead {
		return true
	}
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	return false
}
