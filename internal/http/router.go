package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-standings-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/games/{id}", handler.GameByID)
	mux.HandleFunc("/standings", handler.Standings)
	mux.HandleFunc("/standings/{conference}", handler.ConferenceStandings)
	mux.HandleFunc("/playin", handler.PlayIn)
	mux.HandleFunc("/playoffs", handler.Playoffs)
	mux.HandleFunc("/cup", handler.Cup)
	mux.HandleFunc("/overview", handler.Overview)
	return mux
}
