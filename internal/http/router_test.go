package http

import (
	"net/http"
	"testing"

	"github.com/preston-bernstein/nba-standings-service/internal/app/league"
	"github.com/preston-bernstein/nba-standings-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-standings-service/internal/store"
	"github.com/preston-bernstein/nba-standings-service/internal/testutil"
)

func newTestRouter() http.Handler {
	ms := store.NewMemoryStore()
	ms.SetLedger(testutil.SampleLedger())
	svc := league.NewService(ms, league.Options{})
	return NewRouter(handlers.NewHandler(svc, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/health":         http.StatusOK,
		"/ready":          http.StatusOK,
		"/games":          http.StatusOK,
		"/games/g1":       http.StatusOK,
		"/games/foo":      http.StatusNotFound, // known route with missing game
		"/standings":      http.StatusOK,
		"/standings/east": http.StatusOK,
		"/standings/mid":  http.StatusNotFound,
		"/playin":         http.StatusOK,
		"/playoffs":       http.StatusOK,
		"/cup":            http.StatusOK,
		"/overview":       http.StatusOK,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newTestRouter(), http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterRejectsWrites(t *testing.T) {
	rr := testutil.Serve(newTestRouter(), http.MethodPost, "/standings", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
