// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/danielhkuo/live-vote/cliparse"
	"github.com/danielhkuo/live-vote/errsink"
	"github.com/danielhkuo/live-vote/feed"
	"github.com/danielhkuo/live-vote/ledger"
	"github.com/danielhkuo/live-vote/roster"
	"github.com/danielhkuo/live-vote/session"
	"github.com/danielhkuo/live-vote/showapi"
)

// Start is the fake clock's initial time in every test app
var Start = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

// QuietRandom never triggers a feed increment or a simulated failure
type QuietRandom struct{}

func (QuietRandom) Float64() float64 { return 0.99 }
func (QuietRandom) IntN(n int) int   { return 0 }

// App is a fully wired show running on a fake clock and in-memory ledger
type App struct {
	Clock     clockwork.FakeClock
	Config    cliparse.Config
	Roster    *roster.Store
	Broadcast *errsink.Broadcast
	Feed      *feed.Simulator
	API       *showapi.Client
	Store     *ledger.MemoryStore
	Sessions  *session.Manager
}

// GetTestConfig returns a test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		LedgerBackend: cliparse.BackendMemory,
		SessionSecret: "test-session-secret",
		PollInterval:  3 * time.Second,
		SessionIdle:   30 * time.Minute,
	}
}

// NewTestApp builds a live show with no simulated latency or failures. The
// feed is enabled but only ticks when the clock is advanced.
func NewTestApp(t *testing.T) *App {
	t.Helper()

	cfg := GetTestConfig()
	clock := clockwork.NewFakeClockAt(Start)
	store := roster.NewStore(roster.Seed(clock.Now()))
	broadcast := errsink.NewBroadcast()
	sim := feed.NewSimulator(store, broadcast, clock, QuietRandom{}, cfg.PollInterval)
	api := showapi.NewClient(showapi.Config{}, clock, QuietRandom{})
	ledgerStore := ledger.NewMemoryStore()

	app := &App{
		Clock:     clock,
		Config:    cfg,
		Roster:    store,
		Broadcast: broadcast,
		Feed:      sim,
		API:       api,
		Store:     ledgerStore,
		Sessions:  session.NewManager(ledgerStore, store, sim, api, broadcast, clock),
	}

	sim.Enable()
	t.Cleanup(sim.Close)
	return app
}

// WaitHydrated blocks until the session's ledger has loaded
func WaitHydrated(t *testing.T, s *session.Session) {
	t.Helper()
	select {
	case <-s.Ledger.Hydrated():
	case <-time.After(2 * time.Second):
		t.Fatalf("session %s never hydrated", s.ID)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
