// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/live-vote/auth"
	"github.com/danielhkuo/live-vote/middleware"
	"github.com/danielhkuo/live-vote/session"
	"github.com/danielhkuo/live-vote/testutil"
)

const viewer = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

// serve runs h behind the session middleware as the fixed test viewer
func serve(t *testing.T, app *testutil.App, sessions *session.Manager, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	if sessions == nil {
		sessions = app.Sessions
	}
	req.AddCookie(&http.Cookie{
		Name:  middleware.SessionCookie,
		Value: auth.SignSessionID(viewer, app.Config.SessionSecret),
	})
	w := httptest.NewRecorder()
	middleware.WithSession(sessions, app.Config.SessionSecret, h)(w, req)
	return w
}

// hydratedViewer makes sure the viewer's ledger is loaded before votes are cast
func hydratedViewer(t *testing.T, sessions *session.Manager) *session.Session {
	t.Helper()
	s := sessions.Get(viewer)
	testutil.WaitHydrated(t, s)
	return s
}

func voteRequest(id string) *http.Request {
	req := testutil.MakeRequest("POST", "/contestants/"+id+"/vote", nil, nil)
	req.SetPathValue("id", id)
	return req
}
