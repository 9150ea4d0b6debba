// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Sessions

WithSession resolves the lv_session cookie to a session.Session:

	mux.HandleFunc("GET /contestants", middleware.WithSession(sessions, secret, handler))

A missing or tampered cookie gets a fresh session id and a new signed cookie.
Handlers read the session back with SessionFrom(r.Context()).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Credentials are allowed so the session cookie survives cross-origin calls.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.VotingErrorResponse(w, http.StatusConflict, verr)

Parse JSON request bodies:

	var req models.SetLiveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
