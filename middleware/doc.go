// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an ID, taken from a valid X-Request-ID
header or freshly generated, which is echoed in the response and
available to handlers:

	middleware.Logger(r.Context()).Error("failed", "error", err)

# Panic Recovery

	server := http.Server{Handler: middleware.Recover(mux)}

# CSRF Protection

Form posts use a signed double-submit token. Pages that render a form
ask for the token (setting the cookie if needed):

	token, err := middleware.CSRFToken(w, r, cfg.CSRFSecret)

and the POST handler is wrapped:

	middleware.RequireCSRF(cfg.CSRFSecret, handler)

Requests without a matching csrf_token field get 403.

# CORS Middleware

CORS allows cross-origin GET and POST on the JSON API, without credentials.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
