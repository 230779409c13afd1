// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/platform/ctxutil"
	"github.com/taibuivan/diwan/internal/platform/validate"
)

// maxBodyBytes bounds JSON request bodies. Poems submitted for analysis are the largest payload.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	body := http.MaxBytesReader(nil, request.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query returns the raw value of a query-string parameter.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
QueryInt returns an integer query parameter, or fallback when it is absent.

Returns:
  - int: Parsed value
  - error: apperr.ValidationError naming the parameter when it is not an integer
*/
func QueryInt(request *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(request.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.ValidationError("Invalid query parameter", apperr.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return value, nil
}

/*
RequiredSessionID returns the reader session attached by the session middleware.

Returns:
  - string: Session identifier
  - error: apperr.ValidationError if the route was mounted without session middleware
*/
func RequiredSessionID(request *http.Request) (string, error) {
	id := ctxutil.GetSessionID(request.Context())
	if id == "" {
		return "", apperr.ValidationError("Session is required", apperr.FieldError{
			Field:   "X-Session-ID",
			Message: "missing",
		})
	}
	return id, nil
}
