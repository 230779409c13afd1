// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/platform/dberr"
)

/*
TestWrap verifies the mapping from driver errors to application errors.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), http.StatusNotFound},
		{"missing table", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, http.StatusServiceUnavailable},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, http.StatusServiceUnavailable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, http.StatusServiceUnavailable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, http.StatusInternalServerError},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := apperr.As(dberr.Wrap(tt.err, "Poem", "get_library_poem"))
			require.NotNil(t, wrapped)
			assert.Equal(t, tt.status, wrapped.HTTPStatus)
		})
	}
}

/*
TestWrap_KeepsCause verifies that the action and driver error survive for logging.
*/
func TestWrap_KeepsCause(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Poem", "noop"))

	cause := errors.New("connection reset")
	wrapped := apperr.As(dberr.Wrap(cause, "Poem", "list_library_poems"))
	require.NotNil(t, wrapped)
	assert.ErrorIs(t, wrapped.Cause, cause)
	assert.Contains(t, wrapped.Cause.Error(), "list_library_poems")

	notFound := apperr.As(dberr.Wrap(pgx.ErrNoRows, "Poem", "get_library_poem"))
	require.NotNil(t, notFound)
	assert.Equal(t, "NOT_FOUND", notFound.Code)
}
