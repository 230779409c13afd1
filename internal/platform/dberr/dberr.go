// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates PostgreSQL driver errors into [apperr.AppError] values.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/diwan/internal/platform/apperr"
)

// messageUnavailable is shown when the database cannot serve the request.
const messageUnavailable = "Library storage is temporarily unavailable"

// Wrap classifies err for the failed action on resource.
//
//   - [pgx.ErrNoRows] becomes a 404 for resource.
//   - Connection failures, shutdowns and a missing schema become a 503.
//   - Anything else becomes a 500 whose logged cause names the action.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	cause := fmt.Errorf("%s: %w", action, err)
	if unavailable(err) {
		appErr := apperr.ServiceUnavailable(messageUnavailable)
		appErr.Cause = cause
		return appErr
	}

	return apperr.Internal(cause)
}

// unavailable reports whether err means the database is unreachable or unusable.
func unavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code),
		pgErr.Code == pgerrcode.UndefinedTable:
		return true
	}
	return false
}
