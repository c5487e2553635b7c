// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jessielw/tmdb-service/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(action + ": duplicate key")
		case pgerrcode.ForeignKeyViolation:
			return apperr.Unprocessable(action + ": referenced row does not exist")
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return apperr.Unprocessable(action + ": constraint violation")
		}
	}

	return apperr.Internal(err)
}

// IsConstraintViolation reports whether err is a Postgres constraint
// violation (unique, foreign key, not-null, or check) rather than a
// transport or transient failure.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation,
		pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
		return true
	default:
		return false
	}
}
