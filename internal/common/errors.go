package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateUser     = errors.New("username already taken")
	ErrNotFound          = errors.New("requested resource not found")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrHashing           = errors.New("password hashing failed")
	ErrPersistence       = errors.New("storage failure")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicateUser) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidCredential) {
		return http.StatusUnauthorized
	}

	// Unclassified unique violations surface as conflicts rather than 500s.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}
