package common

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", fmt.Errorf("verify: %w", ErrNotFound), http.StatusNotFound},
		{"validation", fmt.Errorf("register: %w", ErrValidation), http.StatusBadRequest},
		{"duplicate user", fmt.Errorf("register: %w", ErrDuplicateUser), http.StatusConflict},
		{"invalid credential", fmt.Errorf("verify: %w", ErrInvalidCredential), http.StatusUnauthorized},
		{"persistence", fmt.Errorf("list: %w", ErrPersistence), http.StatusInternalServerError},
		{"raw unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HTTPStatusFromError(tt.err))
		})
	}
}
