package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apperrors.ErrorCode
	}{
		{"validation", apperrors.ValidationError("Validation failed"), http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"credentials", apperrors.InvalidCredentials(), http.StatusUnauthorized, apperrors.ErrCodeInvalidCredentials},
		{"not found", apperrors.NotFound("Book"), http.StatusNotFound, apperrors.ErrCodeNotFound},
		{"rate limit", apperrors.RateLimitExceeded(), http.StatusTooManyRequests, apperrors.ErrCodeRateLimitExceeded},
		{"database", apperrors.Database(errors.New("down")), http.StatusInternalServerError, apperrors.ErrCodeDatabase},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, apperrors.ErrCodeInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantCode, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}

	t.Run("plain errors do not leak their message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, errors.New("pq: relation \"books\" does not exist"))
		assert.NotContains(t, rec.Body.String(), "relation")
	})

	t.Run("details are included", func(t *testing.T) {
		rec := httptest.NewRecorder()
		WriteError(rec, apperrors.ValidationError("Validation failed").WithDetails([]string{"email"}))
		assert.Contains(t, rec.Body.String(), `"details":["email"]`)
	})
}
