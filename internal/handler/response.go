package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
	"github.com/nindium/bookclub-server/internal/httputil"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	httputil.WriteJSON(w, status, data)
}

// writeError logs anything that is not a client-facing AppError before
// handing it to httputil, which hides the cause behind a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if !apperrors.IsAppError(err) || apperrors.GetCode(err) == apperrors.ErrCodeDatabase {
		log.Error().Err(err).Str("path", r.URL.Path).Msg(msg)
	}
	httputil.WriteError(w, err)
}

// writeSuccess is the {success, message, data} envelope used by mutations.
func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, map[string]any{
		"success": true,
		"message": message,
		"data":    data,
	})
}
