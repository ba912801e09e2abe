package handler

import (
	"net/http"
	"strconv"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
	"github.com/nindium/bookclub-server/internal/model"
)

const MaxLimit = 100

// PaginationParams is opt-in. A zero Limit means every row.
type PaginationParams struct {
	Limit  int
	Offset int
}

// ParsePagination reads ?limit= and ?offset=. Without a usable limit the
// whole list is returned; an explicit limit is capped at MaxLimit.
func ParsePagination(r *http.Request) PaginationParams {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return PaginationParams{
		Limit:  limit,
		Offset: offset,
	}
}

// ParseStatusFilter reads the optional ?status= moderation filter. An empty
// result means no filter.
func ParseStatusFilter(r *http.Request) (model.ModerationStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return "", nil
	}
	status := model.ModerationStatus(raw)
	if !status.Valid() {
		return "", apperrors.InvalidInput("status", "must be one of PENDING, APPROVED, REJECTED")
	}
	return status, nil
}
