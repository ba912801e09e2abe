package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nindium/bookclub-server/internal/model"
)

type contextKey string

// AdminContextKey holds the *model.Admin resolved by AdminGate.
const AdminContextKey contextKey = "admin"

// GetAdmin returns the admin AdminGate stored on ctx, or nil outside the
// gated routes.
func GetAdmin(ctx context.Context) *model.Admin {
	if admin, ok := ctx.Value(AdminContextKey).(*model.Admin); ok {
		return admin
	}
	return nil
}

// AdminFinder is the single keyed lookup the gate needs from storage.
type AdminFinder interface {
	FindByID(ctx context.Context, id string) (*model.Admin, error)
}

// AdminGate resolves the session cookie to an admin on every request. The
// result is never cached so a deleted admin loses access immediately.
type AdminGate struct {
	sessions *SessionManager
	admins   AdminFinder
}

func NewAdminGate(sessions *SessionManager, admins AdminFinder) *AdminGate {
	return &AdminGate{sessions: sessions, admins: admins}
}

// CurrentAdmin returns nil without error when there is no valid session or
// the session's admin no longer exists. Errors are store failures only.
func (g *AdminGate) CurrentAdmin(w http.ResponseWriter, r *http.Request) (*model.Admin, error) {
	session := g.sessions.Read(w, r)
	if session == nil {
		return nil, nil
	}
	if uuid.Validate(session.AdminID) != nil {
		return nil, nil
	}

	admin, err := g.admins.FindByID(r.Context(), session.AdminID)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Handler rejects the request with 401 before the wrapped handler reads the
// body or touches storage.
func (g *AdminGate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, err := g.CurrentAdmin(w, r)
		if err != nil {
			log.Error().Err(err).Msg("admin gate: database error")
			AdminAuthRejections.WithLabelValues("store_error").Inc()
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "Session validation failed",
			})
			return
		}

		if admin == nil {
			AdminAuthRejections.WithLabelValues("unauthenticated").Inc()
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "Unauthorized",
			})
			return
		}

		ctx := context.WithValue(r.Context(), AdminContextKey, admin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
