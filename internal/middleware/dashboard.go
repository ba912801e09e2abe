package middleware

import (
	"net/http"
	"path"
	"strings"
)

const (
	DashboardPathPrefix = "/admin/dashboard"
	LoginPagePath       = "/admin"
)

// DashboardFilter redirects dashboard page loads without a live session to
// the login page. It only checks the cookie locally; API handlers still go
// through AdminGate.
func DashboardFilter(sessions *SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isDashboardPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Read clears an expired cookie on w before we redirect.
			if sessions.Read(w, r) == nil {
				AdminAuthRejections.WithLabelValues("dashboard_redirect").Inc()
				http.Redirect(w, r, LoginPagePath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isDashboardPath matches on the cleaned path, the same form PageHandler
// resolves files from, so "/admin//dashboard" cannot slip past.
func isDashboardPath(p string) bool {
	p = path.Clean("/" + p)
	return p == DashboardPathPrefix || strings.HasPrefix(p, DashboardPathPrefix+"/")
}
