package audit

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type EventType string

const (
	EventLoginSuccess     EventType = "login_success"
	EventLoginFailure     EventType = "login_failure"
	EventLogout           EventType = "logout"
	EventMembershipDecide EventType = "membership_status_change"
	EventReviewDecide     EventType = "review_status_change"
	EventReviewDelete     EventType = "review_delete"
	EventBookCreate       EventType = "book_create"
	EventBookUpdate       EventType = "book_update"
	EventBookDelete       EventType = "book_delete"
	EventRateLimitExceed  EventType = "rate_limit_exceeded"
	EventCSRFFailure      EventType = "csrf_failure"
	EventAdminSeeded      EventType = "admin_seeded"
)

type Event struct {
	Type      EventType
	AdminID   string
	Email     string
	IP        string
	UserAgent string
	Details   map[string]interface{}
}

// Log writes a security audit line through the global zerolog logger.
// Emails are expected to be masked by the caller.
func Log(ctx context.Context, event Event) {
	logger := log.With().
		Str("audit", "security").
		Str("event_type", string(event.Type)).
		Time("timestamp", time.Now()).
		Logger()

	if event.AdminID != "" {
		logger = logger.With().Str("admin_id", event.AdminID).Logger()
	}
	if event.Email != "" {
		logger = logger.With().Str("email", event.Email).Logger()
	}
	if event.IP != "" {
		logger = logger.With().Str("ip", event.IP).Logger()
	}
	if event.UserAgent != "" {
		logger = logger.With().Str("user_agent", event.UserAgent).Logger()
	}

	logEvent := logger.Info()
	for k, v := range event.Details {
		logEvent = addField(logEvent, k, v)
	}
	logEvent.Msg("security audit event")
}

func addField(e *zerolog.Event, key string, value interface{}) *zerolog.Event {
	switch v := value.(type) {
	case string:
		return e.Str(key, v)
	case int:
		return e.Int(key, v)
	case int64:
		return e.Int64(key, v)
	case bool:
		return e.Bool(key, v)
	default:
		return e.Interface(key, v)
	}
}

func LogFromRequest(r *http.Request, event Event) {
	event.IP = getClientIP(r)
	event.UserAgent = r.UserAgent()
	Log(r.Context(), event)
}

// getClientIP relies on chimiddleware.RealIP having already rewritten RemoteAddr.
func getClientIP(r *http.Request) string {
	return r.RemoteAddr
}
