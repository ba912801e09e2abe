package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nindium/bookclub-server/internal/config"
)

// AdminSessionCookie is the cookie carrying the signed admin session token.
const AdminSessionCookie = "admin_session"

// Session is the client-held proof of admin identity. Nothing about it is
// stored server side.
type Session struct {
	AdminID   string
	ExpiresAt time.Time
}

// sessionClaims is the signed cookie payload. ExpiresAt is epoch milliseconds.
type sessionClaims struct {
	AdminID   string `json:"adminId"`
	ExpiresAt int64  `json:"expiresAt"`
}

func (c sessionClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.UnixMilli(c.ExpiresAt)), nil
}
func (c sessionClaims) GetIssuedAt() (*jwt.NumericDate, error) { return nil, nil }
func (c sessionClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c sessionClaims) GetIssuer() (string, error) { return "", nil }
func (c sessionClaims) GetSubject() (string, error) { return c.AdminID, nil }
func (c sessionClaims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// SessionManager issues, reads and revokes the admin session cookie. The
// cookie value is an HS256 token, so a client cannot alter the admin id or
// push the expiry forward without the secret.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewSessionManager signs sessions with secret. secure sets the cookie's
// Secure flag and should be true in production.
func NewSessionManager(secret string, secure bool) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    config.AdminSessionTTL,
		secure: secure,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for issuing and checking expiry.
func (m *SessionManager) SetClock(now func() time.Time) {
	m.now = now
}

// Encode signs a fresh session for adminID without writing a cookie.
func (m *SessionManager) Encode(adminID string) (string, *Session, error) {
	expiresAt := m.now().Add(m.ttl)
	claims := sessionClaims{
		AdminID:   adminID,
		ExpiresAt: expiresAt.UnixMilli(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session: %w", err)
	}

	return token, &Session{AdminID: adminID, ExpiresAt: time.UnixMilli(claims.ExpiresAt)}, nil
}

// Issue starts a session for adminID and sets the cookie on w.
func (m *SessionManager) Issue(w http.ResponseWriter, adminID string) (*Session, error) {
	token, session, err := m.Encode(adminID)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     AdminSessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return session, nil
}

// Decode verifies a token and returns its session. expired is true when the
// token is authentic but its expiry has passed.
func (m *SessionManager) Decode(value string) (session *Session, expired bool) {
	if value == "" {
		return nil, false
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !token.Valid || claims.AdminID == "" || claims.ExpiresAt <= 0 {
		return nil, false
	}

	if claims.ExpiresAt <= m.now().UnixMilli() {
		return nil, true
	}

	return &Session{AdminID: claims.AdminID, ExpiresAt: time.UnixMilli(claims.ExpiresAt)}, false
}

// Read returns the request's session or nil. Missing, malformed and tampered
// cookies are all treated as no session. An expired cookie is also cleared
// on w when w is not nil.
func (m *SessionManager) Read(w http.ResponseWriter, r *http.Request) *Session {
	cookie, err := r.Cookie(AdminSessionCookie)
	if err != nil {
		return nil
	}

	session, expired := m.Decode(cookie.Value)
	if expired && w != nil {
		m.Revoke(w)
	}
	return session
}

// Revoke clears the session cookie. It is safe to call without a session.
func (m *SessionManager) Revoke(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
