package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 10
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 30 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for health checks
const DBPingTimeout = 5 * time.Second

// Admin sessions are never renewed; expiry always requires a fresh login.
const AdminSessionTTL = 7 * 24 * time.Hour

// BcryptCost keeps a single hash in the tens of milliseconds.
const BcryptCost = 10

// Rate limiting windows for login and public submissions
const RateLimitWindow = time.Minute

// MaxRequestBodySize caps JSON payloads.
const MaxRequestBodySize = 1 << 20
