package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const rateLimitKeyPrefix = "ratelimit:"

// rateLimitScript is a sliding window over a sorted set of hit timestamps.
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

local windowStart = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', windowStart)

local count = redis.call('ZCARD', key)

if count >= limit then
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local resetAt = 0
    if #oldest >= 2 then
        resetAt = tonumber(oldest[2]) + window
    else
        resetAt = now + window
    end
    return {0, resetAt}
end

redis.call('ZADD', key, now, now .. '-' .. math.random())
redis.call('PEXPIRE', key, window + 10000)

return {1, now + window}
`)

// RedisRateLimiter shares counters across instances. It denies when Redis
// cannot answer so that login throttling never silently turns off.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func (rl *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Time) {
	now := time.Now()

	result, err := rateLimitScript.Run(
		ctx,
		rl.client,
		[]string{rateLimitKeyPrefix + key},
		now.UnixMilli(),
		window.Milliseconds(),
		limit,
	).Int64Slice()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis rate limit check failed, denying request")
		return false, now.Add(window)
	}

	if len(result) != 2 {
		log.Warn().Str("key", key).Msg("unexpected redis rate limit result, denying request")
		return false, now.Add(window)
	}

	return result[0] == 1, time.UnixMilli(result[1])
}
