package config

// Redis is used for rate limiting the public auth endpoints. The client
// parameters are loaded from environment variables. When the connection
// cannot be established the constructor returns nil and callers degrade
// gracefully by disabling rate limiting.

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from the environment:
//
//	REDIS_ADDR     – host:port (default "localhost:6379")
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// The returned client is nil if the server does not answer a ping.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// RateLimitConfig controls the fixed-window limiter applied to the auth
// endpoints.
type RateLimitConfig struct {
	Enabled bool          // RATE_LIMIT_ENABLED ("true"/"1")
	Max     int           // RATE_LIMIT_MAX requests per window (default 20)
	Window  time.Duration // RATE_LIMIT_WINDOW_SEC (default 60s)
}

// LoadRateLimit reads the limiter settings from the environment.
func LoadRateLimit() RateLimitConfig {
	cfg := RateLimitConfig{Max: 20, Window: time.Minute}
	switch os.Getenv("RATE_LIMIT_ENABLED") {
	case "true", "1":
		cfg.Enabled = true
	}
	if s := os.Getenv("RATE_LIMIT_MAX"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.Max = n
		}
	}
	if s := os.Getenv("RATE_LIMIT_WINDOW_SEC"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.Window = time.Duration(n) * time.Second
		}
	}
	return cfg
}
