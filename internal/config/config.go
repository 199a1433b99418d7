package config // package config loads application configuration from environment variables

import (
    "log"
    "os"
    "strconv"
    "time"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  Required values are
// enforced by must(); the rest fall back to sensible defaults so a
// bare dev environment still starts.
type Config struct {
    Env              string        // application environment (e.g. "dev", "prod")
    Port             string        // HTTP port to listen on
    JWTSecret        string        // secret used to verify bearer tokens
    GymAPIBaseURL    string        // base URL of the upstream gym REST API
    UpstreamTimeout  time.Duration // per-request timeout against the upstream
    FetchConcurrency int           // cap on concurrent per-day session lookups
    HandoffTTL       time.Duration // lifetime of a cross-page handoff payload
    RateLimit        int           // mutation requests allowed per window, per user+route
    RateLimitWindow  time.Duration // rate limit window size
}

// Load reads configuration values from environment variables and
// returns a Config.  Missing required variables cause the program to
// exit with a fatal log message.
func Load() Config {
    return Config{
        Env:              must("APP_ENV"),
        Port:             must("APP_PORT"),
        JWTSecret:        must("JWT_SECRET"),
        GymAPIBaseURL:    must("GYM_API_URL"),
        UpstreamTimeout:  envDur("UPSTREAM_TIMEOUT", 10*time.Second),
        FetchConcurrency: envInt("FETCH_CONCURRENCY", 8),
        HandoffTTL:       envDur("HANDOFF_TTL", 5*time.Minute),
        RateLimit:        envInt("RATE_LIMIT", 30),
        RateLimitWindow:  envDur("RATE_LIMIT_WINDOW", time.Minute),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

func envInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return def
}

func envDur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if d, err := time.ParseDuration(v); err == nil {
        return d
    }
    return def
}
