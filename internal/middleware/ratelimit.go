package middleware

import (
    "fmt"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
)

// RateLimit returns a fixed-window limiter for the mutation routes,
// keyed by user and route so one student hammering the book button
// cannot starve anyone else.  When rdb is nil (Redis unreachable at
// startup) or Redis errors at request time, the limiter lets traffic
// through: availability over strictness for a gateway that holds no
// state of its own.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
    if window < time.Second {
        window = time.Minute
    }
    if rdb == nil || limit < 1 {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            user := "anon"
            if auth, ok := Auth(c); ok {
                user = auth.UserID
            }
            key := fmt.Sprintf("rl:%s:%s:%d", user, c.Path(), time.Now().Unix()/int64(window.Seconds()))

            ctx := c.Request().Context()
            n, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                return next(c)
            }
            if n == 1 {
                _ = rdb.Expire(ctx, key, window).Err()
            }
            if n > int64(limit) {
                return c.JSON(http.StatusTooManyRequests, echo.Map{
                    "error":   "too_many_requests",
                    "message": "rate limit exceeded",
                })
            }
            return next(c)
        }
    }
}
