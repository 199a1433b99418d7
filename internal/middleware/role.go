package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// RequireRole returns a middleware that only lets through callers
// whose role is in the allowed set.  It assumes JWTAuth already ran
// and stored the AuthContext; anything else is rejected with 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth, ok := Auth(c)
            if !ok || !allowed[auth.Role] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
