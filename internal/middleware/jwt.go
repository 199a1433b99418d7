package middleware // middleware provides reusable HTTP middleware for the gateway

import (
    "net/http"
    "strings"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/model"
    "github.com/unisport/gym-calendar-gateway/internal/navigation"
)

// authKey is the context key under which the typed AuthContext is
// stored for handlers.
const authKey = "auth"

// JWTAuth returns an Echo middleware that validates a Bearer access
// token and builds a typed model.AuthContext from its subject and role
// claims.  The raw token is kept on the context so upstream calls can
// run with the caller's identity.  Any authentication failure answers
// 401 with the login route attached; the client is expected to
// redirect there and never to retry.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            header := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(header, "Bearer ") {
                return loginRedirect(c, "missing bearer token")
            }
            raw := strings.TrimPrefix(header, "Bearer ")

            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return loginRedirect(c, "invalid token")
            }
            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return loginRedirect(c, "invalid claims")
            }

            sub, _ := claims["sub"].(string)
            role, _ := claims["role"].(string)
            if sub == "" || !model.ValidRole(role) {
                // An incomplete identity is treated like no identity
                // at all: back to login, no upstream fetch is issued.
                return loginRedirect(c, "incomplete identity")
            }

            c.Set(authKey, model.AuthContext{
                UserID: sub,
                Role:   model.Role(role),
                Token:  raw,
            })
            return next(c)
        }
    }
}

// Auth returns the AuthContext stored by JWTAuth.  The second result
// is false when the middleware did not run or rejected the request.
func Auth(c echo.Context) (model.AuthContext, bool) {
    a, ok := c.Get(authKey).(model.AuthContext)
    return a, ok && a.Complete()
}

// loginRedirect writes the uniform 401 body used everywhere an
// authentication error surfaces.
func loginRedirect(c echo.Context, reason string) error {
    return c.JSON(http.StatusUnauthorized, echo.Map{
        "error":    reason,
        "redirect": navigation.RouteLogin,
    })
}
