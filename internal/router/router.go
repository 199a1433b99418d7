package router // package router defines how HTTP routes are registered for the gateway

import (
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/unisport/gym-calendar-gateway/internal/handler"
    "github.com/unisport/gym-calendar-gateway/internal/middleware"
    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check, used by load balancers to
// verify that the service is up.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterCalendar registers the calendar, click-resolution and
// handoff endpoints under /v1.  All of them require a valid bearer
// token and one of the two calendar roles; the reconciler decides per
// role what the events look like.
func RegisterCalendar(e *echo.Echo, h *handler.CalendarHandler, jwtSecret string) {
    g := e.Group("/v1")
    g.Use(middleware.JWTAuth(jwtSecret))
    g.Use(middleware.RequireRole(model.RoleStudent, model.RoleTrainer))

    g.GET("/calendar", h.GetCalendar)
    g.POST("/calendar/clicks", h.ResolveClick)
    g.GET("/handoff/:token", h.TakeHandoff)
}

// RegisterActions registers the mutation commands.  Booking and
// cancelling reservations is student-only, updating or cancelling a
// session trainer-only.  Mutations additionally pass the per-user
// rate limiter; read paths are never limited.
func RegisterActions(e *echo.Echo, res *handler.ReservationHandler, sess *handler.SessionHandler, jwtSecret string, rdb *redis.Client, limit int, window time.Duration) {
    student := e.Group("/v1/reservations")
    student.Use(middleware.JWTAuth(jwtSecret))
    student.Use(middleware.RequireRole(model.RoleStudent))
    student.Use(middleware.RateLimit(rdb, limit, window))
    student.POST("", res.Book)
    student.DELETE("/:id", res.Cancel)

    trainer := e.Group("/v1/sessions")
    trainer.Use(middleware.JWTAuth(jwtSecret))
    trainer.Use(middleware.RequireRole(model.RoleTrainer))
    trainer.Use(middleware.RateLimit(rdb, limit, window))
    trainer.PUT("/:id", sess.Update)
    trainer.PUT("/:id/cancel", sess.CancelSession)
}
