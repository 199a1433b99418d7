package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/config"
    "github.com/unisport/gym-calendar-gateway/internal/gymapi"
    "github.com/unisport/gym-calendar-gateway/internal/handler"
    "github.com/unisport/gym-calendar-gateway/internal/navigation"
    "github.com/unisport/gym-calendar-gateway/internal/queue"
    "github.com/unisport/gym-calendar-gateway/internal/reconciler"
    "github.com/unisport/gym-calendar-gateway/internal/router"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()
    cfg := config.Load()

    api := gymapi.New(cfg.GymAPIBaseURL, cfg.UpstreamTimeout)
    rec := reconciler.New(api, cfg.FetchConcurrency)
    views := reconciler.NewViewRegistry()

    // Redis backs the handoff store and the rate limiter.  When it is
    // unreachable the gateway still starts: handoffs fall back to the
    // in-memory store and rate limiting is disabled.
    rdb := config.NewRedisClient()
    var handoff navigation.HandoffStore
    if rdb != nil {
        handoff = navigation.NewRedisHandoffStore(rdb, cfg.HandoffTTL)
    } else {
        log.Println("redis unavailable, using in-memory handoff store")
        handoff = navigation.NewMemoryHandoffStore(cfg.HandoffTTL)
    }

    calendarHandler := handler.NewCalendarHandler(rec, views, handoff)
    reservationHandler := handler.NewReservationHandler(api)
    sessionHandler := handler.NewSessionHandler(api)

    // Drain reservation activity into logs/activity.log in the
    // background; the consumer reconnects on its own.
    go func() {
        if err := queue.StartActivityConsumer(); err != nil {
            log.Printf("activity consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    e.Validator = handler.NewValidator()
    router.RegisterRoutes(e)
    router.RegisterCalendar(e, calendarHandler, cfg.JWTSecret)
    router.RegisterActions(e, reservationHandler, sessionHandler, cfg.JWTSecret, rdb, cfg.RateLimit, cfg.RateLimitWindow)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
