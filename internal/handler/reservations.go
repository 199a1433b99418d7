package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/gymapi"
    "github.com/unisport/gym-calendar-gateway/internal/middleware"
    "github.com/unisport/gym-calendar-gateway/internal/model"
    "github.com/unisport/gym-calendar-gateway/internal/queue"
    queue_publisher "github.com/unisport/gym-calendar-gateway/internal/service"
)

// ReservationAPI is the slice of the gym client the reservation
// handler needs.  Declared here so tests can fake the upstream.
type ReservationAPI interface {
    ListReservations(ctx context.Context, userID string) ([]model.Reservation, error)
    CreateReservation(ctx context.Context, userID string, req model.ReservationRequest) (model.Reservation, error)
    CancelReservation(ctx context.Context, userID, reservationID string) error
}

// ReservationHandler proxies the student's book and cancel commands to
// the gym backend.  Mutations are commands: no returned state is
// trusted for display and no local event list is patched — the
// calendar reflects the change on the next reconciliation pass, for
// book and cancel alike.
type ReservationHandler struct {
    API     ReservationAPI
    publish func(ctx context.Context, ev queue.ReservationActivityEvent) error
}

// NewReservationHandler constructs a ReservationHandler publishing
// activity events to the message broker.
func NewReservationHandler(api ReservationAPI) *ReservationHandler {
    if api == nil {
        panic("nil api passed to NewReservationHandler")
    }
    return &ReservationHandler{
        API:     api,
        publish: queue_publisher.PublishReservationActivity,
    }
}

// Book handles POST /v1/reservations.  The body carries the target
// session id and free-text notes.  On success the created reservation
// is returned with 201; on a business rejection the backend's message
// is surfaced inline and nothing is retried.
func (h *ReservationHandler) Book(c echo.Context) error {
    auth, ok := middleware.Auth(c)
    if !ok {
        return loginRedirectJSON(c)
    }
    var req model.ReservationRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }

    ctx := gymapi.WithToken(c.Request().Context(), auth.Token)
    res, err := h.API.CreateReservation(ctx, auth.UserID, req)
    if err != nil {
        return upstreamError(c, err, msgBookFailed)
    }

    // Fire-and-forget: a lost activity event must never fail a booking.
    _ = h.publish(ctx, queue.ReservationActivityEvent{
        Action:        queue.ActionBooked,
        ReservationID: res.ID,
        UserID:        auth.UserID,
        SessionID:     res.SessionID,
        Notes:         res.Notes,
        OccurredAt:    time.Now().UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, echo.Map{"reservation": res})
}

// Cancel handles DELETE /v1/reservations/:id.  The destination screen
// received the event by value, so before submitting the command the
// reservation's current status is re-validated against the backend:
// an already-cancelled reservation answers 409 instead of issuing the
// cancel.  On success 204 is returned and the event's status changes
// on the next reconciliation pass — the stale local copy is not
// patched.
func (h *ReservationHandler) Cancel(c echo.Context) error {
    auth, ok := middleware.Auth(c)
    if !ok {
        return loginRedirectJSON(c)
    }
    reservationID := c.Param("id")
    if reservationID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }

    ctx := gymapi.WithToken(c.Request().Context(), auth.Token)
    reservations, err := h.API.ListReservations(ctx, auth.UserID)
    if err != nil {
        return upstreamError(c, err, msgCancelFailed)
    }
    var current *model.Reservation
    for i := range reservations {
        if reservations[i].ID == reservationID {
            current = &reservations[i]
            break
        }
    }
    if current == nil {
        return c.JSON(http.StatusNotFound, echo.Map{"message": msgReservationMissing})
    }
    if current.Status == model.StatusCancelled {
        return c.JSON(http.StatusConflict, echo.Map{"message": msgAlreadyCancelled})
    }

    if err := h.API.CancelReservation(ctx, auth.UserID, reservationID); err != nil {
        return upstreamError(c, err, msgCancelFailed)
    }

    _ = h.publish(ctx, queue.ReservationActivityEvent{
        Action:        queue.ActionCancelled,
        ReservationID: reservationID,
        UserID:        auth.UserID,
        SessionID:     current.SessionID,
        OccurredAt:    time.Now().UTC().Format(time.RFC3339),
    })

    return c.NoContent(http.StatusNoContent)
}
