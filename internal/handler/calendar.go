package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/middleware"
    "github.com/unisport/gym-calendar-gateway/internal/model"
    "github.com/unisport/gym-calendar-gateway/internal/navigation"
    "github.com/unisport/gym-calendar-gateway/internal/reconciler"
)

// CalendarHandler serves the reconciled month calendar and resolves
// calendar clicks into route decisions.  All methods assume JWT
// authentication already ran; a missing identity sends the caller to
// login without touching the upstream.
type CalendarHandler struct {
    Reconciler *reconciler.Reconciler
    Views      *reconciler.ViewRegistry
    Handoff    navigation.HandoffStore
}

// NewCalendarHandler constructs a CalendarHandler.  All dependencies
// must be non-nil.
func NewCalendarHandler(rec *reconciler.Reconciler, views *reconciler.ViewRegistry, handoff navigation.HandoffStore) *CalendarHandler {
    if rec == nil || views == nil || handoff == nil {
        panic("nil dependency passed to NewCalendarHandler")
    }
    return &CalendarHandler{Reconciler: rec, Views: views, Handoff: handoff}
}

// GetCalendar handles GET /v1/calendar?date=YYYY-MM-DD.  The date may
// be any day of the month to display and defaults to today.  Every
// call re-runs a full reconciliation pass; nothing is cached between
// months.  When the pass fails but an earlier one succeeded, the
// previous event list is served with stale=true rather than an empty
// calendar.
func (h *CalendarHandler) GetCalendar(c echo.Context) error {
    auth, ok := middleware.Auth(c)
    if !ok {
        return loginRedirectJSON(c)
    }
    visible := time.Now().UTC()
    if raw := c.QueryParam("date"); raw != "" {
        parsed, err := time.Parse("2006-01-02", raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, want YYYY-MM-DD"})
        }
        visible = parsed
    }

    view := h.Views.For(auth.UserID)
    events, stale, err := h.Reconciler.Refresh(c.Request().Context(), view, auth, visible)
    if err != nil {
        if errors.Is(err, reconciler.ErrMissingIdentity) {
            return loginRedirectJSON(c)
        }
        return upstreamError(c, err, msgCalendarFailed)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "items": events,
        "stale": stale,
    })
}

// clickRequest is the body of POST /v1/calendar/clicks.  Event is the
// clicked calendar event, absent for clicks on an empty slot, in which
// case view/start/end describe the slot.
type clickRequest struct {
    Event *model.CalendarEvent `json:"event"`
    View  string               `json:"view"`
    Start time.Time            `json:"start"`
    End   time.Time            `json:"end"`
}

// ResolveClick handles POST /v1/calendar/clicks.  It runs the
// role-gated routing state machine and, for navigations that carry an
// event, issues a one-shot handoff token so the destination screen can
// redeem the payload after the page change.  The event also travels by
// value in the decision itself.
func (h *CalendarHandler) ResolveClick(c echo.Context) error {
    auth, ok := middleware.Auth(c)
    if !ok {
        return loginRedirectJSON(c)
    }
    var body clickRequest
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    view := navigation.Granularity(body.View)
    if body.Event == nil && view != navigation.GranularityMonth && view != navigation.GranularityDay {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "view must be month or day for empty-slot clicks"})
    }

    decision, err := navigation.Resolve(auth.Role, navigation.Click{
        Event: body.Event,
        View:  view,
        Start: body.Start,
        End:   body.End,
    })
    if err != nil {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }

    token := ""
    if decision.Event != nil {
        token, err = h.Handoff.Save(c.Request().Context(), *decision.Event)
        if err != nil {
            return upstreamError(c, err, msgCalendarFailed)
        }
    }
    return c.JSON(http.StatusOK, echo.Map{
        "decision":     decision,
        "handoffToken": token,
    })
}

// TakeHandoff handles GET /v1/handoff/:token.  The payload is deleted
// as it is read: a second redeem of the same token answers 404.
func (h *CalendarHandler) TakeHandoff(c echo.Context) error {
    if _, ok := middleware.Auth(c); !ok {
        return loginRedirectJSON(c)
    }
    ev, err := h.Handoff.Take(c.Request().Context(), c.Param("token"))
    if err != nil {
        if errors.Is(err, navigation.ErrHandoffNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "handoff not found"})
        }
        return upstreamError(c, err, msgCalendarFailed)
    }
    return c.JSON(http.StatusOK, echo.Map{"event": ev})
}

// loginRedirectJSON is the uniform answer when no usable identity is
// attached to the request.
func loginRedirectJSON(c echo.Context) error {
    return c.JSON(http.StatusUnauthorized, echo.Map{
        "error":    "missing identity",
        "redirect": navigation.RouteLogin,
    })
}
