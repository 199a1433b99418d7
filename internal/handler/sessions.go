package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/gymapi"
    "github.com/unisport/gym-calendar-gateway/internal/middleware"
    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// SessionAPI is the slice of the gym client the trainer session
// handler needs.
type SessionAPI interface {
    UpdateSession(ctx context.Context, sessionID string, upd model.SessionUpdate) (model.Session, error)
    CancelSession(ctx context.Context, sessionID string, cancel model.SessionCancellation) error
}

// SessionHandler proxies the trainer's session commands.  Ownership of
// the session is enforced upstream; the gateway only guarantees the
// caller's role and pins the trainer identity from the token.
type SessionHandler struct {
    API SessionAPI
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(api SessionAPI) *SessionHandler {
    if api == nil {
        panic("nil api passed to NewSessionHandler")
    }
    return &SessionHandler{API: api}
}

// Update handles PUT /v1/sessions/:id with the replacement schedule
// and capacity fields.  The updated session is returned for
// confirmation display; the calendar picks it up on the next
// reconciliation pass.
func (h *SessionHandler) Update(c echo.Context) error {
    auth, ok := middleware.Auth(c)
    if !ok {
        return loginRedirectJSON(c)
    }
    sessionID := c.Param("id")
    if sessionID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
    }
    var upd model.SessionUpdate
    if err := c.Bind(&upd); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if err := c.Validate(&upd); err != nil {
        return err
    }

    ctx := gymapi.WithToken(c.Request().Context(), auth.Token)
    sess, err := h.API.UpdateSession(ctx, sessionID, upd)
    if err != nil {
        return upstreamError(c, err, msgUpdateFailed)
    }
    return c.JSON(http.StatusOK, echo.Map{"session": sess})
}

// CancelSession handles PUT /v1/sessions/:id/cancel.  The reason is
// relayed to affected students by the backend.  The trainer id in the
// payload is always the authenticated caller's, whatever the client
// sent.
func (h *SessionHandler) CancelSession(c echo.Context) error {
    auth, ok := middleware.Auth(c)
    if !ok {
        return loginRedirectJSON(c)
    }
    sessionID := c.Param("id")
    if sessionID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
    }
    var cancel model.SessionCancellation
    if err := c.Bind(&cancel); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    cancel.TrainerID = auth.UserID
    if err := c.Validate(&cancel); err != nil {
        return err
    }

    ctx := gymapi.WithToken(c.Request().Context(), auth.Token)
    if err := h.API.CancelSession(ctx, sessionID, cancel); err != nil {
        return upstreamError(c, err, msgSessionCancelFailed)
    }
    return c.NoContent(http.StatusNoContent)
}
