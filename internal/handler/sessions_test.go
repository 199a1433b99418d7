package handler

import (
    "context"
    "net/http"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/unisport/gym-calendar-gateway/internal/gymapi"
    "github.com/unisport/gym-calendar-gateway/internal/model"
)

type sessionFake struct {
    updated   map[string]model.SessionUpdate
    cancelled map[string]model.SessionCancellation
    updateErr error
}

func newSessionFake() *sessionFake {
    return &sessionFake{
        updated:   map[string]model.SessionUpdate{},
        cancelled: map[string]model.SessionCancellation{},
    }
}

func (f *sessionFake) UpdateSession(_ context.Context, sessionID string, upd model.SessionUpdate) (model.Session, error) {
    if f.updateErr != nil {
        return model.Session{}, f.updateErr
    }
    f.updated[sessionID] = upd
    return model.Session{ID: sessionID, Date: upd.Date, StartTime: upd.StartTime, EndTime: upd.EndTime, Capacity: upd.Capacity, Description: upd.Description}, nil
}

func (f *sessionFake) CancelSession(_ context.Context, sessionID string, cancel model.SessionCancellation) error {
    f.cancelled[sessionID] = cancel
    return nil
}

func trainerAuth() *model.AuthContext {
    return &model.AuthContext{UserID: "trainer-1", Role: model.RoleTrainer, Token: "tok"}
}

func TestUpdateSession(t *testing.T) {
    e := echo.New()
    e.Validator = NewValidator()
    fake := newSessionFake()
    h := NewSessionHandler(fake)

    body := `{"date":"2025-06-20","startTime":"09:00","endTime":"10:00","capacity":15,"description":"hiit"}`
    c, rec := newContext(e, http.MethodPut, "/v1/sessions/s1", body, trainerAuth())
    c.SetParamNames("id")
    c.SetParamValues("s1")
    if err := h.Update(c); err != nil {
        t.Fatalf("Update: %v", err)
    }
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
    }
    if got := fake.updated["s1"]; got.Capacity != 15 || got.Date != "2025-06-20" {
        t.Errorf("update sent upstream = %+v", got)
    }
}

func TestUpdateSessionValidation(t *testing.T) {
    e := echo.New()
    e.Validator = NewValidator()
    fake := newSessionFake()
    h := NewSessionHandler(fake)

    // capacity missing
    c, rec := newContext(e, http.MethodPut, "/v1/sessions/s1", `{"date":"2025-06-20","startTime":"09:00","endTime":"10:00"}`, trainerAuth())
    c.SetParamNames("id")
    c.SetParamValues("s1")
    err := h.Update(c)
    if err != nil {
        e.HTTPErrorHandler(err, c)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    if len(fake.updated) != 0 {
        t.Error("invalid update reached the upstream")
    }
}

func TestUpdateSessionSurfacesBackendMessage(t *testing.T) {
    e := echo.New()
    e.Validator = NewValidator()
    fake := newSessionFake()
    fake.updateErr = &gymapi.APIError{Status: http.StatusForbidden, Message: "La sesión pertenece a otro entrenador"}
    h := NewSessionHandler(fake)

    body := `{"date":"2025-06-20","startTime":"09:00","endTime":"10:00","capacity":15}`
    c, rec := newContext(e, http.MethodPut, "/v1/sessions/s1", body, trainerAuth())
    c.SetParamNames("id")
    c.SetParamValues("s1")
    if err := h.Update(c); err != nil {
        t.Fatalf("Update: %v", err)
    }
    if rec.Code != http.StatusForbidden {
        t.Fatalf("status = %d, want 403", rec.Code)
    }
    if !strings.Contains(rec.Body.String(), "otro entrenador") {
        t.Errorf("body %q missing backend message", rec.Body.String())
    }
}

func TestCancelSessionPinsTrainerIdentity(t *testing.T) {
    e := echo.New()
    e.Validator = NewValidator()
    fake := newSessionFake()
    h := NewSessionHandler(fake)

    // The client claims another trainer's id; the gateway overrides it
    // with the authenticated caller's.
    body := `{"reason":"lesión del entrenador","trainerId":"someone-else"}`
    c, rec := newContext(e, http.MethodPut, "/v1/sessions/s1/cancel", body, trainerAuth())
    c.SetParamNames("id")
    c.SetParamValues("s1")
    if err := h.CancelSession(c); err != nil {
        t.Fatalf("CancelSession: %v", err)
    }
    if rec.Code != http.StatusNoContent {
        t.Fatalf("status = %d, want 204", rec.Code)
    }
    got := fake.cancelled["s1"]
    if got.TrainerID != "trainer-1" {
        t.Errorf("trainer id sent upstream = %q, want the caller's", got.TrainerID)
    }
    if got.Reason != "lesión del entrenador" {
        t.Errorf("reason = %q", got.Reason)
    }
}
