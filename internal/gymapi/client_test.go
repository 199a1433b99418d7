package gymapi

import (
    "context"
    "encoding/json"
    "errors"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/unisport/gym-calendar-gateway/internal/model"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
    t.Helper()
    srv := httptest.NewServer(h)
    t.Cleanup(srv.Close)
    return New(srv.URL, 2*time.Second)
}

func TestSessionsByDateForwardsDateAndToken(t *testing.T) {
    var gotDate, gotAuth string
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        gotDate = r.URL.Query().Get("date")
        gotAuth = r.Header.Get("Authorization")
        _ = json.NewEncoder(w).Encode([]model.Session{{ID: "s1", Date: "2025-06-01", StartTime: "10:00", EndTime: "11:00"}})
    })

    ctx := WithToken(context.Background(), "secret-token")
    day := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
    sessions, err := c.SessionsByDate(ctx, day)
    if err != nil {
        t.Fatalf("SessionsByDate: %v", err)
    }
    if gotDate != "2025-06-01" {
        t.Errorf("date param = %q, want 2025-06-01", gotDate)
    }
    if gotAuth != "Bearer secret-token" {
        t.Errorf("Authorization = %q, want bearer token", gotAuth)
    }
    if len(sessions) != 1 || sessions[0].ID != "s1" {
        t.Errorf("sessions = %+v", sessions)
    }
}

func TestReadNotFoundMeansEmpty(t *testing.T) {
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        http.NotFound(w, r)
    })

    sessions, err := c.SessionsByDate(context.Background(), time.Now())
    if err != nil {
        t.Fatalf("404 on a read path should not be an error, got %v", err)
    }
    if len(sessions) != 0 {
        t.Errorf("sessions = %+v, want empty", sessions)
    }

    reservations, err := c.ListReservations(context.Background(), "u1")
    if err != nil {
        t.Fatalf("404 on reservations should not be an error, got %v", err)
    }
    if len(reservations) != 0 {
        t.Errorf("reservations = %+v, want empty", reservations)
    }
}

func TestUnauthorizedIsSentinel(t *testing.T) {
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusUnauthorized)
    })
    _, err := c.ListReservations(context.Background(), "u1")
    if !errors.Is(err, ErrUnauthorized) {
        t.Fatalf("err = %v, want ErrUnauthorized", err)
    }
}

func TestWriteRejectionCarriesBackendMessage(t *testing.T) {
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusUnprocessableEntity)
        _ = json.NewEncoder(w).Encode(map[string]string{"message": "No quedan plazas libres"})
    })
    _, err := c.CreateReservation(context.Background(), "u1", model.ReservationRequest{SessionID: "s1"})
    var apiErr *APIError
    if !errors.As(err, &apiErr) {
        t.Fatalf("err = %v, want *APIError", err)
    }
    if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Message != "No quedan plazas libres" {
        t.Errorf("apiErr = %+v", apiErr)
    }
}

func TestWriteRejectionFallsBackToGenericMessage(t *testing.T) {
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusBadRequest)
        _, _ = w.Write([]byte("not json"))
    })
    _, err := c.CreateReservation(context.Background(), "u1", model.ReservationRequest{SessionID: "s1"})
    var apiErr *APIError
    if !errors.As(err, &apiErr) {
        t.Fatalf("err = %v, want *APIError", err)
    }
    if apiErr.Message != GenericErrorMessage {
        t.Errorf("message = %q, want generic fallback", apiErr.Message)
    }
}

func TestCreateReservationPostsPayload(t *testing.T) {
    var gotMethod, gotPath string
    var gotBody model.ReservationRequest
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        gotMethod, gotPath = r.Method, r.URL.Path
        _ = json.NewDecoder(r.Body).Decode(&gotBody)
        w.WriteHeader(http.StatusCreated)
        _ = json.NewEncoder(w).Encode(model.Reservation{
            ID: "res-9", UserID: "u1", SessionID: gotBody.SessionID, Status: model.StatusPending, Notes: gotBody.Notes,
        })
    })

    res, err := c.CreateReservation(context.Background(), "u1", model.ReservationRequest{SessionID: "s1", Notes: "con amigos"})
    if err != nil {
        t.Fatalf("CreateReservation: %v", err)
    }
    if gotMethod != http.MethodPost || gotPath != "/users/u1/reservations" {
        t.Errorf("request = %s %s", gotMethod, gotPath)
    }
    if gotBody.SessionID != "s1" || gotBody.Notes != "con amigos" {
        t.Errorf("body = %+v", gotBody)
    }
    if res.ID != "res-9" || res.Status != model.StatusPending {
        t.Errorf("reservation = %+v", res)
    }
}

func TestCancelReservationUsesDelete(t *testing.T) {
    var gotMethod, gotPath string
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        gotMethod, gotPath = r.Method, r.URL.Path
        w.WriteHeader(http.StatusNoContent)
    })
    if err := c.CancelReservation(context.Background(), "u1", "res-9"); err != nil {
        t.Fatalf("CancelReservation: %v", err)
    }
    if gotMethod != http.MethodDelete || gotPath != "/users/u1/reservations/res-9" {
        t.Errorf("request = %s %s", gotMethod, gotPath)
    }
}

func TestSessionCommands(t *testing.T) {
    var gotMethod, gotPath string
    var gotCancel model.SessionCancellation
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        gotMethod, gotPath = r.Method, r.URL.Path
        switch r.URL.Path {
        case "/sessions/s1":
            var upd model.SessionUpdate
            _ = json.NewDecoder(r.Body).Decode(&upd)
            _ = json.NewEncoder(w).Encode(model.Session{ID: "s1", Date: upd.Date, StartTime: upd.StartTime, EndTime: upd.EndTime, Capacity: upd.Capacity})
        case "/sessions/s1/cancel":
            _ = json.NewDecoder(r.Body).Decode(&gotCancel)
            w.WriteHeader(http.StatusNoContent)
        default:
            http.NotFound(w, r)
        }
    })

    sess, err := c.UpdateSession(context.Background(), "s1", model.SessionUpdate{
        Date: "2025-06-20", StartTime: "09:00", EndTime: "10:00", Capacity: 15,
    })
    if err != nil {
        t.Fatalf("UpdateSession: %v", err)
    }
    if gotMethod != http.MethodPut || gotPath != "/sessions/s1" {
        t.Errorf("update request = %s %s", gotMethod, gotPath)
    }
    if sess.Capacity != 15 || sess.Date != "2025-06-20" {
        t.Errorf("session = %+v", sess)
    }

    err = c.CancelSession(context.Background(), "s1", model.SessionCancellation{Reason: "lesión", TrainerID: "t1"})
    if err != nil {
        t.Fatalf("CancelSession: %v", err)
    }
    if gotPath != "/sessions/s1/cancel" || gotCancel.Reason != "lesión" || gotCancel.TrainerID != "t1" {
        t.Errorf("cancel request = %s body=%+v", gotPath, gotCancel)
    }
}

func TestNoTokenMeansNoHeader(t *testing.T) {
    var gotAuth string
    var seen bool
    c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
        gotAuth, seen = r.Header.Get("Authorization"), true
        _ = json.NewEncoder(w).Encode([]model.Session{})
    })
    if _, err := c.SessionsByDate(context.Background(), time.Now()); err != nil {
        t.Fatalf("SessionsByDate: %v", err)
    }
    if !seen || gotAuth != "" {
        t.Errorf("Authorization = %q, want empty", gotAuth)
    }
}
