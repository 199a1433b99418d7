package gymapi

import (
    "context"
    "net/http"
    "net/url"
    "time"

    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// SessionsByDate returns every session scheduled on a single calendar
// day.  The backend only exposes per-day lookup, so month views fan
// this call out once per day.  A 404 answer means no sessions exist
// for the day and yields an empty slice.
func (c *Client) SessionsByDate(ctx context.Context, day time.Time) ([]model.Session, error) {
    q := url.Values{"date": {day.Format("2006-01-02")}}
    var out []model.Session
    if err := c.do(ctx, http.MethodGet, "/sessions?"+q.Encode(), nil, &out, true); err != nil {
        return nil, err
    }
    return out, nil
}

// UpdateSession replaces a session's schedule and capacity fields.
// Trainer only; ownership is enforced upstream.
func (c *Client) UpdateSession(ctx context.Context, sessionID string, upd model.SessionUpdate) (model.Session, error) {
    var out model.Session
    if err := c.do(ctx, http.MethodPut, "/sessions/"+url.PathEscape(sessionID), upd, &out, false); err != nil {
        return model.Session{}, err
    }
    return out, nil
}

// CancelSession cancels a whole session on behalf of its trainer.  The
// reason is relayed by the backend to affected students.
func (c *Client) CancelSession(ctx context.Context, sessionID string, cancel model.SessionCancellation) error {
    return c.do(ctx, http.MethodPut, "/sessions/"+url.PathEscape(sessionID)+"/cancel", cancel, nil, false)
}
