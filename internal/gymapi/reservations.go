package gymapi

import (
    "context"
    "net/http"
    "net/url"

    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// ListReservations returns every reservation of the given user, across
// all dates and statuses.  A 404 answer yields an empty slice.
func (c *Client) ListReservations(ctx context.Context, userID string) ([]model.Reservation, error) {
    var out []model.Reservation
    path := "/users/" + url.PathEscape(userID) + "/reservations"
    if err := c.do(ctx, http.MethodGet, path, nil, &out, true); err != nil {
        return nil, err
    }
    return out, nil
}

// CreateReservation books a spot in a session for the user.  The
// created reservation is returned for confirmation display only; the
// calendar picks it up on the next reconciliation pass.
func (c *Client) CreateReservation(ctx context.Context, userID string, req model.ReservationRequest) (model.Reservation, error) {
    var out model.Reservation
    path := "/users/" + url.PathEscape(userID) + "/reservations"
    if err := c.do(ctx, http.MethodPost, path, req, &out, false); err != nil {
        return model.Reservation{}, err
    }
    return out, nil
}

// CancelReservation cancels one of the user's reservations.  The
// backend decides whether to mark it CANCELLED or delete it outright;
// either way the next reconciliation reflects the result.
func (c *Client) CancelReservation(ctx context.Context, userID, reservationID string) error {
    path := "/users/" + url.PathEscape(userID) + "/reservations/" + url.PathEscape(reservationID)
    return c.do(ctx, http.MethodDelete, path, nil, nil, false)
}
