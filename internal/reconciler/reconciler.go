// Package reconciler merges gym sessions and the caller's reservations
// into the unified calendar event list shown for one month.  It is the
// authoritative producer of calendar state: every month navigation
// re-runs a full pass, nothing is cached and the resulting list always
// replaces the previous one wholesale.
package reconciler

import (
    "context"
    "errors"
    "time"

    "golang.org/x/sync/errgroup"

    "github.com/unisport/gym-calendar-gateway/internal/gymapi"
    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// ErrMissingIdentity is returned when the auth context lacks a user id
// or a known role.  Callers must send the user to login and must not
// issue any upstream fetch.
var ErrMissingIdentity = errors.New("missing user identity")

// GymAPI is the slice of the upstream client the reconciler needs.
// Declared here so tests can substitute a fake backend.
type GymAPI interface {
    SessionsByDate(ctx context.Context, day time.Time) ([]model.Session, error)
    ListReservations(ctx context.Context, userID string) ([]model.Reservation, error)
}

// Reconciler fetches sessions and reservations and joins them into
// calendar events.  It holds no per-user state; see CalendarView for
// the stateful layer that guards against stale responses.
type Reconciler struct {
    api   GymAPI
    limit int
}

// New returns a Reconciler using the given upstream client.  limit
// caps how many per-day session lookups run at once; values below one
// fall back to a cap of eight.  The backend only exposes per-day
// lookup, so a 31-day month still needs 31 requests, but never more
// than limit of them in flight.
func New(api GymAPI, limit int) *Reconciler {
    if limit < 1 {
        limit = 8
    }
    return &Reconciler{api: api, limit: limit}
}

// ReconcileMonth produces the calendar events for the month containing
// visible, from day 1 through the last day inclusive.
//
// For STUDENT the user's reservations are fetched once and left-joined
// onto the sessions by session id: a match yields a reserved event
// carrying the reservation's id, status and notes, anything else an
// available event.  For TRAINER every session becomes a trainer event
// and no reservation fetch happens at all.
//
// Any upstream failure aborts the whole pass; partial months are never
// returned.  Each session in the month appears in the result exactly
// once and repeating the pass against unchanged backend state yields
// an equal event set.
func (r *Reconciler) ReconcileMonth(ctx context.Context, auth model.AuthContext, visible time.Time) ([]model.CalendarEvent, error) {
    if !auth.Complete() {
        return nil, ErrMissingIdentity
    }
    ctx = gymapi.WithToken(ctx, auth.Token)

    days := monthDays(visible)
    byDay := make([][]model.Session, len(days))
    var reservations []model.Reservation

    g, gctx := errgroup.WithContext(ctx)
    g.SetLimit(r.limit)
    for i, day := range days {
        i, day := i, day
        g.Go(func() error {
            sessions, err := r.api.SessionsByDate(gctx, day)
            if err != nil {
                return err
            }
            byDay[i] = sessions
            return nil
        })
    }
    if auth.Role == model.RoleStudent {
        g.Go(func() error {
            var err error
            reservations, err = r.api.ListReservations(gctx, auth.UserID)
            return err
        })
    }
    if err := g.Wait(); err != nil {
        return nil, err
    }

    bySession := make(map[string]*model.Reservation, len(reservations))
    for i := range reservations {
        bySession[reservations[i].SessionID] = &reservations[i]
    }

    events := make([]model.CalendarEvent, 0, 32)
    for _, sessions := range byDay {
        for _, sess := range sessions {
            var (
                ev  model.CalendarEvent
                err error
            )
            if auth.Role == model.RoleTrainer {
                ev, err = model.NewCalendarEvent(sess, nil, auth.UserID, model.EventTrainer)
            } else if res, ok := bySession[sess.ID]; ok {
                ev, err = model.NewCalendarEvent(sess, res, auth.UserID, model.EventReserved)
            } else {
                ev, err = model.NewCalendarEvent(sess, nil, auth.UserID, model.EventAvailable)
            }
            if err != nil {
                return nil, err
            }
            events = append(events, ev)
        }
    }
    return events, nil
}

// monthDays lists every calendar date of the month containing visible,
// in order.  The last day is computed as day zero of the next month,
// which the time package normalizes to the final day of the current
// one, so leap Februaries come out right.
func monthDays(visible time.Time) []time.Time {
    year, month, _ := visible.Date()
    loc := visible.Location()
    last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
    days := make([]time.Time, 0, last.Day())
    for d := 1; d <= last.Day(); d++ {
        days = append(days, time.Date(year, month, d, 0, 0, 0, 0, loc))
    }
    return days
}
