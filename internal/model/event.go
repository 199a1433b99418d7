package model

import "time"

// EventType tags how the current user may interact with a calendar
// event.  STUDENT calendars contain only reserved/available events,
// TRAINER calendars contain only trainer events.
type EventType string

const (
    EventReserved  EventType = "reserved"  // the student holds a reservation for this session
    EventAvailable EventType = "available" // the student may book this session
    EventTrainer   EventType = "trainer"   // trainer view of their own schedule
)

// CalendarEvent is the ephemeral view model produced by reconciliation.
// It merges a session with the current user's reservation for that
// session, if any.  Events are rebuilt on every month fetch and are
// never persisted; an event handed to an action screen travels by
// value (or through the one-shot handoff store), never by re-fetch.
//
// ReservationID, Status and Notes are populated only when Type is
// reserved.  The invariant for STUDENT calendars: Type is reserved iff
// a reservation of the user matches the session's id.
type CalendarEvent struct {
    ID            string            `json:"id"`
    Type          EventType         `json:"type"`
    ReservationID string            `json:"reservationId,omitempty"`
    UserID        string            `json:"userId"`
    Status        ReservationStatus `json:"status,omitempty"`
    Notes         string            `json:"notes,omitempty"`
    Start         time.Time         `json:"start"`
    End           time.Time         `json:"end"`
    Capacity      int               `json:"capacity"`
    ReservedSpots int               `json:"reservedSpots"`
    TrainerID     string            `json:"trainerId"`
    Description   string            `json:"description"`
}

// NewCalendarEvent builds an event from a session and, for reserved
// events, the matching reservation.  Pass nil for res to emit an
// available or trainer event.  It fails when the session's date or
// times cannot be parsed, since an event without a real start and end
// cannot be placed on a calendar.
func NewCalendarEvent(sess Session, res *Reservation, userID string, typ EventType) (CalendarEvent, error) {
    start, err := sess.Start()
    if err != nil {
        return CalendarEvent{}, err
    }
    end, err := sess.End()
    if err != nil {
        return CalendarEvent{}, err
    }
    ev := CalendarEvent{
        ID:            sess.ID,
        Type:          typ,
        UserID:        userID,
        Start:         start,
        End:           end,
        Capacity:      sess.Capacity,
        ReservedSpots: sess.ReservedSpots,
        TrainerID:     sess.TrainerID,
        Description:   sess.Description,
    }
    if res != nil {
        ev.ReservationID = res.ID
        ev.Status = res.Status
        ev.Notes = res.Notes
    }
    return ev, nil
}
