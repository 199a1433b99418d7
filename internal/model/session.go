package model

import (
    "fmt"
    "time"
)

// Session represents a trainer-owned, capacity-bounded time slot at the
// gym.  Sessions are created by trainers, read by all roles and
// updated or cancelled only by the owning trainer.  The backend owns
// the record; this service never mutates it except through the
// explicit update/cancel commands.
//
// Fields:
//  ID            – backend identifier.
//  Date          – calendar day of the slot, ISO format (2006-01-02).
//  StartTime     – wall-clock start, HH:MM.
//  EndTime       – wall-clock end, HH:MM.
//  Capacity      – maximum number of attendees.
//  ReservedSpots – spots already taken.
//  TrainerID     – identifier of the owning trainer.
//  Description   – free-text description shown on the calendar.
type Session struct {
    ID            string `json:"id"`
    Date          string `json:"date"`
    StartTime     string `json:"startTime"`
    EndTime       string `json:"endTime"`
    Capacity      int    `json:"capacity"`
    ReservedSpots int    `json:"reservedSpots"`
    TrainerID     string `json:"trainerId"`
    Description   string `json:"description"`
}

// Start composes the session's date and start time into a single UTC
// timestamp.  The backend stores both fields as separate strings.
func (s Session) Start() (time.Time, error) {
    return composeTime(s.Date, s.StartTime)
}

// End composes the session's date and end time into a single UTC timestamp.
func (s Session) End() (time.Time, error) {
    return composeTime(s.Date, s.EndTime)
}

// composeTime parses an ISO date plus an HH:MM wall-clock time into one
// time.Time.  All timestamps in this service are UTC.
func composeTime(date, clock string) (time.Time, error) {
    t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
    if err != nil {
        return time.Time{}, fmt.Errorf("malformed session time %q %q: %w", date, clock, err)
    }
    return t.UTC(), nil
}

// SessionUpdate carries the schedule and capacity fields a trainer may
// change on an existing session.  Zero values are sent as-is; the
// backend treats the payload as a full replacement of these fields.
type SessionUpdate struct {
    Date        string `json:"date" validate:"required"`
    StartTime   string `json:"startTime" validate:"required"`
    EndTime     string `json:"endTime" validate:"required"`
    Capacity    int    `json:"capacity" validate:"required,min=1"`
    Description string `json:"description" validate:"max=500"`
}

// SessionCancellation is the payload for cancelling a whole session.
// The backend requires the cancelling trainer's identity and a reason
// that is relayed to affected students.
type SessionCancellation struct {
    Reason    string `json:"reason" validate:"required,max=500"`
    TrainerID string `json:"trainerId" validate:"required"`
}
