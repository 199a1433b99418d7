package model

// ReservationStatus enumerates the lifecycle states a reservation can
// be in.  The client only ever writes CANCELLED (via the cancel
// command); every other transition happens server-side.
type ReservationStatus string

const (
    StatusPending   ReservationStatus = "PENDING"
    StatusConfirmed ReservationStatus = "CONFIRMED"
    StatusCompleted ReservationStatus = "COMPLETED"
    StatusCancelled ReservationStatus = "CANCELLED"
    StatusMissed    ReservationStatus = "MISSED"
    StatusCheckedIn ReservationStatus = "CHECKED_IN"
)

// Reservation records a student's claim on a session.  It is owned by
// the backend: this service creates and cancels reservations but never
// mutates the status field directly.
//
// Fields:
//  ID        – backend identifier.
//  UserID    – student who made the reservation.
//  SessionID – session being reserved.
//  Status    – lifecycle state (see ReservationStatus).
//  Notes     – free-text notes entered by the student when booking.
type Reservation struct {
    ID        string            `json:"id"`
    UserID    string            `json:"userId"`
    SessionID string            `json:"sessionId"`
    Status    ReservationStatus `json:"status"`
    Notes     string            `json:"notes"`
}

// ReservationRequest is the payload a student submits to book a spot
// in a session.
type ReservationRequest struct {
    SessionID string `json:"sessionId" validate:"required"`
    Notes     string `json:"notes" validate:"max=500"`
}
