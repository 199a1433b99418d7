// Package queue defines message payloads exchanged over the message broker.
package queue

// ActivityQueueName is the durable queue carrying reservation activity.
const ActivityQueueName = "reservation.activity"

// Activity actions.
const (
    ActionBooked    = "BOOKED"
    ActionCancelled = "CANCELLED"
)

// ReservationActivityEvent is published after a student successfully
// books or cancels a reservation.  It carries enough for downstream
// consumers to log or notify without calling the gym backend back.
type ReservationActivityEvent struct {
    Action        string `json:"action"`
    ReservationID string `json:"reservation_id"`
    UserID        string `json:"user_id"`
    SessionID     string `json:"session_id"`
    Notes         string `json:"notes,omitempty"`
    OccurredAt    string `json:"occurred_at"`
}
