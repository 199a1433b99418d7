// Package navigation turns calendar clicks into typed route decisions
// and carries the clicked event to the destination screen.  The
// decision logic is a pure function of the caller's role and the
// click; the handoff store covers payload survival across a page
// navigation without the side-channel storage the original UI used.
package navigation

import (
    "errors"
    "time"

    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// Routes the gateway can send a client to.  The frontend owns the
// actual screens; these names are the contract between the two.
const (
    RouteBookSession       = "/reservations/book"
    RouteReservationDetail = "/reservations/detail"
    RouteSessionDetail     = "/sessions/detail"
    RouteSessionCreate     = "/sessions/new"
    RouteLogin             = "/login"
)

// Granularity is the calendar's current zoom level.
type Granularity string

const (
    GranularityMonth Granularity = "month"
    GranularityDay   Granularity = "day"
)

// Action says what kind of decision was made for a click.
type Action string

const (
    ActionNavigate   Action = "navigate"    // go to a route, payload attached
    ActionSwitchView Action = "switch_view" // change calendar granularity, no navigation
    ActionNone       Action = "none"        // click has no effect for this role
)

// Click describes what the user clicked.  Event is nil for clicks on
// an empty calendar slot, in which case Start and End carry the
// clicked slot's timestamps and View the current granularity.
type Click struct {
    Event *model.CalendarEvent
    View  Granularity
    Start time.Time
    End   time.Time
}

// Decision is the typed outcome of a click.  For navigations the
// clicked event travels by value in Event; destinations re-validate
// its fields before submitting any mutation instead of trusting it
// blindly.
type Decision struct {
    Action Action               `json:"action"`
    Route  string               `json:"route,omitempty"`
    View   Granularity          `json:"view,omitempty"`
    Date   *time.Time           `json:"date,omitempty"`
    Start  *time.Time           `json:"start,omitempty"`
    End    *time.Time           `json:"end,omitempty"`
    Event  *model.CalendarEvent `json:"event,omitempty"`
}

// ErrUnknownRole is returned when the click comes from a role the
// state machine does not know.
var ErrUnknownRole = errors.New("unknown role")

// Resolve maps one click to its destination:
//
//	STUDENT + available event      -> book screen
//	STUDENT + reserved event       -> reservation detail screen
//	STUDENT + empty slot           -> nothing
//	TRAINER + any event            -> session detail screen
//	TRAINER + empty slot, month    -> zoom to day view on that date
//	TRAINER + empty slot, day      -> session creation screen with the
//	                                  clicked start/end
func Resolve(role model.Role, click Click) (Decision, error) {
    switch role {
    case model.RoleStudent:
        if click.Event == nil {
            return Decision{Action: ActionNone}, nil
        }
        route := RouteBookSession
        if click.Event.Type == model.EventReserved {
            route = RouteReservationDetail
        }
        return Decision{Action: ActionNavigate, Route: route, Event: click.Event}, nil

    case model.RoleTrainer:
        if click.Event != nil {
            return Decision{Action: ActionNavigate, Route: RouteSessionDetail, Event: click.Event}, nil
        }
        if click.View == GranularityMonth {
            date := click.Start
            return Decision{Action: ActionSwitchView, View: GranularityDay, Date: &date}, nil
        }
        start, end := click.Start, click.End
        return Decision{Action: ActionNavigate, Route: RouteSessionCreate, Start: &start, End: &end}, nil
    }
    return Decision{}, ErrUnknownRole
}
