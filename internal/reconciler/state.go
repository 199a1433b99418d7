package reconciler

import (
    "context"
    "errors"
    "log"
    "sync"
    "time"

    "github.com/unisport/gym-calendar-gateway/internal/gymapi"
    "github.com/unisport/gym-calendar-gateway/internal/model"
)

// CalendarView holds the last reconciled event list for one user along
// with a monotonically increasing generation counter.  Every
// reconciliation pass is stamped with a fresh generation before its
// fetches start; when the pass finishes, its result is applied only if
// no newer pass has begun in the meantime.  This closes the
// stale-response race where a slow older fetch would otherwise
// overwrite the result of a newer navigation.
type CalendarView struct {
    mu     sync.Mutex
    gen    uint64
    events []model.CalendarEvent
    loaded bool
}

// NextGeneration reserves a generation for a reconciliation pass that
// is about to start.
func (v *CalendarView) NextGeneration() uint64 {
    v.mu.Lock()
    defer v.mu.Unlock()
    v.gen++
    return v.gen
}

// Apply replaces the event list wholesale with the result of the pass
// stamped gen.  The list is never patched incrementally.  It reports
// false, leaving the view untouched, when a newer pass has started
// since gen was issued.
func (v *CalendarView) Apply(gen uint64, events []model.CalendarEvent) bool {
    v.mu.Lock()
    defer v.mu.Unlock()
    if gen != v.gen {
        return false
    }
    v.events = events
    v.loaded = true
    return true
}

// Events returns a copy of the current event list.  The second result
// is false until a pass has completed at least once.
func (v *CalendarView) Events() ([]model.CalendarEvent, bool) {
    v.mu.Lock()
    defer v.mu.Unlock()
    if !v.loaded {
        return nil, false
    }
    out := make([]model.CalendarEvent, len(v.events))
    copy(out, v.events)
    return out, true
}

// Refresh runs a full reconciliation pass for the view.  The stale
// flag is true when the pass failed and the previous event list is
// being served instead: the calendar stays stale-but-displayed rather
// than going blank.  Identity and authorization failures are returned
// as-is so handlers can redirect to login instead of showing stale
// data under the wrong identity.
func (r *Reconciler) Refresh(ctx context.Context, view *CalendarView, auth model.AuthContext, visible time.Time) ([]model.CalendarEvent, bool, error) {
    gen := view.NextGeneration()
    events, err := r.ReconcileMonth(ctx, auth, visible)
    if err != nil {
        if errors.Is(err, ErrMissingIdentity) || errors.Is(err, gymapi.ErrUnauthorized) {
            return nil, false, err
        }
        log.Printf("reconciler: month fetch failed, keeping previous events: %v", err)
        if prev, ok := view.Events(); ok {
            return prev, true, nil
        }
        return nil, false, err
    }
    if !view.Apply(gen, events) {
        // A newer navigation superseded this pass while it was in
        // flight.  Serve the view's current contents instead.
        if cur, ok := view.Events(); ok {
            return cur, false, nil
        }
    }
    return events, false, nil
}

// ViewRegistry hands out one CalendarView per user.  Views only exist
// to arbitrate concurrent passes and to keep the previous list around
// on failure; they are not a cache, every request still re-fetches.
type ViewRegistry struct {
    mu    sync.Mutex
    views map[string]*CalendarView
}

// NewViewRegistry returns an empty registry.
func NewViewRegistry() *ViewRegistry {
    return &ViewRegistry{views: make(map[string]*CalendarView)}
}

// For returns the view of the given user, creating it on first use.
func (r *ViewRegistry) For(userID string) *CalendarView {
    r.mu.Lock()
    defer r.mu.Unlock()
    v, ok := r.views[userID]
    if !ok {
        v = &CalendarView{}
        r.views[userID] = v
    }
    return v
}
