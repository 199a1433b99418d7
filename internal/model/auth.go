package model

// Role identifies what kind of user is looking at the calendar.  The
// role decides both the shape of the reconciled events and which
// actions a click resolves to.
type Role string

const (
    RoleStudent Role = "STUDENT"
    RoleTrainer Role = "TRAINER"
)

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
    switch Role(s) {
    case RoleStudent, RoleTrainer:
        return true
    }
    return false
}

// AuthContext carries the authenticated caller's identity through the
// service.  It is extracted once from the bearer token by the auth
// middleware and passed explicitly to the reconciler and the upstream
// client, instead of being looked up from ambient storage at each
// call site.  Token is the raw bearer token, forwarded verbatim to
// the upstream gym API.
type AuthContext struct {
    UserID string
    Role   Role
    Token  string
}

// Complete reports whether the context identifies a user well enough
// to reconcile a calendar.  Both the user id and a known role are
// required; anything less sends the caller back to login.
func (a AuthContext) Complete() bool {
    return a.UserID != "" && ValidRole(string(a.Role))
}
