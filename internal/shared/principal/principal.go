package principal

import "strings"

// Role is the access level carried by an authenticated user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal identifies the caller of a request: either an authenticated user
// or an anonymous session. Exactly one of UserID and SessionID is set.
type Principal struct {
	UserID    string
	SessionID string
	Role      Role
}

// User returns a principal for an authenticated user.
func User(id string, role Role) Principal {
	if role == "" {
		role = RoleUser
	}
	return Principal{UserID: id, Role: role}
}

// Session returns a principal for an anonymous session.
func Session(id string) Principal {
	return Principal{SessionID: id}
}

// Zero reports whether no identity is present.
func (p Principal) Zero() bool {
	return strings.TrimSpace(p.UserID) == "" && strings.TrimSpace(p.SessionID) == ""
}

// Authenticated reports whether the principal is a signed-in user.
func (p Principal) Authenticated() bool {
	return strings.TrimSpace(p.UserID) != ""
}

// Admin reports whether the principal is an administrator.
func (p Principal) Admin() bool {
	return p.Authenticated() && p.Role == RoleAdmin
}

// Owns reports whether this principal owns a record attributed to the given
// user and session IDs. A match on either non-empty side suffices; empty
// stored IDs never match.
func (p Principal) Owns(ownerUserID, ownerSessionID string) bool {
	if ownerUserID != "" && p.UserID == ownerUserID {
		return true
	}
	if ownerSessionID != "" && p.SessionID == ownerSessionID {
		return true
	}
	return false
}

// Key returns a stable identifier for rate limiting and storage namespacing.
func (p Principal) Key() string {
	if p.Authenticated() {
		return "user:" + p.UserID
	}
	if p.SessionID != "" {
		return "session:" + p.SessionID
	}
	return ""
}
