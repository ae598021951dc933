package domain

import "context"

// Session is an issued bearer token plus the user snapshot it came with.
type Session struct {
	Token string
	User  *User
}

// RedeemResult is the server's response to a sponsor-code redemption: the
// refreshed user record and, when the server rotated it, a new token.
type RedeemResult struct {
	Token string
	User  *User
}

// AccessCheck is the server-side advisory answer for one module. The
// client-side entitlement decision remains binding; this exists for
// defense in depth.
type AccessCheck struct {
	Module        string `json:"module"`
	ModuleName    string `json:"module_name"`
	Allowed       bool   `json:"allowed"`
	Reason        string `json:"reason"`
	TrialDaysLeft *int   `json:"trial_days_left"`
}

// SessionStore persists the single opaque session token across process
// restarts. Implementations must fail open: a missing backing store reads
// as an absent token, never as a fatal error.
type SessionStore interface {
	// Get returns the stored token, or the empty string when none exists.
	Get(ctx context.Context) (string, error)

	// Set persists the token, replacing any previous one.
	Set(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}
