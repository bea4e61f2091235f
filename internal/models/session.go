package models

// Session is the persisted record of the currently authenticated account.
// At most one exists per local store.
type Session struct {
	// Account is a sanitized snapshot of the active account (no password
	// material). Refreshed whenever the account record changes.
	Account Account `json:"account"`

	// Token is a signed HS256 token carrying the account id and expiry;
	// rehydration on startup drops the session if it no longer validates.
	Token string `json:"token"`
}
