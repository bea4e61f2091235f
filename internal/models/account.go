// Package models defines the data records persisted by the Torq wallet
// simulator: accounts, ledger transactions, and the active session.
package models

import "time"

// Account is a registered identity, optionally bound to a wallet address.
//
// PasswordHash/PasswordSalt hold the argon2id credential material and are
// stripped from any copy handed to the UI layer (see Sanitized).
type Account struct {
	// ID is a globally unique identifier assigned at registration.
	ID string `json:"id"`

	// Username is the display name; not required to be unique.
	Username string `json:"username"`

	// Email is the login identity, unique across all accounts
	// (case-sensitive exact match).
	Email string `json:"email"`

	// PasswordHash is the hex-encoded argon2id hash of the password.
	PasswordHash string `json:"passwordHash,omitempty"`

	// PasswordSalt is the hex-encoded per-account random salt.
	PasswordSalt string `json:"passwordSalt,omitempty"`

	// WalletAddress is empty until wallet creation; once set it never
	// changes for the lifetime of the account.
	WalletAddress string `json:"walletAddress"`

	// PrivateKey is the companion secret generated at wallet creation.
	// It is shown to the user once and never required again.
	PrivateKey string `json:"privateKey"`

	// Balance is the token balance in TQ. Never negative; mutated only by
	// mining completion and outgoing transfers.
	Balance float64 `json:"balance"`

	// CreatedAt is the registration time in UTC.
	CreatedAt time.Time `json:"createdAt"`
}

// HasWallet reports whether the account has been bound to a wallet address.
// A pre-wallet account cannot mine or send/receive tokens.
func (a Account) HasWallet() bool {
	return a.WalletAddress != ""
}

// Sanitized returns a copy of the account with credential material removed.
// This is the shape cached in the active session and shown to the UI.
func (a Account) Sanitized() Account {
	a.PasswordHash = ""
	a.PasswordSalt = ""
	return a
}
