// Package common defines shared helpers and sentinel errors used across
// the Torq wallet CLI layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Identity errors. Login deliberately reports the same error for an
	// unknown email and a wrong password.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Transfer validation errors, in the order the engine checks them.
	ErrMissingFields       = errors.New("please fill in all fields")
	ErrInvalidAmount       = errors.New("please enter a valid amount")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSelfTransfer        = errors.New("cannot send tokens to yourself")

	// Wallet / mining state errors.
	ErrNoWallet      = errors.New("wallet not created")
	ErrAlreadyMining = errors.New("mining already in progress")
	ErrNotMining     = errors.New("no mining session in progress")

	// Session errors (invalid or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
