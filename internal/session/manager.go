// Package session manages the single active account: persisted on login,
// cleared on logout, rehydrated on startup when its token still validates.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/torqlabs/torq-wallet/internal/common"
	"github.com/torqlabs/torq-wallet/internal/kv"
	"github.com/torqlabs/torq-wallet/internal/models"
)

// Claims are the session token claims: the registered set plus the account
// id the session belongs to.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string
}

// Manager persists at most one active session in the backing store.
type Manager struct {
	kv     kv.Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store kv.Store, secret []byte, ttl time.Duration) *Manager {
	return &Manager{kv: store, secret: secret, ttl: ttl}
}

func (m *Manager) generateToken(accountID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		AccountID: accountID,
	})
	return token.SignedString(m.secret)
}

func (m *Manager) accountIDFromToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}
	return claims.AccountID, nil
}

// Set makes account the active session, replacing any previous one. The
// stored snapshot is sanitized and paired with a fresh signed token.
func (m *Manager) Set(ctx context.Context, account models.Account) error {
	token, err := m.generateToken(account.ID)
	if err != nil {
		return fmt.Errorf("failed to sign session token: %w", err)
	}

	b, err := json.Marshal(models.Session{Account: account.Sanitized(), Token: token})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := m.kv.SaveOne(ctx, kv.KeyActiveAccount, b); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Current returns the active account, if any. A missing, corrupt, expired,
// or tampered session yields (zero, false, nil): rehydration fails open to
// logged-out rather than raising.
func (m *Manager) Current(ctx context.Context) (models.Account, bool, error) {
	b, err := m.kv.LoadOne(ctx, kv.KeyActiveAccount)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	if b == nil {
		return models.Account{}, false, nil
	}

	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return models.Account{}, false, nil
	}

	accountID, err := m.accountIDFromToken(sess.Token)
	if err != nil || accountID != sess.Account.ID {
		return models.Account{}, false, nil
	}

	return sess.Account, true, nil
}

// Clear destroys the active session. Clearing when none exists is fine.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.kv.DeleteOne(ctx, kv.KeyActiveAccount); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
