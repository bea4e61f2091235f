// Package identity implements the account store: registration, login, and
// account updates over the injected persistence collaborator.
package identity

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/torqlabs/torq-wallet/internal/common"
	"github.com/torqlabs/torq-wallet/internal/cryptox"
	"github.com/torqlabs/torq-wallet/internal/kv"
	"github.com/torqlabs/torq-wallet/internal/models"
)

// Store holds registered accounts. All reads go through the persistence
// collaborator, so two stores over the same backing see the same accounts.
//
// Every operation runs its full load-modify-save cycle under one mutex:
// a registration on the console goroutine and a balance update on the
// mining goroutine both rewrite the whole accounts collection, so an
// unserialized interleaving would let one overwrite the other's record.
type Store struct {
	mu sync.Mutex
	kv kv.Store
}

func NewStore(store kv.Store) *Store {
	return &Store{kv: store}
}

// loadAccounts decodes the accounts collection. A record that does not
// decode is skipped: corrupt storage fails open to whatever else is
// readable, never to an error. Callers hold s.mu.
func (s *Store) loadAccounts(ctx context.Context) ([]models.Account, error) {
	records, err := s.kv.LoadAll(ctx, kv.CollectionAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	accounts := make([]models.Account, 0, len(records))
	for _, r := range records {
		var a models.Account
		if err := json.Unmarshal(r, &a); err != nil {
			continue
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (s *Store) saveAccounts(ctx context.Context, accounts []models.Account) error {
	records := make([][]byte, 0, len(accounts))
	for _, a := range accounts {
		b, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to encode account %s: %w", a.ID, err)
		}
		records = append(records, b)
	}
	if err := s.kv.SaveAll(ctx, kv.CollectionAccounts, records); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}

// Register creates a new account with a zero balance and no wallet.
// The email must not be registered yet (case-sensitive exact match);
// otherwise common.ErrDuplicateEmail is returned. The password is stored
// as a salted argon2id hash. The returned account carries no password
// material.
func (s *Store) Register(ctx context.Context, username, email string, password []byte) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return models.Account{}, common.ErrDuplicateEmail
		}
	}

	salt := common.GenerateRandByteArray(cryptox.SaltSize)
	hash := cryptox.HashPassword(password, salt)

	account := models.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hex.EncodeToString(hash),
		PasswordSalt: hex.EncodeToString(salt),
		Balance:      0,
		CreatedAt:    time.Now().UTC(),
	}

	accounts = append(accounts, account)
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return models.Account{}, err
	}

	return account.Sanitized(), nil
}

// Login returns the account registered under email if the password
// verifies, with password material stripped. Unknown email and wrong
// password both report common.ErrInvalidCredentials.
func (s *Store) Login(ctx context.Context, email string, password []byte) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		salt, err := hex.DecodeString(a.PasswordSalt)
		if err != nil {
			break
		}
		hash, err := hex.DecodeString(a.PasswordHash)
		if err != nil {
			break
		}
		if cryptox.VerifyPassword(password, salt, hash) {
			return a.Sanitized(), nil
		}
		break
	}

	return models.Account{}, common.ErrInvalidCredentials
}

// Update overwrites the stored record matching account.ID. The stored
// password hash and salt always survive, so callers updating wallet or
// balance fields cannot blank the credential. Returns common.ErrNotFound
// if no account has that id.
func (s *Store) Update(ctx context.Context, account models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}

	for i, a := range accounts {
		if a.ID != account.ID {
			continue
		}
		account.PasswordHash = a.PasswordHash
		account.PasswordSalt = a.PasswordSalt
		accounts[i] = account
		return s.saveAccounts(ctx, accounts)
	}

	return fmt.Errorf("failed to update account %s: %w", account.ID, common.ErrNotFound)
}

// Get returns the account with the given id, password material stripped.
// Returns common.ErrNotFound if no account matches.
func (s *Store) Get(ctx context.Context, id string) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return models.Account{}, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a.Sanitized(), nil
		}
	}
	return models.Account{}, fmt.Errorf("failed to get account %s: %w", id, common.ErrNotFound)
}

// AddressInUse reports whether any registered account is already bound to
// the given wallet address. Wallet creation retries generation on a hit.
func (s *Store) AddressInUse(ctx context.Context, address string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range accounts {
		if a.WalletAddress == address {
			return true, nil
		}
	}
	return false, nil
}
