// Package services contains the application service for the wallet CLI:
// it composes the identity store, ledger, session manager, mining
// simulator, and transfer engine into the operations the UI layer calls.
package services

import (
	"context"
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/common"
	"github.com/torqlabs/torq-wallet/internal/identity"
	"github.com/torqlabs/torq-wallet/internal/ledger"
	"github.com/torqlabs/torq-wallet/internal/logging"
	"github.com/torqlabs/torq-wallet/internal/mining"
	"github.com/torqlabs/torq-wallet/internal/models"
	"github.com/torqlabs/torq-wallet/internal/session"
	"github.com/torqlabs/torq-wallet/internal/transfer"
	"github.com/torqlabs/torq-wallet/internal/wallet"
)

// addressRetryLimit bounds wallet-address regeneration on collision; with
// 160 random bits a single retry is already vanishingly unlikely.
const addressRetryLimit = 5

// WalletService exposes the wallet operations to the UI layer.
type WalletService struct {
	accounts *identity.Store
	ledger   *ledger.Store
	sessions *session.Manager
	miner    *mining.Simulator
	engine   *transfer.Engine
	log      logging.Logger
}

func NewWalletService(
	accounts *identity.Store,
	ledgerStore *ledger.Store,
	sessions *session.Manager,
	miner *mining.Simulator,
	engine *transfer.Engine,
	log logging.Logger,
) *WalletService {
	return &WalletService{
		accounts: accounts,
		ledger:   ledgerStore,
		sessions: sessions,
		miner:    miner,
		engine:   engine,
		log:      log,
	}
}

// Restore rehydrates the persisted session, if a valid one exists.
func (s *WalletService) Restore(ctx context.Context) (models.Account, bool, error) {
	return s.sessions.Current(ctx)
}

// Current returns the active account. Returns common.ErrInvalidCredentials
// when nobody is logged in.
func (s *WalletService) Current(ctx context.Context) (models.Account, error) {
	account, ok, err := s.sessions.Current(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if !ok {
		return models.Account{}, common.ErrInvalidCredentials
	}
	return account, nil
}

// Register creates a new account. It does not log the account in; the
// caller follows up with Login.
func (s *WalletService) Register(ctx context.Context, username, email string, password []byte) (models.Account, error) {
	if username == "" || email == "" || len(password) == 0 {
		return models.Account{}, common.ErrMissingFields
	}
	return s.accounts.Register(ctx, username, email, password)
}

// Login authenticates and makes the account the active session.
func (s *WalletService) Login(ctx context.Context, email string, password []byte) (models.Account, error) {
	account, err := s.accounts.Login(ctx, email, password)
	if err != nil {
		return models.Account{}, err
	}
	if err := s.sessions.Set(ctx, account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// Logout destroys the active session. A running mining session is
// cancelled with no reward.
func (s *WalletService) Logout(ctx context.Context) error {
	if s.miner.State() == mining.StateMining {
		_ = s.miner.Stop()
	}
	return s.sessions.Clear(ctx)
}

// CreateWallet binds a freshly generated address and private key to the
// active account. The private key is returned exactly once and is not
// recoverable afterwards. Creating a wallet on an account that already has
// one is refused: the address is immutable.
func (s *WalletService) CreateWallet(ctx context.Context) (models.Account, string, error) {
	account, err := s.Current(ctx)
	if err != nil {
		return models.Account{}, "", err
	}
	if account.HasWallet() {
		return models.Account{}, "", fmt.Errorf("wallet already exists for %s", account.Email)
	}

	address, err := s.uniqueAddress(ctx)
	if err != nil {
		return models.Account{}, "", err
	}
	privateKey, err := wallet.GeneratePrivateKey()
	if err != nil {
		return models.Account{}, "", err
	}

	account.WalletAddress = address
	account.PrivateKey = privateKey
	if err := s.accounts.Update(ctx, account); err != nil {
		return models.Account{}, "", err
	}
	if err := s.sessions.Set(ctx, account); err != nil {
		return models.Account{}, "", err
	}

	s.log.Info(ctx, "wallet created", "address", models.FormatAddress(address))
	return account, privateKey, nil
}

func (s *WalletService) uniqueAddress(ctx context.Context) (string, error) {
	for i := 0; i < addressRetryLimit; i++ {
		address, err := wallet.GenerateAddress()
		if err != nil {
			return "", err
		}
		used, err := s.accounts.AddressInUse(ctx, address)
		if err != nil {
			return "", err
		}
		if !used {
			return address, nil
		}
	}
	return "", fmt.Errorf("failed to generate an unused wallet address")
}

// StartMining begins a mining session for the active account. onTick
// receives the refreshed readout each tick. Completion credits the reward
// and records the transaction; see completeMining.
func (s *WalletService) StartMining(ctx context.Context, onTick func(mining.Progress)) error {
	account, err := s.Current(ctx)
	if err != nil {
		return err
	}
	return s.miner.Start(ctx, account.WalletAddress, onTick, func(reward float64) {
		s.completeMining(account, reward)
	})
}

// completeMining runs on the simulator's goroutine when a session reaches
// 100%. It must not be interrupted between reading and writing the
// balance; the engine serializes it against concurrent transfers.
func (s *WalletService) completeMining(account models.Account, reward float64) {
	ctx := context.Background()

	res, err := s.engine.CreditMiningReward(ctx, account, reward)
	if err != nil {
		s.log.Error(ctx, "failed to apply mining reward", "error", err)
		return
	}

	// Completion can race a logout: the simulator goes Idle before this
	// callback runs, so Logout may already have cleared the session. Only
	// refresh a session that still belongs to the credited account; the
	// reward itself stays on the stored record either way.
	current, ok, err := s.sessions.Current(ctx)
	if err != nil || !ok || current.ID != res.Account.ID {
		return
	}
	if err := s.sessions.Set(ctx, res.Account); err != nil {
		s.log.Error(ctx, "failed to refresh session after mining", "error", err)
	}
}

// StopMining cancels the running session with no reward.
func (s *WalletService) StopMining() error {
	return s.miner.Stop()
}

// MiningState returns the simulator state.
func (s *WalletService) MiningState() mining.State {
	return s.miner.State()
}

// Send transfers tokens from the active account to a recipient address and
// refreshes the session snapshot with the new balance.
func (s *WalletService) Send(ctx context.Context, recipient, amount string) (*transfer.Result, error) {
	account, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !account.HasWallet() {
		return nil, common.ErrNoWallet
	}

	res, err := s.engine.Transfer(ctx, account, recipient, amount)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, res.Account); err != nil {
		return nil, err
	}
	return res, nil
}

// History returns the active account's transaction feed, newest first.
func (s *WalletService) History(ctx context.Context) ([]models.Transaction, error) {
	account, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !account.HasWallet() {
		return nil, common.ErrNoWallet
	}
	return s.ledger.TransactionsFor(ctx, account.WalletAddress)
}
