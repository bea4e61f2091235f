// Package transfer executes the two balance-changing operations of the
// ledger state machine: outgoing transfers and mining-reward credits. Both
// run their read-modify-write of the sender's balance and the ledger append
// under a single lock, so no two mutations can interleave.
package transfer

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/torqlabs/torq-wallet/internal/common"
	"github.com/torqlabs/torq-wallet/internal/identity"
	"github.com/torqlabs/torq-wallet/internal/ledger"
	"github.com/torqlabs/torq-wallet/internal/logging"
	"github.com/torqlabs/torq-wallet/internal/models"
	"github.com/torqlabs/torq-wallet/internal/wallet"
)

// Result carries the outcome of a successful mutation: the account with its
// new balance and the ledger entry that was appended.
type Result struct {
	Account     models.Account
	Transaction models.Transaction
}

// Engine validates and commits balance mutations.
type Engine struct {
	mu       sync.Mutex
	accounts *identity.Store
	ledger   *ledger.Store
	delay    time.Duration
	log      logging.Logger
	now      func() time.Time
}

// NewEngine builds an engine. delay is the simulated processing latency
// applied to transfers after validation passes; there is no real I/O
// behind it.
func NewEngine(accounts *identity.Store, ledgerStore *ledger.Store, delay time.Duration, log logging.Logger) *Engine {
	return &Engine{
		accounts: accounts,
		ledger:   ledgerStore,
		delay:    delay,
		log:      log,
		now:      time.Now,
	}
}

// ValidateRequest runs the transfer pre-conditions in order and returns the
// parsed amount. First failure wins; nothing is mutated.
//
// Order: missing fields, invalid amount (must parse to a finite number
// strictly greater than zero), insufficient balance, self transfer.
func ValidateRequest(sender models.Account, recipient, amount string) (float64, error) {
	if recipient == "" || amount == "" {
		return 0, common.ErrMissingFields
	}

	amt, err := strconv.ParseFloat(amount, 64)
	if err != nil || math.IsNaN(amt) || math.IsInf(amt, 0) || amt <= 0 {
		return 0, common.ErrInvalidAmount
	}

	if amt > sender.Balance {
		return 0, common.ErrInsufficientBalance
	}

	if recipient == sender.WalletAddress {
		return 0, common.ErrSelfTransfer
	}

	return amt, nil
}

// Transfer sends amount tokens from sender to the recipient address.
//
// All pre-conditions are checked before any mutation; a failed transfer
// leaves balance and ledger untouched. On success the sender is debited and
// one "send" entry is appended. The recipient's account, if one exists, is
// deliberately not looked up or credited: incoming amounts surface only
// through the recipient's transaction feed.
func (e *Engine) Transfer(ctx context.Context, sender models.Account, recipient, amount string) (*Result, error) {
	amt, err := ValidateRequest(sender, recipient, amount)
	if err != nil {
		return nil, err
	}

	// Simulated processing latency. Runs before the commit so the balance
	// read-modify-write stays atomic.
	if e.delay > 0 {
		timer := time.NewTimer(e.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Re-read the sender: a mining completion may have landed during the
	// delay.
	fresh, err := e.accounts.Get(ctx, sender.ID)
	if err != nil {
		return nil, err
	}
	if amt > fresh.Balance {
		return nil, common.ErrInsufficientBalance
	}

	tx, err := e.buildTransaction(fresh.WalletAddress, recipient, amt, models.TxSent)
	if err != nil {
		return nil, err
	}

	fresh.Balance -= amt
	if err := e.accounts.Update(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to debit sender: %w", err)
	}
	if err := e.ledger.Append(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record transfer: %w", err)
	}

	e.log.Info(ctx, "transfer committed",
		"from", models.FormatAddress(tx.From), "to", models.FormatAddress(tx.To), "amount", amt)

	return &Result{Account: fresh, Transaction: tx}, nil
}

// CreditMiningReward applies a completed mining session: the account is
// credited with the reward and one "mine" entry from the mining pool is
// appended.
func (e *Engine) CreditMiningReward(ctx context.Context, account models.Account, reward float64) (*Result, error) {
	if !account.HasWallet() {
		return nil, common.ErrNoWallet
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fresh, err := e.accounts.Get(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	tx, err := e.buildTransaction(models.MiningPoolAddress, fresh.WalletAddress, reward, models.TxMined)
	if err != nil {
		return nil, err
	}

	fresh.Balance += reward
	if err := e.accounts.Update(ctx, fresh); err != nil {
		return nil, fmt.Errorf("failed to credit reward: %w", err)
	}
	if err := e.ledger.Append(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record reward: %w", err)
	}

	e.log.Info(ctx, "mining reward credited",
		"wallet", models.FormatAddress(fresh.WalletAddress), "reward", reward)

	return &Result{Account: fresh, Transaction: tx}, nil
}

func (e *Engine) buildTransaction(from, to string, amount float64, kind models.TransactionKind) (models.Transaction, error) {
	hash, err := wallet.GenerateTxHash()
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		ID:        uuid.NewString(),
		From:      from,
		To:        to,
		Amount:    amount,
		Kind:      kind,
		Timestamp: e.now().UTC(),
		Hash:      hash,
	}, nil
}
