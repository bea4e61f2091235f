// Package cli implements the interactive Torq wallet console: a small REPL
// over the wallet service, in the spirit of a terminal wallet.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/torqlabs/torq-wallet/internal/config"
	"github.com/torqlabs/torq-wallet/internal/identity"
	"github.com/torqlabs/torq-wallet/internal/kv"
	"github.com/torqlabs/torq-wallet/internal/ledger"
	"github.com/torqlabs/torq-wallet/internal/logging"
	"github.com/torqlabs/torq-wallet/internal/mining"
	"github.com/torqlabs/torq-wallet/internal/models"
	"github.com/torqlabs/torq-wallet/internal/services"
	"github.com/torqlabs/torq-wallet/internal/session"
	"github.com/torqlabs/torq-wallet/internal/transfer"
)

// App holds the CLI state: the composed wallet service, the active user
// display name, and the input/output streams.
type App struct {
	config *config.Config
	svc    *services.WalletService
	store  kv.Store
	log    logging.Logger

	userName string
	loggedIn bool

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store, wires the wallet service, and returns the
// CLI ready to run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := kv.OpenSQLite(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	accounts := identity.NewStore(store)
	ledgerStore := ledger.NewStore(store)
	sessions := session.NewManager(store, []byte(c.SessionSecret), c.SessionTTL)
	miner := mining.New(c.MiningTickInterval, log)
	engine := transfer.NewEngine(accounts, ledgerStore, c.TransferDelay, log)

	svc := services.NewWalletService(accounts, ledgerStore, sessions, miner, engine, log)

	return &App{
		config: c,
		svc:    svc,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run rehydrates a persisted session and enters the REPL. It returns when
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()

	if account, ok, err := a.svc.Restore(ctx); err == nil && ok {
		a.setUser(account)
		fmt.Fprintf(a.out, "Welcome back, %s!\n", account.Username)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) setUser(account models.Account) {
	a.userName = account.Username
	a.loggedIn = true
}

func (a *App) clearUser() {
	a.userName = ""
	a.loggedIn = false
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
