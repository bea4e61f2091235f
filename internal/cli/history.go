package cli

import (
	"context"
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/models"
)

// History prints the active account's transaction feed, newest first.
func (a *App) History(ctx context.Context) error {
	account, err := a.svc.Current(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	feed, err := a.svc.History(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	if len(feed) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return nil
	}

	for _, tx := range feed {
		fmt.Fprintln(a.out, formatFeedRow(tx, account.WalletAddress))
	}
	return nil
}

// formatFeedRow renders one feed line from the perspective of the given
// wallet address: mining rewards, outgoing sends, and incoming amounts
// derived from the shared ledger.
func formatFeedRow(tx models.Transaction, walletAddress string) string {
	when := tx.Timestamp.Local().Format("2006-01-02 15:04:05")

	switch {
	case tx.Kind == models.TxMined:
		return fmt.Sprintf("%s  MINED     +%s  from mining pool  %s",
			when, models.FormatTQ(tx.Amount), models.FormatAddress(tx.Hash))
	case tx.From == walletAddress:
		return fmt.Sprintf("%s  SENT      -%s  to %s  %s",
			when, models.FormatTQ(tx.Amount), models.FormatAddress(tx.To), models.FormatAddress(tx.Hash))
	default:
		return fmt.Sprintf("%s  RECEIVED  +%s  from %s  %s",
			when, models.FormatTQ(tx.Amount), models.FormatAddress(tx.From), models.FormatAddress(tx.Hash))
	}
}
