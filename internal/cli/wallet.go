package cli

import (
	"context"
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/models"
)

// Wallet shows the account's wallet address, creating the wallet first if
// none exists. The private key is displayed only at creation time.
func (a *App) Wallet(ctx context.Context) error {
	account, err := a.svc.Current(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}

	if account.HasWallet() {
		fmt.Fprintf(a.out, "Wallet address: %s\n", account.WalletAddress)
		return nil
	}

	created, privateKey, err := a.svc.CreateWallet(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Wallet creation failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Wallet created!")
	fmt.Fprintf(a.out, "Address:     %s\n", created.WalletAddress)
	fmt.Fprintf(a.out, "Private key: %s\n", privateKey)
	fmt.Fprintln(a.out, "Save the private key now. It will not be shown again.")
	return nil
}

// Balance prints the active account's balance.
func (a *App) Balance(ctx context.Context) error {
	account, err := a.svc.Current(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		return err
	}
	fmt.Fprintf(a.out, "Balance: %s\n", models.FormatTQ(account.Balance))
	return nil
}
