package cli

import (
	"context"
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/common"
)

// Login prompts for credentials and makes the account the active session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.svc.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err.Error())
		return err
	}

	a.setUser(account)
	fmt.Fprintf(a.out, "Logged in as %s\n", account.Username)
	if !account.HasWallet() {
		fmt.Fprintln(a.out, "No wallet yet. Use 'wallet' to create one.")
	}
	return nil
}

// Logout destroys the active session; a running mining session is
// cancelled without a reward.
func (a *App) Logout(ctx context.Context) error {
	if err := a.svc.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err.Error())
		return err
	}
	a.clearUser()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
