package cli

import (
	"context"
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/models"
)

// Send prompts for a recipient address and an amount and submits the
// transfer. Validation failures and the simulated processing delay both
// surface here.
func (a *App) Send(ctx context.Context) error {
	recipient, err := GetSimpleText(a.reader, "Enter recipient address", a.out)
	if err != nil {
		return err
	}
	amount, err := GetSimpleText(a.reader, "Enter amount (TQ)", a.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Processing transaction...")

	res, err := a.svc.Send(ctx, recipient, amount)
	if err != nil {
		fmt.Fprintf(a.out, "Transfer failed: %s\n", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Successfully sent %s to %s\n",
		models.FormatTQ(res.Transaction.Amount), models.FormatAddress(res.Transaction.To))
	fmt.Fprintf(a.out, "New balance: %s\n", models.FormatTQ(res.Account.Balance))
	return nil
}
