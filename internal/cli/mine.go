package cli

import (
	"context"
	"fmt"

	"github.com/torqlabs/torq-wallet/internal/mining"
)

// Mine starts a mining session for the active account. Progress renders in
// place on the current line; the session keeps running while other
// commands are entered, and 'stopmine' cancels it.
func (a *App) Mine(ctx context.Context) error {
	err := a.svc.StartMining(ctx, func(p mining.Progress) {
		fmt.Fprintf(a.out, "\rMining... %5.1f%% | %5.1f H/s | ETA %ds ",
			p.Percent, p.HashRate, p.RemainingSeconds())
		if p.Percent >= 100 {
			fmt.Fprintln(a.out)
			fmt.Fprintln(a.out, "Mining complete! Reward credited; see 'balance'.")
		}
	})
	if err != nil {
		fmt.Fprintf(a.out, "Cannot start mining: %s\n", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Mining started. Rewards: 1 - 100 TQ per successful mine.")
	return nil
}

// StopMine cancels the running mining session. No reward is credited and
// nothing is recorded.
func (a *App) StopMine(ctx context.Context) error {
	if err := a.svc.StopMining(); err != nil {
		fmt.Fprintf(a.out, "Cannot stop mining: %s\n", err.Error())
		return err
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Mining stopped. No reward for a cancelled session.")
	return nil
}
