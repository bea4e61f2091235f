package models

import "fmt"

// FormatAddress shortens a wallet address for display: first 6 and last 4
// characters joined by an ellipsis, e.g. "0xab12...ef90". Addresses too
// short to shorten are returned unchanged.
func FormatAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:6], address[len(address)-4:])
}

// FormatTQ renders a token amount with the display precision used
// throughout the UI, e.g. "42.5000 TQ".
func FormatTQ(amount float64) string {
	return fmt.Sprintf("%.4f TQ", amount)
}
