package ports

import "context"

type WalletService interface {
	// GetNewAddress runs the wallet command with the given arguments and
	// returns its trimmed output.
	GetNewAddress(ctx context.Context, args ...string) (string, error)
}
