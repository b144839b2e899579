package ports

import "context"

type FaucetService interface {
	// Claim submits the form to the faucet and returns the raw response body.
	Claim(ctx context.Context, form map[string]string) (string, error)
}
