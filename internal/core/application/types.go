package application

import (
	"context"

	"github.com/ocvcoin/getcoins/internal/core/domain"
)

type Service interface {
	Claim(ctx context.Context, req domain.Request) (*ClaimResult, error)
}

type ClaimResult struct {
	Address  string
	Response string
}
