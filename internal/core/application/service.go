package application

import (
	"context"

	"github.com/ocvcoin/getcoins/internal/core/domain"
	"github.com/ocvcoin/getcoins/internal/core/ports"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type service struct {
	wallet ports.WalletService
	faucet ports.FaucetService
}

func NewService(
	walletSvc ports.WalletService, faucetSvc ports.FaucetService,
) Service {
	return &service{walletSvc, faucetSvc}
}

func (s *service) Claim(
	ctx context.Context, req domain.Request,
) (*ClaimResult, error) {
	req = req.WithDefaults()

	if req.NeedsAddress() {
		addr, err := s.getNewAddress(ctx, req)
		if err != nil {
			return nil, err
		}
		req.Address = addr
	}

	if req.IsInsecure() {
		log.Warnf(
			"faucet url %s is not using TLS, password will be sent in clear",
			req.FaucetURL,
		)
	}

	log.Debugf("claim request: %s", req)

	res, err := s.faucet.Claim(ctx, req.Form())
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}

	return &ClaimResult{
		Address:  req.Address,
		Response: res,
	}, nil
}

func (s *service) getNewAddress(
	ctx context.Context, req domain.Request,
) (string, error) {
	args := req.NewAddressArgs()
	log.Debugf("requesting new address with %s %v", req.Command, args)

	addr, err := s.wallet.GetNewAddress(ctx, args...)
	if err != nil {
		if errors.Is(err, domain.ErrBinaryNotFound) {
			return "", err
		}
		return "", errors.Wrap(err, "failed to get new address from wallet")
	}

	net := req.Network()
	if err := net.ValidateAddress(addr); err != nil {
		log.WithError(err).Warn("wallet returned an unexpected address")
	}

	return addr, nil
}
