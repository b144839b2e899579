package faucetclient

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/ocvcoin/getcoins/internal/core/ports"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type service struct {
	url    string
	client *resty.Client
}

func NewService(url string) ports.FaucetService {
	return &service{
		url:    url,
		client: resty.New(),
	}
}

// Claim posts the form url-encoded and returns the response body whatever
// the status code, since faucets report refusals in the body.
func (s *service) Claim(
	ctx context.Context, form map[string]string,
) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(s.url)
	if err != nil {
		return "", errors.Wrapf(err, "failed to post to %s", s.url)
	}

	log.Debugf("faucet replied with status %s", resp.Status())

	// resp.String() trims the body, keep it verbatim.
	return string(resp.Body()), nil
}
