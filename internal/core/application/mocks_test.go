package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockedWallet struct {
	mock.Mock
}

func (m *mockedWallet) GetNewAddress(ctx context.Context, args ...string) (string, error) {
	a := m.Called(ctx, args)

	var res string
	if v := a.Get(0); v != nil {
		res = v.(string)
	}
	return res, a.Error(1)
}

type mockedFaucet struct {
	mock.Mock
}

func (m *mockedFaucet) Claim(ctx context.Context, form map[string]string) (string, error) {
	a := m.Called(ctx, form)

	var res string
	if v := a.Get(0); v != nil {
		res = v.(string)
	}
	return res, a.Error(1)
}
