package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrBinaryNotFound = errors.New("wallet binary not found")

// NetworkError reports any failure occurred while contacting the faucet.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to contact faucet: %s", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TypeName returns the Go type of the root cause, eg. *url.Error.
func (e *NetworkError) TypeName() string {
	return fmt.Sprintf("%T", errors.Cause(e.Err))
}
