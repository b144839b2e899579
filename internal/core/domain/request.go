package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultCommand   = "ocvcoin-cli"
	DefaultFaucetURL = "https://signetfaucet.com/claim"

	AddressField  = "address"
	PasswordField = "password"
)

var (
	defaultWalletArgs = []string{"-signet"}
	newAddressArgs    = []string{"getnewaddress", "faucet", "bech32"}
)

// Request holds everything needed for a single faucet claim.
type Request struct {
	Command    string
	FaucetURL  string
	Address    string
	Password   string
	WalletArgs []string
}

func (r Request) NeedsAddress() bool {
	return len(r.Address) <= 0
}

// WithDefaults returns a copy of the request where the wallet arguments
// select signet if the address must be resolved and none were given.
func (r Request) WithDefaults() Request {
	if r.NeedsAddress() && len(r.WalletArgs) <= 0 {
		r.WalletArgs = append([]string{}, defaultWalletArgs...)
	}
	return r
}

// NewAddressArgs returns the full argument list passed to the wallet command
// to generate a receiving address.
func (r Request) NewAddressArgs() []string {
	args := make([]string, 0, len(r.WalletArgs)+len(newAddressArgs))
	args = append(args, r.WalletArgs...)
	return append(args, newAddressArgs...)
}

func (r Request) Network() Network {
	return NetworkFromArgs(r.WalletArgs)
}

func (r Request) Form() map[string]string {
	return map[string]string{
		AddressField:  r.Address,
		PasswordField: r.Password,
	}
}

// IsInsecure tells whether the password would travel in clear text.
func (r Request) IsInsecure() bool {
	if len(r.Password) <= 0 {
		return false
	}
	u, err := url.Parse(r.FaucetURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "http")
}

func (r Request) String() string {
	password := ""
	if len(r.Password) > 0 {
		password = "********"
	}
	return fmt.Sprintf(
		"cmd=%s faucet=%s addr=%s password=%s wallet_args=%v",
		r.Command, r.FaucetURL, r.Address, password, r.WalletArgs,
	)
}
