package domain

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

type Network struct {
	Name      string
	Bech32HRP string
}

var (
	MainNet = Network{Name: "main", Bech32HRP: "ocv"}
	TestNet = Network{Name: "test", Bech32HRP: "tb"}
	SigNet  = Network{Name: "signet", Bech32HRP: "tb"}
	RegTest = Network{Name: "regtest", Bech32HRP: "bcrt"}

	networksByName = map[string]Network{
		MainNet.Name: MainNet,
		TestNet.Name: TestNet,
		SigNet.Name:  SigNet,
		RegTest.Name: RegTest,
	}
	networksByFlag = map[string]Network{
		"testnet": TestNet,
		"signet":  SigNet,
		"regtest": RegTest,
	}
)

// NetworkFromArgs detects the chain selected by wallet command arguments.
// The last chain selecting argument wins; with none, the wallet runs on main.
// An unknown -chain value yields a network without a bech32 prefix.
func NetworkFromArgs(args []string) Network {
	net := MainNet
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")

		if name == "chain" && hasValue {
			if n, ok := networksByName[value]; ok {
				net = n
			} else {
				net = Network{Name: value}
			}
			continue
		}

		n, ok := networksByFlag[name]
		if !ok {
			continue
		}
		if hasValue && value == "0" {
			continue
		}
		net = n
	}
	return net
}

// ValidateAddress checks that addr is a well formed bech32 (or bech32m)
// string carrying the network's human readable part.
func (n Network) ValidateAddress(addr string) error {
	if len(n.Bech32HRP) <= 0 {
		return nil
	}

	hrp, _, _, err := bech32.DecodeGeneric(addr)
	if err != nil {
		return fmt.Errorf("invalid bech32 address %q: %s", addr, err)
	}
	if hrp != n.Bech32HRP {
		return fmt.Errorf(
			"address %q has prefix %q, expected %q for %s network",
			addr, hrp, n.Bech32HRP, n.Name,
		)
	}
	return nil
}
