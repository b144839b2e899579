package main

import (
	"strconv"

	"github.com/ocvcoin/getcoins/internal/config"
	"github.com/ocvcoin/getcoins/internal/core/domain"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	cmdValue, faucetValue, addrValue, passwordValue string

	cmdFlag = cli.StringFlag{
		Name:        "cmd",
		Aliases:     []string{"c"},
		Usage:       "ocvcoin-cli command to use",
		DefaultText: domain.DefaultCommand,
		Destination: &cmdValue,
	}
	faucetFlag = cli.StringFlag{
		Name:        "faucet",
		Aliases:     []string{"f"},
		Usage:       "URL of the faucet",
		DefaultText: domain.DefaultFaucetURL,
		Destination: &faucetValue,
	}
	addrFlag = cli.StringFlag{
		Name:        "addr",
		Aliases:     []string{"a"},
		Usage:       "Ocvcoin address to which the faucet should send",
		Destination: &addrValue,
	}
	passwordFlag = cli.StringFlag{
		Name:        "password",
		Aliases:     []string{"p"},
		Usage:       "Faucet password, if any",
		Destination: &passwordValue,
	}
	logLevelFlag = cli.IntFlag{
		Name:        "log-level",
		Usage:       "log level, from 0 (panic) to 6 (trace)",
		DefaultText: strconv.Itoa(int(log.InfoLevel)),
	}
)

// flagOverrides collects only the flags explicitly set on the command line,
// so that environment variables keep working for the others.
func flagOverrides(ctx *cli.Context) map[string]interface{} {
	overrides := make(map[string]interface{})

	stringFlags := []struct {
		flag  *cli.StringFlag
		key   string
		value string
	}{
		{&cmdFlag, config.Command, cmdValue},
		{&faucetFlag, config.FaucetURL, faucetValue},
		{&addrFlag, config.Address, addrValue},
		{&passwordFlag, config.Password, passwordValue},
	}
	for _, f := range stringFlags {
		if ctx.IsSet(f.flag.Name) {
			overrides[f.key] = f.value
		}
	}

	if ctx.IsSet(logLevelFlag.Name) {
		overrides[config.LogLevel] = ctx.Int(logLevelFlag.Name)
	}

	return overrides
}
