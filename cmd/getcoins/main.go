package main

import (
	"fmt"
	"os"

	"github.com/ocvcoin/getcoins/internal/config"
	"github.com/ocvcoin/getcoins/internal/core/application"
	"github.com/ocvcoin/getcoins/internal/core/domain"
	faucetclient "github.com/ocvcoin/getcoins/internal/infrastructure/faucet-client"
	walletcli "github.com/ocvcoin/getcoins/internal/infrastructure/wallet-cli"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

//nolint:all
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Println(fmt.Errorf("error: %v", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	app.Name = "getcoins"
	app.Usage = "Script to get coins from a faucet."
	app.UsageText = "getcoins [options] [-- ocvcoin-cli args...]"
	app.Description = "You may need to start with double-dash (--) when providing ocvcoin-cli arguments."
	app.ArgsUsage = "[ocvcoin-cli args...]"
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		&cmdFlag, &faucetFlag, &addrFlag, &passwordFlag, &logLevelFlag,
	}
	app.Action = getCoinsAction

	return app
}

func getCoinsAction(ctx *cli.Context) error {
	cfg, err := config.LoadConfig(flagOverrides(ctx), ctx.Args().Slice())
	if err != nil {
		return err
	}

	log.SetLevel(log.Level(cfg.LogLevel))
	log.Debugf("config: %s", cfg)

	svc := application.NewService(
		walletcli.NewService(cfg.Command),
		faucetclient.NewService(cfg.FaucetURL),
	)

	out := ctx.App.Writer

	res, err := svc.Claim(ctx.Context, cfg.Request())
	if err != nil {
		if errors.Is(err, domain.ErrBinaryNotFound) {
			fmt.Fprintln(out, "The binary", cfg.Command, "could not be found.")
			return nil
		}

		var netErr *domain.NetworkError
		if errors.As(err, &netErr) {
			log.WithError(netErr.Err).Debug("faucet request failed")
			fmt.Fprintln(
				out, "Unexpected error when contacting faucet:", netErr.TypeName(),
			)
			return nil
		}

		return err
	}

	log.Debugf("faucet answered for address %s", res.Address)
	fmt.Fprintln(out, res.Response)
	return nil
}
