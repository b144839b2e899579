package config

import (
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"strings"

	"github.com/ocvcoin/getcoins/internal/core/domain"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Command    string
	FaucetURL  string
	Address    string
	Password   string `json:"-"`
	WalletArgs []string
	LogLevel   int
}

func (c *Config) String() string {
	json, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("error while marshalling config JSON: %s", err)
	}
	return string(json)
}

var (
	Command   = "CMD"
	FaucetURL = "FAUCET"
	Address   = "ADDR"
	Password  = "PASSWORD"
	LogLevel  = "LOG_LEVEL"

	defaultCommand   = domain.DefaultCommand
	defaultFaucetURL = domain.DefaultFaucetURL
	defaultLogLevel  = int(log.InfoLevel)
)

// LoadConfig reads the configuration from GETCOINS_* environment variables.
// Values in overrides, keyed by the variables above, take precedence.
func LoadConfig(
	overrides map[string]interface{}, walletArgs []string,
) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GETCOINS")
	v.AutomaticEnv()

	v.SetDefault(Command, defaultCommand)
	v.SetDefault(FaucetURL, defaultFaucetURL)
	v.SetDefault(Address, "")
	v.SetDefault(Password, "")
	v.SetDefault(LogLevel, defaultLogLevel)

	for key, value := range overrides {
		v.Set(key, value)
	}

	cfg := &Config{
		Command:    expandPath(v.GetString(Command)),
		FaucetURL:  v.GetString(FaucetURL),
		Address:    v.GetString(Address),
		Password:   v.GetString(Password),
		WalletArgs: walletArgs,
		LogLevel:   v.GetInt(LogLevel),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Request() domain.Request {
	return domain.Request{
		Command:    c.Command,
		FaucetURL:  c.FaucetURL,
		Address:    c.Address,
		Password:   c.Password,
		WalletArgs: c.WalletArgs,
	}
}

// expandPath expands environment variables and a leading ~ in the wallet
// command, which is what a shell would have done had it been typed.
// The path is not cleaned: "./ocvcoin-cli" and "ocvcoin-cli" resolve
// differently.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return os.ExpandEnv(path)
	}

	var homeDir string
	if u, err := user.Current(); err == nil {
		homeDir = u.HomeDir
	} else {
		homeDir = os.Getenv("HOME")
	}

	return os.ExpandEnv(strings.Replace(path, "~", homeDir, 1))
}

func (c *Config) validate() error {
	if c.LogLevel < int(log.PanicLevel) || c.LogLevel > int(log.TraceLevel) {
		return fmt.Errorf(
			"invalid log level %d, must be in range [%d, %d]",
			c.LogLevel, log.PanicLevel, log.TraceLevel,
		)
	}
	return nil
}
