package config_test

import (
	"strings"
	"testing"

	"github.com/ocvcoin/getcoins/internal/config"
	"github.com/ocvcoin/getcoins/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig(nil, nil)
		require.NoError(t, err)
		require.Equal(t, "ocvcoin-cli", cfg.Command)
		require.Equal(t, "https://signetfaucet.com/claim", cfg.FaucetURL)
		require.Empty(t, cfg.Address)
		require.Empty(t, cfg.Password)
		require.Empty(t, cfg.WalletArgs)
		require.Equal(t, 4, cfg.LogLevel)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("GETCOINS_CMD", "/opt/ocvcoin/bin/ocvcoin-cli")
		t.Setenv("GETCOINS_FAUCET", "http://localhost:5000/claim")
		t.Setenv("GETCOINS_ADDR", "tb1qenv")
		t.Setenv("GETCOINS_PASSWORD", "envpass")
		t.Setenv("GETCOINS_LOG_LEVEL", "5")

		cfg, err := config.LoadConfig(nil, []string{"-regtest"})
		require.NoError(t, err)
		require.Equal(t, "/opt/ocvcoin/bin/ocvcoin-cli", cfg.Command)
		require.Equal(t, "http://localhost:5000/claim", cfg.FaucetURL)
		require.Equal(t, "tb1qenv", cfg.Address)
		require.Equal(t, "envpass", cfg.Password)
		require.Equal(t, []string{"-regtest"}, cfg.WalletArgs)
		require.Equal(t, 5, cfg.LogLevel)
	})

	t.Run("overrides win over env", func(t *testing.T) {
		t.Setenv("GETCOINS_CMD", "from-env")
		t.Setenv("GETCOINS_ADDR", "tb1qenv")

		cfg, err := config.LoadConfig(map[string]interface{}{
			config.Command: "from-flag",
			config.Address: "",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, "from-flag", cfg.Command)
		require.Empty(t, cfg.Address)
	})

	t.Run("command path expansion", func(t *testing.T) {
		t.Setenv("OCVCOIN_BIN", "/opt/ocvcoin/bin")

		testCases := []struct {
			command  string
			expected string
		}{
			{"$OCVCOIN_BIN/ocvcoin-cli", "/opt/ocvcoin/bin/ocvcoin-cli"},
			{"./ocvcoin-cli", "./ocvcoin-cli"},
			{"ocvcoin-cli", "ocvcoin-cli"},
		}

		for _, tc := range testCases {
			t.Run(tc.command, func(t *testing.T) {
				cfg, err := config.LoadConfig(map[string]interface{}{
					config.Command: tc.command,
				}, nil)
				require.NoError(t, err)
				require.Equal(t, tc.expected, cfg.Command)
			})
		}

		cfg, err := config.LoadConfig(map[string]interface{}{
			config.Command: "~/bin/ocvcoin-cli",
		}, nil)
		require.NoError(t, err)
		require.False(t, strings.HasPrefix(cfg.Command, "~"))
		require.True(t, strings.HasSuffix(cfg.Command, "/bin/ocvcoin-cli"))
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := config.LoadConfig(map[string]interface{}{
			config.LogLevel: 7,
		}, nil)
		require.Error(t, err)

		_, err = config.LoadConfig(map[string]interface{}{
			config.LogLevel: -1,
		}, nil)
		require.Error(t, err)
	})
}

func TestConfigRequest(t *testing.T) {
	cfg, err := config.LoadConfig(map[string]interface{}{
		config.Address:  "tb1qexample",
		config.Password: "secret",
	}, []string{"-testnet"})
	require.NoError(t, err)

	require.Equal(t, domain.Request{
		Command:    domain.DefaultCommand,
		FaucetURL:  domain.DefaultFaucetURL,
		Address:    "tb1qexample",
		Password:   "secret",
		WalletArgs: []string{"-testnet"},
	}, cfg.Request())
}

func TestConfigStringHidesPassword(t *testing.T) {
	cfg, err := config.LoadConfig(map[string]interface{}{
		config.Password: "secret",
	}, nil)
	require.NoError(t, err)
	require.NotContains(t, cfg.String(), "secret")
}
