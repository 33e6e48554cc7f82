// Package main provides boardctl, a command-line client for the kanban board API.
// Moves run through the same drag engine and coordinator a UI would use.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/coordinator"
)

const (
	cfgKeyAPIURL   = "api_url"
	cfgKeyToken    = "token"
	cfgKeyStrategy = "strategy"
	cfgKeyTimeout  = "timeout"
	cfgKeyVerbose  = "verbose"

	defaultAPIURL = "http://localhost:8000/api"
)

var (
	configFile string

	cfg    *viper.Viper
	api    client.BoardAPIClient
	logger *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "boardctl drives a kanban board API from the terminal",
	Long: `boardctl reads boards and moves cards and columns. Moves are applied to a
local copy of the board first and then persisted, exactly like a drag in a UI.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./boardctl.yaml or ~/.boardctl.yaml)")
	flags.String("api-url", defaultAPIURL, "board API base URL including the base path")
	flags.String("token", "", "bearer token for the API")
	flags.String("strategy", string(coordinator.StrategyAtomic), "cross-column move strategy: atomic or sequential")
	flags.Duration("timeout", 10*time.Second, "HTTP timeout per request")
	flags.BoolP("verbose", "v", false, "log every request")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createBoardCmd)
	rootCmd.AddCommand(addColumnCmd)
	rootCmd.AddCommand(addCardCmd)
	rootCmd.AddCommand(moveCardCmd)
	rootCmd.AddCommand(moveColumnCmd)
}

// loadConfig merges flags, BOARDCTL_* environment variables and the config file
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyAPIURL, defaultAPIURL)
	v.SetDefault(cfgKeyStrategy, string(coordinator.StrategyAtomic))
	v.SetDefault(cfgKeyTimeout, 10*time.Second)

	v.SetEnvPrefix("boardctl")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	for key, flag := range map[string]string{
		cfgKeyAPIURL:   "api-url",
		cfgKeyToken:    "token",
		cfgKeyStrategy: "strategy",
		cfgKeyTimeout:  "timeout",
		cfgKeyVerbose:  "verbose",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("boardctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return err
	}

	if _, err := coordinator.ParseStrategy(cfg.GetString(cfgKeyStrategy)); err != nil {
		return err
	}

	if cfg.GetBool(cfgKeyVerbose) {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	} else {
		logger = zap.NewNop()
	}

	api = client.NewBoardAPIClient(
		cfg.GetString(cfgKeyAPIURL),
		cfg.GetString(cfgKeyToken),
		cfg.GetDuration(cfgKeyTimeout),
		logger,
		nil,
	)
	return nil
}
