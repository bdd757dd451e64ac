// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the stackexchange-best CLI.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stackexchange-best/internal/logging"
	"github.com/pdiddy/stackexchange-best/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

const appName = "stackexchange-best"

var (
	// loadedSecrets holds API keys loaded from .secrets/ at startup.
	loadedSecrets map[string]string

	// logger writes diagnostics to stderr. Replaced in PersistentPreRunE.
	logger = zerolog.Nop()
)

// secretDefault returns fallback if it is set, or the secret stored under key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Write the best questions of a Stack Exchange site as CSV",
	Long: `stackexchange-best searches a Stack Exchange site for questions whose title
contains a given text, reads one or more pages of results, and writes the
selected fields of every question as CSV to standard output.

PAGES is START[-][STOP] for start and stop pages. If only START is given,
read only this page. Pages at Stack Exchange start at 1. If - is given and
STOP is omitted, it reads every page beginning with START until there is no
page left. If - and STOP are given it reads from START to STOP and not beyond.

CSV_FIELDS is a comma separated list of fields which get written as CSV
output. Possible values are specified in
https://api.stackexchange.com/docs/types/question . If it contains the field
"all", every field of the first question will be written.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.Setup(logging.Config{
			Level:  viper.GetString("log-level"),
			Pretty: viper.GetBool("log-pretty"),
			Output: cmd.ErrOrStderr(),
		})

		s, err := secrets.Load(".secrets/", logger)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			logger.Debug().Strs("keys", keys).Msg("loaded secrets")
		}
		return nil
	},
	RunE: runBest,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./"+appName+".yaml or $XDG_CONFIG_HOME/"+appName+"/"+appName+".yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "diagnostic log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-pretty", false, "human-readable diagnostics instead of JSON")

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	}

	viper.SetEnvPrefix("SE_BEST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		rootCmd.PrintErrln("Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
