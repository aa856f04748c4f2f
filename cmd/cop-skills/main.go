// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cop-skills CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/cop-skills/internal/logging"
	"github.com/pdiddy/cop-skills/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from configuration before any subcommand runs.
var logger = zap.NewNop()

// rootCmd is the base command for the cop-skills CLI.
var rootCmd = &cobra.Command{
	Use:   "cop-skills",
	Short: "Extract skill tables from Code of Points layout exports",
	Long: `cop-skills reads the XML layout export of a gymnastics Code of Points
(pdftohtml -xml) and rebuilds its skill tables from fragment coordinates and
bold/italic markup. Each populated grid cell becomes one record carrying the
apparatus, difficulty value, element group, number, description, and image.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logConfig())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cop-skills.yaml or ~/.config/cop-skills/cop-skills.yaml)")
	rootCmd.PersistentFlags().String("layout", "", "YAML grid layout (default: built-in Code of Points coordinates)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-dev", false, "human-readable console logging")

	_ = viper.BindPFlag("layout", rootCmd.PersistentFlags().Lookup("layout"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.development", rootCmd.PersistentFlags().Lookup("log-dev"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cop-skills")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cop-skills"))
		}
	}

	viper.SetEnvPrefix("COP_SKILLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func logConfig() types.LogConfig {
	return types.LogConfig{
		Level:       viper.GetString("log.level"),
		Development: viper.GetBool("log.development"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
