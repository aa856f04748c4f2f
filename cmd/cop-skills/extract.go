// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cop-skills/internal/extract"
	"github.com/pdiddy/cop-skills/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [export.xml]",
	Short: "Extract skill records from a layout export",
	Long: `Extract walks the pages of a layout export in order. Section header pages
set the current apparatus; content pages are cut into a 6x4 grid and every
cell with a skill name becomes one record.

The table is written as csv, yaml, json, xlsx, or sqlite. Without --format the
format is inferred from the output file extension.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig()
	if cfg.Input == "" && len(args) > 0 {
		cfg.Input = args[0]
	}

	_, err := extract.Run(cmd.Context(), cfg, logger, os.Stderr)
	return err
}

func extractionConfig() types.ExtractionConfig {
	return types.ExtractionConfig{
		Input:      viper.GetString("input"),
		Output:     viper.GetString("output"),
		Format:     types.SinkFormat(viper.GetString("format")),
		LayoutFile: viper.GetString("layout"),
		Log:        logConfig(),
	}
}

func init() {
	extractCmd.Flags().StringP("file", "f", "", "layout XML export to scrape")
	extractCmd.Flags().StringP("output", "o", "", "output table path (default: skills.<format>, or "+extract.DefaultOutput+")")
	extractCmd.Flags().String("format", "", "output format: csv, yaml, json, xlsx, or sqlite")

	_ = viper.BindPFlag("input", extractCmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("output", extractCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("format", extractCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(extractCmd)
}
