// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cop-skills/internal/grid"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the effective grid layout as YAML",
	Long: `Layout prints the column bands, row bands, and header boxes used to read
content pages. Save the output, adjust the coordinates, and pass it back with
--layout to scrape an export with a different page geometry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := grid.LoadLayout(viper.GetString("layout"))
		if err != nil {
			return err
		}
		return grid.WriteLayout(os.Stdout, l)
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
