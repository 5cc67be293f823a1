package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stx-x/xlmerge/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "xlmerge",
	Short: "Batch Excel workbook consolidation",
	Long:  "Scans a folder tree of Excel workbooks, extracts the data region anchored on a marker header, unifies the schemas, and writes one merged workbook with provenance columns and reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
