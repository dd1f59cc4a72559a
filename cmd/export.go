package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/ZenPad/internal/config"
	"github.com/Rorical/ZenPad/internal/draft"
	"github.com/Rorical/ZenPad/internal/export"
	"github.com/Rorical/ZenPad/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Write the saved draft to a text file",
	Long: `Write the saved draft to <title>.txt. The file goes to the given
directory, or to export_dir from the config, or to the working directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger.Discard()

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		dir := cfg.ExportDirectory()
		if len(args) > 0 {
			dir = args[0]
		}

		ctx := context.Background()
		store, err := draft.Open(ctx, cfg.DataDirectory())
		if err != nil {
			log.Fatalf("Failed to open draft store: %v", err)
		}
		defer store.Close()

		d, err := store.Load(ctx)
		if err != nil {
			log.Fatalf("Failed to load draft: %v", err)
		}

		path, err := export.Write(dir, d)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Exported '%s' to %s\n", d.Title, path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
