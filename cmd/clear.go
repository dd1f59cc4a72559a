package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/ZenPad/internal/config"
	"github.com/Rorical/ZenPad/internal/draft"
	"github.com/Rorical/ZenPad/internal/logger"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase the saved draft",
	Long:  `Reset the saved draft to an empty page titled "Untitled".`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger.Discard()

		if !clearYes {
			confirmPrompt := promptui.Prompt{
				Label:     "Clear the saved draft? This cannot be undone",
				IsConfirm: true,
			}
			if _, err := confirmPrompt.Run(); err != nil {
				fmt.Println("Clear cancelled")
				return
			}
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		store, err := draft.Open(ctx, cfg.DataDirectory())
		if err != nil {
			log.Fatalf("Failed to open draft store: %v", err)
		}
		defer store.Close()

		if _, err := store.Clear(ctx); err != nil {
			log.Fatalf("Failed to clear draft: %v", err)
		}
		fmt.Println("Draft cleared")
	},
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}
