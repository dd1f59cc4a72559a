package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/ZenPad/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "zenpad",
	Short: "A quiet place to write",
	Long: `ZenPad is a distraction-free writing surface for the terminal.
The chrome fades while you type, the page follows your caret and the draft
is saved as you go. Ctrl+G continues your text, Ctrl+T suggests a title.`,
	Run: func(cmd *cobra.Command, args []string) {
		runEditor()
	},
}

func runEditor() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Printf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
