package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/ZenPad/internal/config"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch to a profile and start writing",
	Long:  `Switch to the specified profile and immediately open the editor.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		profileName := args[0]

		// Load config
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Check if profile exists
		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		// Switch to the profile
		cfg.ActiveProfile = profileName

		// Save config with new active profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		runEditor()
	},
}

func init() {
	rootCmd.AddCommand(useCmd)
}
