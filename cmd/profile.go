package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/ZenPad/internal/config"
	"github.com/Rorical/ZenPad/internal/suggest"
)

const checkTimeout = 20 * time.Second

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage suggestion profiles",
	Long:  `Manage the profiles used for text continuation and title suggestions. Use "zenpad use" to switch.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		for _, name := range cfg.ProfileNames() {
			describeProfile(os.Stdout, name, cfg.Profiles[name], name == cfg.ActiveProfile)
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		name := pickProfile(cfg, args, "Select profile to show")
		describeProfile(os.Stdout, name, cfg.Profiles[name], name == cfg.ActiveProfile)
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile and check it",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var name string
		if len(args) > 0 {
			name = args[0]
		} else {
			var err error
			name, err = (&promptui.Prompt{Label: "Profile name"}).Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}
		if _, exists := cfg.Profiles[name]; exists {
			log.Fatalf("Profile '%s' already exists", name)
		}

		profile, err := promptProfile(config.Profile{Model: config.DefaultModel})
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Profiles[name] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		fmt.Printf("Profile '%s' added\n", name)
		checkProfile(os.Stdout, profile)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit a profile and check it",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		name := pickProfile(cfg, args, "Select profile to edit")

		profile, err := promptProfile(cfg.Profiles[name])
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}
		cfg.Profiles[name] = profile
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		fmt.Printf("Profile '%s' updated\n", name)
		checkProfile(os.Stdout, profile)
	},
}

var testProfileCmd = &cobra.Command{
	Use:   "test [profile-name]",
	Short: "Send one small request with a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		name := pickProfile(cfg, args, "Select profile to test")
		if !checkProfile(os.Stdout, cfg.Profiles[name]) {
			os.Exit(1)
		}
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		name := pickProfile(cfg, args, "Select profile to delete")

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'", name),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		removeProfile(cfg, name)
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}
		fmt.Printf("Profile '%s' deleted, active profile is '%s'\n", name, cfg.ActiveProfile)
	},
}

func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// pickProfile returns the profile named in args, or asks for one from the
// sorted profile names. It exits when the profile does not exist.
func pickProfile(cfg *config.Config, args []string, label string) string {
	if len(args) > 0 {
		if _, exists := cfg.Profiles[args[0]]; !exists {
			log.Fatalf("Profile '%s' does not exist", args[0])
		}
		return args[0]
	}

	names := cfg.ProfileNames()
	if len(names) == 0 {
		log.Fatalf("No profiles available")
	}
	prompt := promptui.Select{Label: label, Items: names}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

// promptProfile asks for every profile field, offering p's values as
// defaults.
func promptProfile(p config.Profile) (config.Profile, error) {
	fields := []struct {
		prompt promptui.Prompt
		value  *string
	}{
		{promptui.Prompt{Label: "API Key", Default: p.APIKey, Mask: '*'}, &p.APIKey},
		{promptui.Prompt{Label: "Model", Default: p.Model}, &p.Model},
		{promptui.Prompt{Label: "Base URL (optional)", Default: p.BaseURL}, &p.BaseURL},
	}
	for _, f := range fields {
		v, err := f.prompt.Run()
		if err != nil {
			return p, err
		}
		*f.value = v
	}
	return p, nil
}

// checkProfile makes one small suggestion call with p and reports the
// outcome. A profile without a key is reported as offline.
func checkProfile(w io.Writer, p config.Profile) bool {
	if p.APIKey == "" {
		fmt.Fprintln(w, "No API key set: suggestions will use the offline fallbacks")
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	if err := suggest.New(p.APIKey, p.BaseURL, p.Model).Check(ctx); err != nil {
		fmt.Fprintf(w, "Check failed: %v\n", err)
		return false
	}
	fmt.Fprintf(w, "Check passed: %s answered\n", p.Model)
	return true
}

// removeProfile deletes name. When it was the active profile the first
// remaining profile takes over, and a default one is created if none is
// left.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)
	if cfg.ActiveProfile != name {
		return
	}
	if names := cfg.ProfileNames(); len(names) > 0 {
		cfg.ActiveProfile = names[0]
		return
	}
	cfg.ActiveProfile = "default"
	cfg.Profiles["default"] = config.Profile{Model: config.DefaultModel}
}

func describeProfile(w io.Writer, name string, p config.Profile, active bool) {
	marker := ""
	if active {
		marker = " (active)"
	}
	key := "not set"
	if p.APIKey != "" {
		key = "set"
	}
	fmt.Fprintf(w, "%s%s\n", name, marker)
	fmt.Fprintf(w, "  Model: %s\n", p.Model)
	if p.BaseURL != "" {
		fmt.Fprintf(w, "  Base URL: %s\n", p.BaseURL)
	}
	fmt.Fprintf(w, "  API Key: %s\n", key)
}

func init() {
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(testProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
}
