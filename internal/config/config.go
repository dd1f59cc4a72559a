package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	DefaultModel        = "gpt-4o-mini"
	DefaultFontSize     = 20
	MinFontSize         = 16
	MaxFontSize         = 42
	FontSizeStep        = 2
	DefaultReadingWidth = 96
)

type Profile struct {
	APIKey  string `json:"api_key"`
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model"`
}

// Editor holds the presentation tuning knobs.
type Editor struct {
	FontSize     int `json:"font_size"`
	ReadingWidth int `json:"reading_width"`
	LineSpacing  int `json:"line_spacing"`
	IdleHideMS   int `json:"idle_hide_ms"`
	TypingHideMS int `json:"typing_hide_ms"`
	// ScrollThreshold and ScrollTarget are fractions of the screen height.
	ScrollThreshold float64 `json:"scroll_threshold"`
	ScrollTarget    float64 `json:"scroll_target"`
}

type Config struct {
	Profiles      map[string]Profile `json:"profiles"`
	ActiveProfile string             `json:"active_profile"`
	Editor        Editor             `json:"editor"`
	DataDir       string             `json:"data_dir,omitempty"`
	ExportDir     string             `json:"export_dir,omitempty"`
	LogLevel      string             `json:"log_level,omitempty"`

	currentProfile *Profile
	path           string
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads the config at configPath, creating it with defaults
// when it does not exist yet.
func LoadConfigFrom(configPath string) (*Config, error) {
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath
	config.applyDefaults()

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

func (c *Config) IsValid() bool {
	return c.currentProfile != nil && c.currentProfile.APIKey != ""
}

func (c *Config) GetAPIKey() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.APIKey
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Model
}

func (c *Config) GetBaseURL() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.BaseURL
}

// Path is the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// DataDirectory is where the draft database and the log live.
func (c *Config) DataDirectory() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Dir(c.path)
}

// ExportDirectory is where exported drafts are written; defaults to the
// working directory.
func (c *Config) ExportDirectory() string {
	if c.ExportDir != "" {
		return c.ExportDir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (c *Config) IdleHide() time.Duration {
	return time.Duration(c.Editor.IdleHideMS) * time.Millisecond
}

func (c *Config) TypingHide() time.Duration {
	return time.Duration(c.Editor.TypingHideMS) * time.Millisecond
}

// ClampFontSize keeps size within the supported range.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

func (c *Config) applyDefaults() {
	if c.Profiles == nil {
		c.Profiles = map[string]Profile{}
	}
	e := &c.Editor
	if e.FontSize == 0 {
		e.FontSize = DefaultFontSize
	}
	e.FontSize = ClampFontSize(e.FontSize)
	if e.ReadingWidth <= 0 {
		e.ReadingWidth = DefaultReadingWidth
	}
	if e.LineSpacing <= 0 {
		e.LineSpacing = 1
	}
	if e.IdleHideMS <= 0 {
		e.IdleHideMS = 4000
	}
	if e.TypingHideMS <= 0 {
		e.TypingHideMS = 2000
	}
	if e.ScrollThreshold <= 0 || e.ScrollThreshold > 1 {
		e.ScrollThreshold = 0.75
	}
	if e.ScrollTarget <= 0 || e.ScrollTarget > 1 {
		e.ScrollTarget = 0.5
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func getConfigPath() (string, error) {
	var configDir string

	// Use ZENPAD_HOME if set, otherwise use user's home directory
	if home := os.Getenv("ZENPAD_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".zenpad", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {
				APIKey:  "",
				BaseURL: "",
				Model:   DefaultModel,
			},
		},
		ActiveProfile: "default",
	}
	config.applyDefaults()

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}
	return saveConfig(c, c.path)
}

// ProfileNames returns the profile names in a stable order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name
		name := c.ProfileNames()[0]
		c.ActiveProfile = name
		profile = c.Profiles[name]
	}

	c.currentProfile = &profile
	return nil
}
