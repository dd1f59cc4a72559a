package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ZENPAD_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.ActiveProfile)
	assert.False(t, cfg.IsValid(), "no API key yet")
	assert.Equal(t, DefaultModel, cfg.GetModel())
	assert.Equal(t, filepath.Join(home, ".zenpad", "config.json"), cfg.Path())
	assert.Equal(t, filepath.Join(home, ".zenpad"), cfg.DataDirectory())

	assert.Equal(t, DefaultFontSize, cfg.Editor.FontSize)
	assert.Equal(t, 4*time.Second, cfg.IdleHide())
	assert.Equal(t, 2*time.Second, cfg.TypingHide())
	assert.InDelta(t, 0.75, cfg.Editor.ScrollThreshold, 1e-9)
	assert.InDelta(t, 0.5, cfg.Editor.ScrollTarget, 1e-9)

	info, err := os.Stat(cfg.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func writeConfig(t *testing.T, path string, cfg Config) {
	t.Helper()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))
}

func TestLoadConfigFallsBackToFirstProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, Config{
		Profiles: map[string]Profile{
			"work":  {APIKey: "k-work", Model: "gpt-4o"},
			"alpha": {APIKey: "k-alpha", BaseURL: "http://localhost:8080/v1"},
		},
		ActiveProfile: "missing",
	})

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha", cfg.ActiveProfile)
	assert.True(t, cfg.IsValid())
	assert.Equal(t, "k-alpha", cfg.GetAPIKey())
	assert.Equal(t, "http://localhost:8080/v1", cfg.GetBaseURL())
	assert.Equal(t, DefaultModel, cfg.GetModel())
	assert.Equal(t, []string{"alpha", "work"}, cfg.ProfileNames())
}

func TestLoadConfigRejectsEmptyProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, Config{ActiveProfile: "default"})

	_, err := LoadConfigFrom(path)
	assert.Error(t, err)
}

func TestEditorSettingsAreClamped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeConfig(t, path, Config{
		Profiles:      map[string]Profile{"default": {}},
		ActiveProfile: "default",
		Editor:        Editor{FontSize: 99, ScrollThreshold: 3, LineSpacing: 2, IdleHideMS: 1500},
	})

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, MaxFontSize, cfg.Editor.FontSize)
	assert.InDelta(t, 0.75, cfg.Editor.ScrollThreshold, 1e-9)
	assert.Equal(t, 2, cfg.Editor.LineSpacing)
	assert.Equal(t, 1500*time.Millisecond, cfg.IdleHide())
}

func TestClampFontSize(t *testing.T) {
	assert.Equal(t, MinFontSize, ClampFontSize(MinFontSize-FontSizeStep))
	assert.Equal(t, MaxFontSize, ClampFontSize(MaxFontSize+FontSizeStep))
	assert.Equal(t, 24, ClampFontSize(24))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	cfg.Profiles["default"] = Profile{APIKey: "secret", Model: "gpt-4o"}
	cfg.ExportDir = "/tmp/exports"
	require.NoError(t, cfg.Save())

	again, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", again.GetAPIKey())
	assert.Equal(t, "gpt-4o", again.GetModel())
	assert.Equal(t, "/tmp/exports", again.ExportDirectory())
}

func TestWatchReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reloaded atomic.Value
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { reloaded.Store(c.GetAPIKey()) })
	}()

	cfg.Profiles["default"] = Profile{APIKey: "fresh"}
	require.Eventually(t, func() bool {
		// keep touching the file until the watcher is attached and notices
		_ = cfg.Save()
		v, _ := reloaded.Load().(string)
		return v == "fresh"
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
