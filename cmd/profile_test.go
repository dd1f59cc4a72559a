package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/ZenPad/internal/config"
)

func completionServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid api key","type":"invalid_request_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "OK"},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckProfile(t *testing.T) {
	var out bytes.Buffer
	ok := checkProfile(&out, config.Profile{APIKey: "sk-test", BaseURL: completionServer(t, http.StatusOK).URL, Model: "m"})
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Check passed")

	out.Reset()
	ok = checkProfile(&out, config.Profile{APIKey: "sk-bad", BaseURL: completionServer(t, http.StatusUnauthorized).URL, Model: "m"})
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Check failed")

	out.Reset()
	assert.False(t, checkProfile(&out, config.Profile{Model: "m"}))
	assert.Contains(t, out.String(), "No API key")
}

func TestRemoveProfile(t *testing.T) {
	cfg := &config.Config{
		Profiles: map[string]config.Profile{
			"work":  {Model: "a"},
			"draft": {Model: "b"},
			"home":  {Model: "c"},
		},
		ActiveProfile: "work",
	}

	removeProfile(cfg, "home")
	assert.Equal(t, "work", cfg.ActiveProfile)

	removeProfile(cfg, "work")
	assert.Equal(t, "draft", cfg.ActiveProfile, "first remaining name takes over")

	removeProfile(cfg, "draft")
	assert.Equal(t, "default", cfg.ActiveProfile)
	require.Contains(t, cfg.Profiles, "default")
	assert.Equal(t, config.DefaultModel, cfg.Profiles["default"].Model)
	assert.Len(t, cfg.Profiles, 1)
}

func TestDescribeProfileHidesKey(t *testing.T) {
	var out bytes.Buffer
	describeProfile(&out, "work", config.Profile{APIKey: "sk-secret", Model: "m"}, true)
	assert.Contains(t, out.String(), "work (active)")
	assert.Contains(t, out.String(), "API Key: set")
	assert.NotContains(t, out.String(), "sk-secret")
	assert.NotContains(t, out.String(), "Base URL")
}
