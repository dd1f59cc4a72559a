package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
	reply    string
	status   int
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.requests = append(f.requests, req)
		f.mu.Unlock()

		if f.status != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:    "cmpl-1",
			Model: req.Model,
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: f.reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestContinueTextSendsTrailingContext(t *testing.T) {
	api := &fakeAPI{reply: "  And then the rain stopped.  "}
	srv := api.server(t)
	c := New("sk-test", srv.URL, "test-model")
	require.True(t, c.Online())

	text := strings.Repeat("a", 500) + strings.Repeat("b", ContextRunes)
	got := c.ContinueText(context.Background(), text)

	assert.Equal(t, "And then the rain stopped.", got)
	require.Len(t, api.requests, 1)
	req := api.requests[0]
	assert.Equal(t, "test-model", req.Model)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, strings.Repeat("b", ContextRunes), req.Messages[1].Content)
}

func TestSuggestTitleSendsLeadingContentAndTrims(t *testing.T) {
	api := &fakeAPI{reply: "\"The Quiet Harbour\"\n"}
	srv := api.server(t)
	c := New("sk-test", srv.URL, "test-model")

	content := strings.Repeat("x", TitleRunes) + "ignored tail"
	got := c.SuggestTitle(context.Background(), content)

	assert.Equal(t, "The Quiet Harbour", got)
	require.Len(t, api.requests, 1)
	assert.Equal(t, strings.Repeat("x", TitleRunes), api.requests[0].Messages[1].Content)
}

func TestFailuresReturnFallbacks(t *testing.T) {
	api := &fakeAPI{status: http.StatusInternalServerError}
	srv := api.server(t)
	c := New("sk-test", srv.URL, "test-model")

	assert.Equal(t, FallbackContinuation, c.ContinueText(context.Background(), "hello"))
	assert.Equal(t, FallbackTitle, c.SuggestTitle(context.Background(), "hello"))
}

func TestEmptyReplyReturnsFallback(t *testing.T) {
	api := &fakeAPI{reply: "   "}
	srv := api.server(t)
	c := New("sk-test", srv.URL, "test-model")

	assert.Equal(t, FallbackContinuation, c.ContinueText(context.Background(), "hello"))
	assert.Equal(t, FallbackTitle, c.SuggestTitle(context.Background(), "hello"))
}

func TestOfflineClient(t *testing.T) {
	c := New("", "", "")
	assert.False(t, c.Online())
	assert.Equal(t, FallbackContinuation, c.ContinueText(context.Background(), "hello"))
	assert.Equal(t, FallbackTitle, c.SuggestTitle(context.Background(), "hello"))
}

func TestCheck(t *testing.T) {
	api := &fakeAPI{reply: "OK"}
	srv := api.server(t)
	require.NoError(t, New("sk-test", srv.URL, "test-model").Check(context.Background()))
	require.Len(t, api.requests, 1)
	assert.Equal(t, "test-model", api.requests[0].Model)

	quiet := &fakeAPI{reply: ""}
	assert.NoError(t, New("sk-test", quiet.server(t).URL, "test-model").Check(context.Background()))

	rejecting := &fakeAPI{status: http.StatusUnauthorized}
	assert.Error(t, New("sk-bad", rejecting.server(t).URL, "test-model").Check(context.Background()))

	assert.Error(t, Offline().Check(context.Background()))
}

func TestHeadTail(t *testing.T) {
	assert.Equal(t, "üñ", Head("üñï", 2))
	assert.Equal(t, "ñï", Tail("üñï", 2))
	assert.Equal(t, "ab", Tail("ab", 5))
	assert.Equal(t, "ab", Head("ab", 5))
}
