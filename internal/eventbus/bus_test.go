package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/ZenPad/internal/models"
)

func TestSendAndReceive(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(SuggestEvent{Kind: models.TitleSuggestion, Content: "x"}))
	got := <-eb.UIToCore()
	assert.Equal(t, SuggestEvent{Kind: models.TitleSuggestion, Content: "x"}, got)

	require.NoError(t, eb.SendToUI(StatusEvent{Status: models.AiThinking}))
	assert.Equal(t, StatusEvent{Status: models.AiThinking}, <-eb.CoreToUI())
}

func TestFullChannelTripsBreaker(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	for i := 0; i < cap(eb.coreToUI); i++ {
		require.NoError(t, eb.SendToUI(NoticeEvent{Text: "n"}))
	}
	for i := 0; i < 5; i++ {
		assert.Error(t, eb.SendToUI(NoticeEvent{Text: "overflow"}))
	}
	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.Error(t, eb.SendToCore(SaveDraftEvent{}))
	assert.NotEmpty(t, reported)
}

func TestCircuitBreakerHalfOpensAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(1, 10*time.Millisecond)
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	time.Sleep(20 * time.Millisecond)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestSendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(SaveDraftEvent{}), ErrClosed)
	assert.ErrorIs(t, eb.SendToUI(NoticeEvent{}), ErrClosed)
	select {
	case <-eb.Done():
	default:
		t.Fatal("Done should be closed")
	}
}
