package core

import (
	"sync"

	"github.com/Rorical/ZenPad/internal/models"
)

// EditorState is the core's view of the session: whether a suggestion is
// in flight and the newest draft waiting to be written.
type EditorState struct {
	mu       sync.RWMutex
	status   models.AppStatus
	pending  *models.Draft
	lastSave error
}

func NewEditorState() *EditorState {
	return &EditorState{status: models.Idle}
}

func (es *EditorState) Status() models.AppStatus {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.status
}

// WithStatus calls fn with the current status while holding off every
// status change, so whatever fn publishes cannot be overtaken by a newer
// status. fn must not block.
func (es *EditorState) WithStatus(fn func(models.AppStatus)) {
	es.mu.RLock()
	defer es.mu.RUnlock()
	fn(es.status)
}

// TryBeginSuggestion moves to AiThinking unless a suggestion is already in
// flight, in which case it reports false and nothing changes.
func (es *EditorState) TryBeginSuggestion() bool {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.status == models.AiThinking {
		return false
	}
	es.status = models.AiThinking
	return true
}

func (es *EditorState) FinishSuggestion() {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.status = models.Idle
}

// QueueDraft replaces any draft still waiting to be saved.
func (es *EditorState) QueueDraft(d models.Draft) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.pending = &d
}

// TakeDraft hands out the waiting draft, if any, and clears the slot.
func (es *EditorState) TakeDraft() (models.Draft, bool) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.pending == nil {
		return models.Draft{}, false
	}
	d := *es.pending
	es.pending = nil
	return d, true
}

// RecordSave stores the outcome of a save and reports whether it differs
// from the previous outcome, so failures are announced once, not per key.
func (es *EditorState) RecordSave(err error) (changed bool) {
	es.mu.Lock()
	defer es.mu.Unlock()
	changed = (err == nil) != (es.lastSave == nil)
	es.lastSave = err
	return changed
}
