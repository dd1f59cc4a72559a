package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Rorical/ZenPad/internal/config"
	"github.com/Rorical/ZenPad/internal/draft"
	"github.com/Rorical/ZenPad/internal/eventbus"
	"github.com/Rorical/ZenPad/internal/logger"
	"github.com/Rorical/ZenPad/internal/models"
	"github.com/Rorical/ZenPad/internal/suggest"
)

// Suggester produces continuations and titles. Implementations return a
// fallback text instead of an error.
type Suggester interface {
	ContinueText(ctx context.Context, text string) string
	SuggestTitle(ctx context.Context, content string) string
	Online() bool
}

// DraftStore persists the draft.
type DraftStore interface {
	Save(ctx context.Context, d models.Draft) error
}

// EditorService is the background half of the editor. It owns the remote
// suggestion client and the draft store, and talks to the UI only through
// the event bus.
type EditorService struct {
	mu        sync.RWMutex
	suggester Suggester
	config    *config.Config

	store    DraftStore
	state    *EditorState
	eventBus *eventbus.EventBus

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	saveCh chan struct{}
}

func NewEditorService(cfg *config.Config, store DraftStore, eb *eventbus.EventBus) (*EditorService, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if store == nil {
		return nil, errors.New("nil draft store")
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &EditorService{
		suggester: newSuggester(cfg),
		config:    cfg,
		store:     store,
		state:     NewEditorState(),
		eventBus:  eb,
		ctx:       ctx,
		cancel:    cancel,
		saveCh:    make(chan struct{}, 1),
	}, nil
}

func newSuggester(cfg *config.Config) Suggester {
	if !cfg.IsValid() {
		return suggest.Offline()
	}
	return suggest.New(cfg.GetAPIKey(), cfg.GetBaseURL(), cfg.GetModel())
}

// Start runs the event loop, the draft writer and the config watcher.
func (es *EditorService) Start() {
	es.pushStatus()

	es.wg.Add(2)
	go es.eventLoop()
	go es.saveLoop()

	if path := es.config.Path(); path != "" {
		es.wg.Add(1)
		go es.watchConfig(path)
	}
}

// Stop cancels in-flight work, waits for the goroutines and writes any
// draft that was still queued.
func (es *EditorService) Stop() {
	es.cancel()
	es.wg.Wait()
	es.saveNow(context.Background())
}

func (es *EditorService) SetSuggester(s Suggester) {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.suggester = s
}

func (es *EditorService) currentSuggester() Suggester {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.suggester
}

func (es *EditorService) Status() models.AppStatus {
	return es.state.Status()
}

// IsOnline reports whether suggestions go to a real model.
func (es *EditorService) IsOnline() bool {
	return es.currentSuggester().Online()
}

func (es *EditorService) eventLoop() {
	defer es.wg.Done()
	for {
		select {
		case <-es.ctx.Done():
			return
		case <-es.eventBus.Done():
			return
		case event := <-es.eventBus.UIToCore():
			es.handleUIEvent(event)
		}
	}
}

func (es *EditorService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SaveDraftEvent:
		es.state.QueueDraft(e.Draft)
		select {
		case es.saveCh <- struct{}{}:
		default:
		}
	case eventbus.SuggestEvent:
		es.requestSuggestion(e)
	}
}

// requestSuggestion starts one remote call unless the content is blank or
// another call is still outstanding; extra requests are dropped.
func (es *EditorService) requestSuggestion(e eventbus.SuggestEvent) {
	if strings.TrimSpace(e.Content) == "" {
		return
	}
	if !es.state.TryBeginSuggestion() {
		slog.Debug("suggestion already in flight, ignoring request", "kind", e.Kind)
		return
	}
	es.pushStatus()

	s := es.currentSuggester()
	es.wg.Add(1)
	go func() {
		defer es.wg.Done()

		var text string
		switch e.Kind {
		case models.TitleSuggestion:
			text = s.SuggestTitle(es.ctx, e.Content)
		default:
			text = s.ContinueText(es.ctx, e.Content)
		}
		es.state.FinishSuggestion()

		es.send(eventbus.SuggestionEvent{Kind: e.Kind, Text: text})
		es.pushStatus()
	}()
}

func (es *EditorService) saveLoop() {
	defer es.wg.Done()
	for {
		select {
		case <-es.ctx.Done():
			return
		case <-es.saveCh:
			es.saveNow(es.ctx)
		}
	}
}

func (es *EditorService) saveNow(ctx context.Context) {
	d, ok := es.state.TakeDraft()
	if !ok {
		return
	}
	err := es.store.Save(ctx, d)
	if errors.Is(err, draft.ErrStale) {
		slog.Warn("store rejected stale draft", "revision", d.Revision)
		es.send(eventbus.NoticeEvent{Text: "An older copy of the draft was not saved", Error: true})
		return
	}
	changed := es.state.RecordSave(err)
	if err != nil {
		slog.Error("failed to save draft", "error", err)
		if changed {
			es.send(eventbus.NoticeEvent{Text: fmt.Sprintf("Saving failed: %v", err), Error: true})
		}
		return
	}
	if changed {
		es.send(eventbus.NoticeEvent{Text: "Saving resumed"})
	}
}

func (es *EditorService) watchConfig(path string) {
	defer es.wg.Done()
	err := config.Watch(es.ctx, path, func(cfg *config.Config) {
		es.mu.Lock()
		es.config = cfg
		es.suggester = newSuggester(cfg)
		es.mu.Unlock()
		logger.SetLevel(cfg.LogLevel)

		es.send(eventbus.NoticeEvent{Text: fmt.Sprintf("Profile %q loaded", cfg.ActiveProfile)})
		es.pushStatus()
	})
	if err != nil {
		slog.Warn("config watcher stopped", "error", err)
	}
}

// pushStatus publishes the status under the state lock; SendToUI never
// blocks, and a concurrent change cannot slip in between read and send.
func (es *EditorService) pushStatus() {
	online := es.IsOnline()
	es.state.WithStatus(func(status models.AppStatus) {
		es.send(eventbus.StatusEvent{Status: status, Online: online})
	})
}

func (es *EditorService) send(event eventbus.CoreEvent) {
	if err := es.eventBus.SendToUI(event); err != nil {
		slog.Warn("failed to send event to UI", "error", err)
	}
}
