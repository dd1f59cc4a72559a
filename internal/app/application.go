package app

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/ZenPad/internal/config"
	"github.com/Rorical/ZenPad/internal/core"
	"github.com/Rorical/ZenPad/internal/dispatcher"
	"github.com/Rorical/ZenPad/internal/draft"
	"github.com/Rorical/ZenPad/internal/eventbus"
	"github.com/Rorical/ZenPad/internal/logger"
	"github.com/Rorical/ZenPad/internal/models"
	"github.com/Rorical/ZenPad/internal/update"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.EditorService
	store      *draft.Store
	model      *AppModel
}

type AppModel struct {
	appModel   *models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig wires the editor for an already loaded config.
// The log and the draft database live in the config's data directory.
func NewApplicationWithConfig(cfg *config.Config) (*Application, error) {
	dataDir := cfg.DataDirectory()
	if err := logger.Init(dataDir, cfg.LogLevel); err != nil {
		return nil, err
	}

	ctx := context.Background()
	store, err := draft.Open(ctx, dataDir)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}

	d, err := store.Load(ctx)
	if err != nil {
		slog.Error("failed to load draft, starting empty", "error", err)
		d = models.NewDraft()
	}

	// Create event bus
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		slog.Warn("event bus error", "operation", e.Operation, "error", e.Err)
	})

	disp := dispatcher.NewEventDispatcher(eb)

	service, err := core.NewEditorService(cfg, store, eb)
	if err != nil {
		_ = store.Close()
		logger.Close()
		return nil, fmt.Errorf("failed to initialize editor service: %w", err)
	}

	model := &AppModel{
		appModel:   update.NewAppModel(cfg, d),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		store:      store,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()
	slog.Info("editor started", "profile", app.config.ActiveProfile, "online", app.service.IsOnline())

	p := tea.NewProgram(app.model, tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// Stop flushes the last draft before the store and the log are closed.
func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if err := app.store.Close(); err != nil {
		slog.Error("failed to close draft store", "error", err)
	}
	slog.Info("editor stopped")
	logger.Close()
}
