package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/toggle-tui/internal/config"
	"github.com/leighmacdonald/toggle-tui/internal/store"
	"github.com/leighmacdonald/toggle-tui/internal/toggle"
	"github.com/leighmacdonald/toggle-tui/internal/ui"
	"github.com/leighmacdonald/toggle-tui/internal/ui/command"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

type ConfigReader interface {
	Read() (config.Config, error)
}

type ClickRecorder interface {
	InsertClick(ctx context.Context, arg store.InsertClickParams) (int64, error)
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between the ui, the config loader and the click store.
type App struct {
	ui            UI
	config        config.Config
	loader        ConfigReader
	clicks        ClickRecorder
	uiUpdates     chan any
	configUpdates chan config.Config
	parentCtx     chan any
}

// New returns a new application instance. To actually start the app you must call
// Start().
func New(conf config.Config, loader ConfigReader, clicks ClickRecorder, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		loader:        loader,
		clicks:        clicks,
		configUpdates: configUpdates,
		uiUpdates:     make(chan any),
		parentCtx:     make(chan any),
	}
}

// Start runs the main event processing loop until ctx is cancelled.
func (app *App) Start(ctx context.Context) {
	// Start sending UI updates to the UI.
	go app.uiSender(ctx)

	for {
		select {
		case req := <-app.parentCtx:
			switch req := req.(type) {
			case command.ToggledMsg:
				app.recordClick(ctx, req)
			case command.ReloadConfigMsg:
				app.reloadConfig(ctx)
			}
		case conf := <-app.configUpdates:
			app.config = conf
			app.sendUI(ctx, conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) recordClick(ctx context.Context, msg command.ToggledMsg) {
	if app.clicks == nil {
		return
	}

	if _, err := app.clicks.InsertClick(ctx, store.InsertClickParams{
		ToggleName:  msg.Toggle,
		ItemIndex:   msg.Index,
		ItemID:      msg.ItemID,
		ActiveIndex: msg.Active,
		CreatedOn:   msg.Time,
	}); err != nil {
		slog.Error("Failed to record click", slog.String("toggle", msg.Toggle), slog.String("error", err.Error()))
		app.sendUI(ctx, command.StatusMsg{Message: "Failed to record click", Err: true})
	}
}

func (app *App) reloadConfig(ctx context.Context) {
	conf, err := app.loader.Read()
	if err != nil {
		slog.Error("Failed to reload config", slog.String("error", err.Error()))
		app.sendUI(ctx, command.StatusMsg{Message: "Failed to reload config", Err: true})

		return
	}

	app.config = conf
	app.sendUI(ctx, conf)
}

func (app *App) sendUI(ctx context.Context, msg any) {
	select {
	case app.uiUpdates <- msg:
	case <-ctx.Done():
	}
}

// uiSender handles forwarding all events to the UI.
func (app *App) uiSender(ctx context.Context) {
	for {
		select {
		case msg := <-app.uiUpdates:
			if app.ui != nil {
				app.ui.Send(msg)
			}
		case <-ctx.Done():
			return
		}
	}
}

// onItemClick is attached as the callback of every toggle item.
func (app *App) onItemClick(toggleName string, index int, item toggle.Item) {
	slog.Info("Toggle item clicked", slog.String("toggle", toggleName), slog.Int("index", index),
		slog.String("id", item.ID), slog.String("text", item.Text))
}

func (app *App) createUI(ctx context.Context) (UI, error) {
	if app.ui == nil {
		userInterface, err := ui.New(ctx, app.config, BuildVersion, app.onItemClick, app.parentCtx)
		if err != nil {
			return nil, err
		}
		app.ui = userInterface
	}

	return app.ui, nil
}
