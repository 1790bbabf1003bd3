package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/toggle-tui/internal/config"
	"github.com/leighmacdonald/toggle-tui/internal/ui/component"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

// New creates the tea.Program. hook is attached as the click callback of every toggle item
// and parentCtx receives messages meant for the app, such as click events.
func New(ctx context.Context, userConfig config.Config, buildVersion string, hook component.ClickHook,
	parentCtx chan any,
) (*UI, error) {
	zone.NewGlobal()

	root, err := newRootModel(userConfig, buildVersion, hook, parentCtx)
	if err != nil {
		return nil, err
	}

	fps := userConfig.FPS
	if fps <= 0 {
		fps = config.DefaultFPS
	}

	return &UI{
		program: tea.NewProgram(
			root,
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}, nil
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
