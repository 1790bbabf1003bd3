package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/toggle-tui/internal/ui/model"
)

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

type ClearStatusMessageMsg struct{}

func ClearStatusAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// ToggledMsg is emitted after a toggle item was clicked and the selection advanced.
type ToggledMsg struct {
	Toggle string
	// Index of the clicked item.
	Index  int
	ItemID string
	// Active is the index selected after the click.
	Active     int
	ActiveText string
	Time       time.Time
}

func Toggled(msg ToggledMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// ReloadConfigMsg asks the app to re-read the config file from disk.
type ReloadConfigMsg struct{}

// SendParent forwards msg to the app outside of the tea.Program.
func SendParent(parent chan<- any, msg any) tea.Cmd {
	if parent == nil {
		return nil
	}

	return func() tea.Msg {
		parent <- msg

		return nil
	}
}
