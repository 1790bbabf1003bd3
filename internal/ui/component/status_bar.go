package component

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/toggle-tui/internal/config"
	"github.com/leighmacdonald/toggle-tui/internal/ui/command"
	"github.com/leighmacdonald/toggle-tui/internal/ui/input"
	"github.com/leighmacdonald/toggle-tui/internal/ui/model"
	"github.com/leighmacdonald/toggle-tui/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	lastToggle  command.ToggledMsg
	clicks      int
	version     string
	help        help.Model
}

func NewStatusBarModel(version string) StatusBarModel {
	return StatusBarModel{version: version, help: help.New()}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.ToggledMsg:
		m.lastToggle = msg
		m.clicks++
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearStatusAfter(config.DefaultStatusTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
		m.help.Width = msg.Width
		m.help.ShowAll = msg.ShowHelp
	}

	return m, nil
}

func (m StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(m.help.View(input.Default)),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) status() string {
	if m.statusMsg != "" {
		if m.statusError {
			return styles.StatusError.Render(m.statusMsg)
		}

		return styles.StatusMessage.Render(m.statusMsg)
	}

	if m.clicks == 0 {
		return styles.StatusToggle.Render("Click a toggle")
	}

	return styles.StatusToggle.Render(fmt.Sprintf("%s → %s (%s, %d clicks)",
		m.lastToggle.Toggle, m.lastToggle.ActiveText, humanize.Time(m.lastToggle.Time), m.clicks))
}
