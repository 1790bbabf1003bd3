package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/toggle-tui/internal/config"
	"github.com/leighmacdonald/toggle-tui/internal/ui/command"
	"github.com/leighmacdonald/toggle-tui/internal/ui/component"
	"github.com/leighmacdonald/toggle-tui/internal/ui/input"
	"github.com/leighmacdonald/toggle-tui/internal/ui/model"
	"github.com/leighmacdonald/toggle-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

var errToggleConfig = errors.New("failed to configure toggles")

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	title             string
	viewState         model.ViewState
	toggles           []component.ToggleModel
	lastClicked       string
	statusModel       component.StatusBarModel
	hook              component.ClickHook
	parentContextChan chan any
}

func newRootModel(userConfig config.Config, buildVersion string, hook component.ClickHook, parentChan chan any) (*rootModel, error) {
	root := &rootModel{
		title:             "toggle-tui",
		statusModel:       component.NewStatusBarModel(buildVersion),
		hook:              hook,
		parentContextChan: parentChan,
	}

	toggles, err := root.buildToggles(userConfig)
	if err != nil {
		return nil, err
	}
	root.toggles = toggles

	return root, nil
}

// buildToggles creates models for the configured toggles. Existing toggles with the same name
// and transition keep their selection, which is clamped if their item list shrank. The whole
// config is validated first so a failure leaves every existing toggle untouched.
func (m rootModel) buildToggles(userConfig config.Config) ([]component.ToggleModel, error) {
	if err := userConfig.Validate(); err != nil {
		return nil, errors.Join(err, errToggleConfig)
	}

	existing := make(map[string]component.ToggleModel, len(m.toggles))
	for _, toggleModel := range m.toggles {
		existing[toggleModel.Name()] = toggleModel
	}

	toggles := make([]component.ToggleModel, 0, len(userConfig.Toggles))
	for _, tglConf := range userConfig.Toggles {
		transition, errTransition := userConfig.TransitionFor(tglConf)
		if errTransition != nil {
			return nil, errors.Join(errTransition, errToggleConfig)
		}

		if current, found := existing[tglConf.Name]; found && current.Transition() == transition {
			updated, errUpdate := current.Reconfigure(tglConf, m.hook)
			if errUpdate != nil {
				return nil, errors.Join(errUpdate, errToggleConfig, fmt.Errorf("toggle %q", tglConf.Name))
			}
			toggles = append(toggles, updated)

			continue
		}

		toggleModel, errNew := component.NewToggleModel(tglConf, transition, m.hook)
		if errNew != nil {
			return nil, errors.Join(errNew, errToggleConfig, fmt.Errorf("toggle %q", tglConf.Name))
		}

		if m.viewState.Mounted() {
			toggleModel, _ = toggleModel.Update(m.viewState)
		}
		toggles = append(toggles, toggleModel)
	}

	return toggles, nil
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.title),
		m.statusModel.Init())
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Width = msg.Width
		m.viewState.Height = msg.Height

		return m, command.SetViewState(m.viewState)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			m.viewState.ShowHelp = !m.viewState.ShowHelp

			return m, command.SetViewState(m.viewState)
		case key.Matches(msg, input.Default.Reload):
			return m, command.SendParent(m.parentContextChan, command.ReloadConfigMsg{})
		}
	case config.Config:
		toggles, err := m.buildToggles(msg)
		if err != nil {
			slog.Error("Failed to apply config", slog.String("error", err.Error()))

			return m, command.SetStatusMessage("Invalid config, keeping current toggles", true)
		}
		m.toggles = toggles

		return m, command.SetStatusMessage("Config reloaded", false)
	case command.ToggledMsg:
		m.lastClicked = msg.Toggle
		m.statusModel, _ = m.statusModel.Update(msg)

		return m, command.SendParent(m.parentContextChan, msg)
	}

	return m.propagate(inMsg)
}

func (m rootModel) View() string {
	if !m.viewState.Mounted() {
		return ""
	}

	footer := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.statusModel.View())
	header := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(m.title)

	rendered := make([]string, len(m.toggles))
	for idx, toggleModel := range m.toggles {
		rendered[idx] = toggleModel.Render(toggleModel.Name() == m.lastClicked)
	}

	contentHeight := max(m.viewState.Height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := styles.ContentContainerStyle.
		Width(m.viewState.Width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(lipgloss.JoinVertical(lipgloss.Center, rendered...))

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, content, footer))
}

func (m rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.toggles)+1)

	for idx := range m.toggles {
		m.toggles[idx], cmds[idx] = m.toggles[idx].Update(msg)
	}
	m.statusModel, cmds[len(m.toggles)] = m.statusModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/toggle-tui/toggle-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
