package component

import (
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/toggle-tui/internal/config"
	"github.com/leighmacdonald/toggle-tui/internal/toggle"
	"github.com/leighmacdonald/toggle-tui/internal/ui/command"
	"github.com/leighmacdonald/toggle-tui/internal/ui/model"
	"github.com/leighmacdonald/toggle-tui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

// ClickHook is called with the clicked item whenever a toggle item is clicked.
type ClickHook func(toggleName string, index int, item toggle.Item)

// ToggleModel renders a toggle.Toggle as a strip of equally sized cells and translates
// the strip so only the active cell shows through the viewport.
type ToggleModel struct {
	name      string
	zoneID    string
	class     string
	width     int
	height    int
	toggle    *toggle.Toggle
	viewState model.ViewState
}

func NewToggleModel(conf config.Toggle, transition toggle.Transition, hook ClickHook) (ToggleModel, error) {
	widget, err := toggle.New(toggleItems(conf, hook), toggle.WithTransition(transition))
	if err != nil {
		return ToggleModel{}, err
	}

	return ToggleModel{
		name:   conf.Name,
		zoneID: zone.NewPrefix(),
		class:  conf.Class,
		width:  conf.Width,
		height: conf.Height,
		toggle: widget,
	}, nil
}

func toggleItems(conf config.Toggle, hook ClickHook) []toggle.Item {
	items := make([]toggle.Item, len(conf.Items))
	for idx, item := range conf.Items {
		items[idx] = toggle.Item{
			Text:  item.Text,
			Icon:  item.Icon,
			ID:    item.ID,
			Class: item.Class,
		}

		if hook != nil {
			clicked := items[idx]
			items[idx].OnClick = func() { hook(conf.Name, idx, clicked) }
		}
	}

	return items
}

// Reconfigure swaps in a new item list and size, keeping the current selection in range.
func (m ToggleModel) Reconfigure(conf config.Toggle, hook ClickHook) (ToggleModel, error) {
	if err := m.toggle.SetItems(toggleItems(conf, hook)); err != nil {
		return m, err
	}

	m.class = conf.Class
	m.width = conf.Width
	m.height = conf.Height

	return m, nil
}

func (m ToggleModel) Name() string {
	return m.name
}

func (m ToggleModel) Transition() toggle.Transition {
	return m.toggle.Transition()
}

func (m ToggleModel) Active() int {
	return m.toggle.Active()
}

func (m ToggleModel) Init() tea.Cmd {
	return nil
}

func (m ToggleModel) Update(msg tea.Msg) (ToggleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		posX, posY := zone.Get(m.zoneID).Pos(msg)
		if posX < 0 || posY < 0 {
			return m, nil
		}

		return m.ClickAt(posX, posY)
	}

	return m, nil
}

// ClickAt handles a click at the cell coordinates relative to the top left of the viewport.
func (m ToggleModel) ClickAt(posX int, posY int) (ToggleModel, tea.Cmd) {
	var position float64
	switch m.toggle.Axis() {
	case toggle.Horizontal:
		position = float64(posX)
	case toggle.Vertical:
		position = float64(posY)
	}

	index := m.toggle.ItemAt(position, m)
	active, err := m.toggle.Click(index)
	if err != nil {
		slog.Error("Failed to handle toggle click", slog.String("toggle", m.name), slog.String("error", err.Error()))

		return m, nil
	}

	item := m.toggle.ActiveItem()

	return m, command.Toggled(command.ToggledMsg{
		Toggle:     m.name,
		Index:      index,
		ItemID:     m.toggle.Items()[index].ID,
		Active:     active,
		ActiveText: item.Text,
		Time:       time.Now(),
	})
}

// Size is the viewport size in cells. A configured width of 0 fills the available width.
func (m ToggleModel) Size() (int, int) {
	width := m.width
	if width <= 0 {
		width = max(m.viewState.Width-4, 1)
	}

	return width, max(m.height, 1)
}

// Measure reports the rendered extent of the whole strip. Nothing is measurable until the
// terminal size is known.
func (m ToggleModel) Measure(axis toggle.Axis) (float64, bool) {
	if !m.viewState.Mounted() {
		return 0, false
	}

	switch axis {
	case toggle.Horizontal:
		return float64(lipgloss.Width(m.strip())), true
	case toggle.Vertical:
		return float64(lipgloss.Height(m.strip())), true
	default:
		return 0, false
	}
}

// Offset is the strip translation in whole cells.
func (m ToggleModel) Offset() int {
	return int(math.Round(m.toggle.Offset(m)))
}

func (m ToggleModel) View() string {
	if !m.viewState.Mounted() {
		return ""
	}

	width, height := m.Size()

	var content string
	switch m.toggle.Transition() {
	case toggle.CrossFade:
		content = m.fade()
	case toggle.LinearVertical:
		offset := m.Offset()
		lines := strings.Split(m.strip(), "\n")
		end := min(offset+height, len(lines))
		content = strings.Join(lines[min(offset, end):end], "\n")
	default:
		offset := m.Offset()
		lines := strings.Split(m.strip(), "\n")
		for idx, line := range lines {
			lines[idx] = ansi.Cut(line, offset, offset+width)
		}
		content = strings.Join(lines, "\n")
	}

	return zone.Mark(m.zoneID, content)
}

// Render wraps the toggle in a titled container.
func (m ToggleModel) Render(active bool) string {
	width, height := m.Size()

	return model.Container(m.name, width, height, m.View(), active)
}

func (m ToggleModel) strip() string {
	items := m.toggle.Items()
	cells := make([]string, len(items))
	for idx := range items {
		cells[idx] = m.cell(idx)
	}

	if m.toggle.Transition() == toggle.LinearVertical {
		return lipgloss.JoinVertical(lipgloss.Left, cells...)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// fade draws only the visible item. Hidden items take no space and receive no clicks.
func (m ToggleModel) fade() string {
	for idx, visible := range m.toggle.Visibility() {
		if visible {
			return m.cell(idx)
		}
	}

	return ""
}

func (m ToggleModel) cell(index int) string {
	width, height := m.Size()
	item := m.toggle.Items()[index]

	label := strings.TrimSpace(strings.Join([]string{item.Icon, item.Text}, " "))
	label = truncate.StringWithTail(label, uint(width), "…") //nolint:gosec

	return styles.Class(styles.ToggleItem, m.class, item.Class).
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(label)
}
