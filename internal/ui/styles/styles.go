package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black    = lipgloss.Color("#111111")
	Gray     = lipgloss.Color("#3e3e3e")
	White    = lipgloss.Color("#cccccc")
	Red      = lipgloss.Color("#B8383B")
	Blue     = lipgloss.Color("#5885A2")
	Green    = lipgloss.Color("#4d7455")
	Purple   = lipgloss.Color("#8650ac")
	Navy     = lipgloss.Color("#476291")
	Orange   = lipgloss.Color("#cf6a32")
	Gold     = lipgloss.Color("#ffd700")
	DarkGray = lipgloss.Color("240")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blue)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center).Foreground(Purple).Bold(true)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	ToggleItem = lipgloss.NewStyle().Foreground(White).Align(lipgloss.Center, lipgloss.Center)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusToggle  = lipgloss.NewStyle().Foreground(Orange).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center)

	// Classes maps the class names usable in the config onto item styles.
	Classes = map[string]lipgloss.Style{
		"accent": lipgloss.NewStyle().Foreground(Accent).Bold(true),
		"muted":  lipgloss.NewStyle().Foreground(DarkGray),
		"red":    lipgloss.NewStyle().Foreground(Red),
		"blue":   lipgloss.NewStyle().Foreground(Blue),
		"green":  lipgloss.NewStyle().Foreground(Green),
		"purple": lipgloss.NewStyle().Foreground(Purple),
		"gold":   lipgloss.NewStyle().Foreground(Gold),
		"navy":   lipgloss.NewStyle().Foreground(Navy),
	}
)

// Class returns base with the foreground and text attributes of the named classes applied.
// Unknown names are ignored.
func Class(base lipgloss.Style, names ...string) lipgloss.Style {
	for _, name := range names {
		class, found := Classes[strings.ToLower(name)]
		if !found {
			continue
		}

		if _, noColor := class.GetForeground().(lipgloss.NoColor); !noColor {
			base = base.Foreground(class.GetForeground())
		}
		if class.GetBold() {
			base = base.Bold(true)
		}
	}

	return base
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}
