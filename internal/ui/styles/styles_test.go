package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/toggle-tui/internal/ui/styles"
	"github.com/stretchr/testify/require"
)

func TestClass(t *testing.T) {
	base := lipgloss.NewStyle().Foreground(styles.White)

	require.Equal(t, styles.White, base.GetForeground())
	require.Equal(t, styles.Accent, styles.Class(base, "accent").GetForeground())
	require.True(t, styles.Class(base, "Accent").GetBold())
	require.Equal(t, styles.DarkGray, styles.Class(base, "accent", "muted").GetForeground())
	require.Equal(t, styles.White, styles.Class(base, "nope", "").GetForeground())
}

func TestPaletteClasses(t *testing.T) {
	base := lipgloss.NewStyle()

	for name, colour := range map[string]lipgloss.Color{
		"red":    styles.Red,
		"blue":   styles.Blue,
		"green":  styles.Green,
		"purple": styles.Purple,
		"gold":   styles.Gold,
		"navy":   styles.Navy,
	} {
		require.Equal(t, colour, styles.Class(base, name).GetForeground(), name)
	}
}

func TestWrapX(t *testing.T) {
	require.Equal(t, "xxabxx", styles.WrapX(6, "ab", "x"))
	require.Equal(t, "xabxx", styles.WrapX(5, "ab", "x"))
	require.Equal(t, "abc", styles.WrapX(2, "abc", "x"))
}
