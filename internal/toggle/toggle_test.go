package toggle_test

import (
	"testing"

	"github.com/leighmacdonald/toggle-tui/internal/toggle"
	"github.com/stretchr/testify/require"
)

func twoItems() []toggle.Item {
	return []toggle.Item{{Text: "item1", ID: "item1"}, {Text: "item2", ID: "item2"}}
}

func TestNewValidation(t *testing.T) {
	_, errEmpty := toggle.New(nil)
	require.ErrorIs(t, errEmpty, toggle.ErrTooFewItems)

	_, errOne := toggle.New([]toggle.Item{{Text: "only"}})
	require.ErrorIs(t, errOne, toggle.ErrTooFewItems)

	_, errMode := toggle.New(twoItems(), toggle.WithTransition(toggle.Transition(-1)))
	require.ErrorIs(t, errMode, toggle.ErrUnknownTransition)

	widget, err := toggle.New(twoItems())
	require.NoError(t, err)
	require.Equal(t, toggle.LinearHorizontal, widget.Transition())
	require.Equal(t, 0, widget.Active())
}

func TestUnmeasuredOffset(t *testing.T) {
	widget, err := toggle.New(twoItems())
	require.NoError(t, err)
	require.Zero(t, widget.Offset(nil))

	active, errClick := widget.Click(0)
	require.NoError(t, errClick)
	require.Equal(t, 1, active)
	require.Zero(t, widget.Offset(nil))
}

func TestHorizontalClick(t *testing.T) {
	widget, err := toggle.New(twoItems())
	require.NoError(t, err)
	require.Zero(t, widget.Offset(toggle.Fixed(200)))

	_, errClick := widget.Click(0)
	require.NoError(t, errClick)
	require.Equal(t, 1, widget.Active())
	require.InDelta(t, 100.0, widget.Offset(toggle.Fixed(200)), 0.0001)

	_, errBack := widget.Click(1)
	require.NoError(t, errBack)
	require.Zero(t, widget.Offset(toggle.Fixed(200)))
}

func TestVerticalClick(t *testing.T) {
	var axes []toggle.Axis
	measurer := toggle.MeasureFunc(func(axis toggle.Axis) (float64, bool) {
		axes = append(axes, axis)

		return 200, true
	})

	widget, err := toggle.New(twoItems(), toggle.WithTransition(toggle.LinearVertical))
	require.NoError(t, err)
	require.Zero(t, widget.Offset(measurer))

	_, errClick := widget.Click(0)
	require.NoError(t, errClick)
	require.InDelta(t, 100.0, widget.Offset(measurer), 0.0001)
	require.Equal(t, []toggle.Axis{toggle.Vertical, toggle.Vertical}, axes)
}

func TestCrossFadeClick(t *testing.T) {
	widget, err := toggle.New(twoItems(), toggle.WithTransition(toggle.CrossFade))
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, widget.Visibility())

	_, errClick := widget.Click(0)
	require.NoError(t, errClick)
	require.Equal(t, []bool{false, true}, widget.Visibility())
	require.False(t, widget.Visible(0))
	require.True(t, widget.Visible(1))
	require.Zero(t, widget.Offset(toggle.Fixed(200)))
}

func TestClickCallback(t *testing.T) {
	var first, second int
	items := []toggle.Item{
		{Text: "item1", OnClick: func() { first++ }},
		{Text: "item2", OnClick: func() { second++ }},
	}

	widget, err := toggle.New(items)
	require.NoError(t, err)

	_, errClick := widget.Click(0)
	require.NoError(t, errClick)
	require.Equal(t, 1, first)
	require.Zero(t, second)
	require.Equal(t, 1, widget.Active())
}

func TestClickSequence(t *testing.T) {
	widget, err := toggle.New([]toggle.Item{{Text: "a"}, {Text: "b"}, {Text: "c"}})
	require.NoError(t, err)

	var seen []int
	for range 3 {
		active, errClick := widget.Click(widget.Active())
		require.NoError(t, errClick)
		seen = append(seen, active)
	}

	require.Equal(t, []int{1, 2, 0}, seen)
}

func TestClickOutOfRange(t *testing.T) {
	widget, err := toggle.New(twoItems())
	require.NoError(t, err)

	_, errClick := widget.Click(2)
	require.ErrorIs(t, errClick, toggle.ErrItemIndex)
	require.Equal(t, 0, widget.Active())
}

func TestSetItemsClamps(t *testing.T) {
	widget, err := toggle.New([]toggle.Item{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}})
	require.NoError(t, err)

	for range 3 {
		_, _ = widget.Click(0)
	}
	require.Equal(t, 3, widget.Active())

	require.ErrorIs(t, widget.SetItems(twoItems()[:1]), toggle.ErrTooFewItems)
	require.Equal(t, 4, widget.Len())

	require.NoError(t, widget.SetItems(twoItems()))
	require.Equal(t, 1, widget.Active())
	require.Equal(t, "item2", widget.ActiveItem().ID)
}

func TestItemAt(t *testing.T) {
	widget, err := toggle.New([]toggle.Item{{Text: "a"}, {Text: "b"}, {Text: "c"}})
	require.NoError(t, err)

	measure := toggle.Fixed(90)
	require.Equal(t, 0, widget.ItemAt(5, measure))

	_, _ = widget.Click(0)
	require.Equal(t, 1, widget.ItemAt(5, measure))
	require.Equal(t, 1, widget.ItemAt(5, nil))

	fade, err := toggle.New(twoItems(), toggle.WithTransition(toggle.CrossFade))
	require.NoError(t, err)
	_, _ = fade.Click(0)
	require.Equal(t, 1, fade.ItemAt(0, measure))
}
