// Package toggle implements the state of a click-to-cycle toggle widget: which item is
// active, and how far the rendered strip of items must be shifted to show it.
package toggle

import (
	"errors"
	"fmt"
)

// Item is a single choice. Text, Icon and Class are carried through to the renderer
// untouched.
type Item struct {
	Text    string
	Icon    string
	ID      string
	Class   string
	OnClick func()
}

type Option func(t *Toggle)

func WithTransition(transition Transition) Option {
	return func(t *Toggle) {
		t.transition = transition
	}
}

type Toggle struct {
	items      []Item
	transition Transition
	selection  Selection
	calculator OffsetCalculator
}

func New(items []Item, opts ...Option) (*Toggle, error) {
	toggle := &Toggle{transition: LinearHorizontal}
	for _, opt := range opts {
		opt(toggle)
	}

	calculator, errCalc := NewOffsetCalculator(toggle.transition)
	if errCalc != nil {
		return nil, errors.Join(errCalc, fmt.Errorf("transition %d", toggle.transition))
	}
	toggle.calculator = calculator

	if err := toggle.SetItems(items); err != nil {
		return nil, err
	}

	return toggle, nil
}

// SetItems replaces the item list. The active index is clamped if the new list is shorter.
func (t *Toggle) SetItems(items []Item) error {
	if len(items) < 2 {
		return errors.Join(ErrTooFewItems, fmt.Errorf("got %d", len(items)))
	}

	t.items = items
	t.selection.Clamp(len(items))

	return nil
}

// Click handles a click on the item at index: the selection advances and the clicked
// item's own callback fires. It returns the new active index.
func (t *Toggle) Click(index int) (int, error) {
	if index < 0 || index >= len(t.items) {
		return t.selection.Current(), errors.Join(ErrItemIndex, fmt.Errorf("index %d of %d", index, len(t.items)))
	}

	onClick := t.items[index].OnClick
	active := t.selection.Advance(len(t.items))

	if onClick != nil {
		onClick()
	}

	return active, nil
}

func (t *Toggle) Active() int {
	return t.selection.Current()
}

func (t *Toggle) ActiveItem() Item {
	return t.items[t.selection.Current()]
}

func (t *Toggle) Items() []Item {
	return t.items
}

func (t *Toggle) Len() int {
	return len(t.items)
}

func (t *Toggle) Transition() Transition {
	return t.transition
}

func (t *Toggle) Axis() Axis {
	return t.transition.Axis()
}

// Offset is the distance, along the transition axis, the strip must be shifted back so the
// active item lines up with the viewport.
func (t *Toggle) Offset(measurer Measurer) float64 {
	return t.calculator.Offset(t.selection.Current(), len(t.items), measurer)
}

func (t *Toggle) Visible(index int) bool {
	return t.calculator.Visible(index, t.selection.Current())
}

func (t *Toggle) Visibility() []bool {
	return t.calculator.Visibility(t.selection.Current(), len(t.items))
}

// ItemAt returns the item index found at position along the strip, accounting for the
// current offset. Cross-fade always resolves to the active item.
func (t *Toggle) ItemAt(position float64, measurer Measurer) int {
	axis := t.transition.Axis()
	if axis == NoAxis || measurer == nil {
		return t.selection.Current()
	}

	extent, ok := measurer.Measure(axis)
	if !ok {
		return t.selection.Current()
	}

	return IndexAt(position+t.Offset(measurer), extent, len(t.items))
}
