package toggle

import "strings"

type Transition int

const (
	LinearHorizontal Transition = iota
	LinearVertical
	CrossFade
)

func (t Transition) String() string {
	switch t {
	case LinearHorizontal:
		return "linear-horizontal"
	case LinearVertical:
		return "linear-vertical"
	case CrossFade:
		return "cross-fade"
	default:
		return "unknown"
	}
}

func (t Transition) Valid() bool {
	return t >= LinearHorizontal && t <= CrossFade
}

// Axis returns the axis the strip is translated along. Cross-fade has none.
func (t Transition) Axis() Axis {
	switch t {
	case LinearHorizontal:
		return Horizontal
	case LinearVertical:
		return Vertical
	default:
		return NoAxis
	}
}

// ParseTransition accepts the canonical mode names as well as the short aliases used in
// config files. An empty value selects the default horizontal slide.
func ParseTransition(value string) (Transition, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "default", "horizontal", "linear-horizontal":
		return LinearHorizontal, nil
	case "vertical", "linear-vertical":
		return LinearVertical, nil
	case "cross-fade", "crossfade", "fade":
		return CrossFade, nil
	default:
		return LinearHorizontal, ErrUnknownTransition
	}
}

type Axis int

const (
	NoAxis Axis = iota
	Horizontal
	Vertical
)

// Measurer reports the total scrollable extent of the rendered strip along an axis. ok is
// false when nothing has been rendered yet.
type Measurer interface {
	Measure(axis Axis) (extent float64, ok bool)
}

// MeasureFunc adapts a plain function to the Measurer interface.
type MeasureFunc func(axis Axis) (float64, bool)

func (f MeasureFunc) Measure(axis Axis) (float64, bool) {
	return f(axis)
}

// Fixed is a Measurer returning the same extent for every axis.
type Fixed float64

func (f Fixed) Measure(_ Axis) (float64, bool) {
	return float64(f), true
}

// OffsetCalculator turns the active index and the measured strip extent into the distance
// the strip must be shifted back along its axis.
type OffsetCalculator struct {
	transition Transition
}

func NewOffsetCalculator(transition Transition) (OffsetCalculator, error) {
	if !transition.Valid() {
		return OffsetCalculator{}, ErrUnknownTransition
	}

	return OffsetCalculator{transition: transition}, nil
}

func (c OffsetCalculator) Transition() Transition {
	return c.transition
}

// Offset is always zero for cross-fade and whenever the strip has not been measured.
func (c OffsetCalculator) Offset(active int, itemCount int, measurer Measurer) float64 {
	axis := c.transition.Axis()
	if axis == NoAxis || measurer == nil || itemCount <= 0 {
		return 0
	}

	extent, ok := measurer.Measure(axis)
	if !ok || extent <= 0 {
		return 0
	}

	return float64(active) * (extent / float64(itemCount))
}

// Visibility reports the cross-fade flag for every item. For linear transitions every item
// stays laid out in the strip so all flags are true.
func (c OffsetCalculator) Visibility(active int, itemCount int) []bool {
	flags := make([]bool, itemCount)
	for idx := range flags {
		flags[idx] = c.Visible(idx, active)
	}

	return flags
}

func (c OffsetCalculator) Visible(index int, active int) bool {
	if c.transition != CrossFade {
		return true
	}

	return index == active
}

// IndexAt maps a position along the strip to the item occupying it.
func IndexAt(position float64, extent float64, itemCount int) int {
	if itemCount <= 0 || extent <= 0 || position <= 0 {
		return 0
	}

	index := int(position / (extent / float64(itemCount)))

	return min(index, itemCount-1)
}
