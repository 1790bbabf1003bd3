package toggle

import "errors"

var (
	ErrTooFewItems       = errors.New("toggle requires at least two items")
	ErrUnknownTransition = errors.New("unknown transition mode")
	ErrItemIndex         = errors.New("item index out of range")
)
