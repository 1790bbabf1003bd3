package model

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Height int
	Width  int
	// ShowHelp expands the footer into the full key help.
	ShowHelp bool
}

// Mounted is true once the terminal size is known and components can measure themselves.
func (v ViewState) Mounted() bool {
	return v.Width > 0 && v.Height > 0
}
