package ui

// HelpLines is the text of the help panel.
var HelpLines = []string{
	"Controls",
	"",
	"W/A/S/D or arrows  move",
	"Shift              sprint",
	"Left drag          look around",
	"Left drag on tile  move the tile (meadow)",
	"Mouse wheel        zoom (orbit)",
	"C                  toggle orbit / first person",
	"1-4                sunny, night, rain, storm",
	"H                  show or hide this panel",
	"Esc / Q            close panel, then quit",
}

// Help tracks whether the modal help panel is open. While it is open the
// world ignores pointer input.
type Help struct {
	open bool
}

// Open reports whether the panel is shown.
func (h *Help) Open() bool { return h != nil && h.open }

// Toggle flips the panel.
func (h *Help) Toggle() { h.open = !h.open }

// Escape handles the escape key: an open panel is closed, otherwise the
// key asks to quit. It reports whether to quit.
func (h *Help) Escape() bool { return !h.Close() }

// Close hides the panel and reports whether it was open.
func (h *Help) Close() bool {
	was := h.open
	h.open = false
	return was
}
