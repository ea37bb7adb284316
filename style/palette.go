// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the playground color scheme.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")
	Mauve   = lipgloss.Color("#cba6f7")
	Peach   = lipgloss.Color("#fab387")
)

// Stack cell styles - the top of the stack is highlighted, every other slot uses the plain cell.
var (
	Cell = New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Foreground(Text).
		Padding(0, 1)

	TopCell = Cell.
		BorderForeground(Mauve).
		Bold(true)

	// FreeSlot renders reserved but unoccupied buffer capacity.
	FreeSlot = New().Foreground(Overlay).Faint(true)

	// Bar renders one bucket of the bench histogram.
	Bar = New().Foreground(Peach)
)
