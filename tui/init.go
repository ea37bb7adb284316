// Package tui provides the interactive stack playground.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the input cursor blinking.
func (b *statefulBubble) Init() tea.Cmd {
	return textinput.Blink
}
