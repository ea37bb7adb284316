// Package tui provides the interactive stack playground.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsbox/dsbox/stack"
)

// Options encapsulates the runtime configuration for the playground.
type Options struct {
	// Config drives the buffer of the stack being explored.
	Config stack.Config
	// Seed is pushed bottom to top before the playground opens.
	Seed []string
	// UndoLimit caps the number of operations that can be undone.
	UndoLimit int
}

// Run initializes and executes the playground Bubble Tea loop.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
