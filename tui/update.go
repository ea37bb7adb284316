// Package tui provides the interactive stack playground.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update routes a message to the handler of the active state.
func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmds = append(cmds, uiCmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case playgroundState:
		cmds = append(cmds, b.updatePlayground(msg))
	case inspectState:
		cmds = append(cmds, b.updateInspect(msg))
	}

	return b, tea.Batch(cmds...)
}

func (b *statefulBubble) updatePlayground(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.push):
			value := strings.TrimSpace(b.inputC.Value())
			b.inputC.Reset()
			return b.pushValue(value)
		case key.Matches(msg, b.keymap.pop):
			return b.popValue()
		case key.Matches(msg, b.keymap.clear):
			return b.clearStack()
		case key.Matches(msg, b.keymap.undo):
			return b.undoLast()
		case key.Matches(msg, b.keymap.inspect):
			b.newState(inspectState)
			return b.refreshInspect()
		case key.Matches(msg, b.keymap.back):
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateInspect(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keymap.back), key.Matches(msg, b.keymap.inspect):
			b.previousState()
			return nil
		case key.Matches(msg, b.keymap.quit):
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	b.inspectC, cmd = b.inspectC.Update(msg)
	return cmd
}
