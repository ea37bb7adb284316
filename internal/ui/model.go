// Package ui provides state management and rendering for ephemeral terminal notifications.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsbox/dsbox/style"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

// Model encapsulates the state for displaying non-blocking terminal alerts.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// Notification is a Bubbletea message carrying the text to display.
type Notification string

// ClearNotificationMsg is a Bubbletea message used to reset the visual notification state.
type ClearNotificationMsg struct {
	at time.Time
}

// Notify returns a tea.Cmd that displays text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notification(text)
	}
}

// clearAfter returns a delayed tea.Cmd that clears the notification shown at the given instant.
func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification replaced the one this tick was scheduled for
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification, if any.
func (m *Model) Current() string {
	return m.notification
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
