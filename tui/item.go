// Package tui provides the interactive stack playground.
package tui

import (
	"fmt"

	"github.com/dsbox/dsbox/icon"
)

// listItem implements the list.Item interface for one stack element in the inspect view.
type listItem struct {
	depth int
	value string
}

func (t *listItem) Title() string {
	if t.depth == 0 {
		return fmt.Sprintf("%s %s", icon.Get(icon.Push), t.value)
	}
	return t.value
}

func (t *listItem) Description() string {
	if t.depth == 0 {
		return "top"
	}
	return fmt.Sprintf("depth %d", t.depth)
}

func (t *listItem) FilterValue() string {
	return t.value
}
