// Package tui provides the interactive stack playground.
package tui

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsbox/dsbox/icon"
	"github.com/dsbox/dsbox/internal/ui"
	"github.com/dsbox/dsbox/log"
	"github.com/dsbox/dsbox/script"
	"github.com/dsbox/dsbox/stack"
	"github.com/dsbox/dsbox/util"
)

// action records how to revert one mutating operation.
type action struct {
	kind script.Kind
	// values holds the removed elements bottom to top, for pop and clear.
	values []string
}

// statefulBubble holds the playground state: the stack being explored, its undo log and the UI components.
type statefulBubble struct {
	state         state
	statesHistory stack.Stack[state]

	keymap *statefulKeymap

	// components
	inputC   textinput.Model
	inspectC list.Model
	helpC    help.Model

	stack       *stack.Stack[string]
	undoHistory *stack.Stack[action]
	undoLimit   int

	width, height int
	notifier      *ui.Model
}

// setState performs a synchronous transition of both the playground state and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState transitions to s, recording the previous state in the navigation history.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

// previousState restores the playground to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.Pop().Get(); ok {
		b.setState(s)
	}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	b.width = width - x
	b.height = height - y

	b.inputC.Width = util.Max(b.width-len(b.inputC.Prompt)-1, 1)
	b.inspectC.SetSize(width-xx, height-yy-2)
	b.helpC.Width = b.width
}

func (b *statefulBubble) pushValue(value string) tea.Cmd {
	if value == "" {
		return ui.Notify("nothing to push")
	}

	b.stack.Push(value)
	b.record(action{kind: script.Push})
	b.logOp(script.Push, value)
	return ui.Notify(fmt.Sprintf("%s pushed %s", icon.Get(icon.Push), value))
}

func (b *statefulBubble) popValue() tea.Cmd {
	value, ok := b.stack.Pop().Get()
	if !ok {
		return ui.Notify(icon.Get(icon.Empty) + " stack is empty")
	}

	b.record(action{kind: script.Pop, values: []string{value}})
	b.logOp(script.Pop, value)
	return ui.Notify(fmt.Sprintf("%s popped %s", icon.Get(icon.Pop), value))
}

func (b *statefulBubble) clearStack() tea.Cmd {
	if b.stack.IsEmpty() {
		return ui.Notify(icon.Get(icon.Empty) + " stack is empty")
	}

	values := bottomToTop(b.stack)
	b.stack.Clear()
	b.record(action{kind: script.Clear, values: values})
	b.logOp(script.Clear, "")
	return ui.Notify(fmt.Sprintf("cleared %s", util.Quantify(len(values), "element", "elements")))
}

func (b *statefulBubble) undoLast() tea.Cmd {
	last, ok := b.undoHistory.Pop().Get()
	if !ok {
		return ui.Notify("nothing to undo")
	}

	switch last.kind {
	case script.Push:
		b.stack.Pop()
	case script.Pop, script.Clear:
		for _, value := range last.values {
			b.stack.Push(value)
		}
	}

	return ui.Notify(fmt.Sprintf("undid %s", last.kind))
}

// record appends a to the undo log, dropping the oldest entries beyond the limit.
func (b *statefulBubble) record(a action) {
	if b.undoLimit <= 0 {
		return
	}

	b.undoHistory.Push(a)
	if b.undoHistory.Len() <= b.undoLimit {
		return
	}

	kept := b.undoHistory.Values()[:b.undoLimit]
	slices.Reverse(kept)
	b.undoHistory = stack.From(kept...)
}

// refreshInspect loads the stack contents, top first, into the inspect list.
func (b *statefulBubble) refreshInspect() tea.Cmd {
	items := make([]list.Item, 0, b.stack.Len())
	for value := range b.stack.All() {
		items = append(items, &listItem{depth: len(items), value: value})
	}
	return b.inspectC.SetItems(items)
}

func (b *statefulBubble) logOp(op script.Kind, value string) {
	log.WithFields(log.Fields{
		"op":    op,
		"value": value,
		"len":   b.stack.Len(),
		"cap":   b.stack.Cap(),
	}).Debug("playground")
}

func bottomToTop(s *stack.Stack[string]) []string {
	values := s.Values()
	slices.Reverse(values)
	return values
}

// newBubble builds the playground model, seeding the stack from options.
func newBubble(options *Options) (*statefulBubble, error) {
	s, err := stack.NewWithConfig[string](options.Config)
	if err != nil {
		return nil, err
	}

	for _, value := range options.Seed {
		s.Push(value)
	}

	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		keymap:      keymap,
		stack:       s,
		undoHistory: stack.New[action](),
		undoLimit:   options.UndoLimit,
		notifier:    &ui.Model{},
	}

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "value to push"
	bubble.inputC.Prompt = "> "
	bubble.inputC.CharLimit = 256
	bubble.inputC.Focus()

	bubble.inspectC = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	bubble.inspectC.Title = "Top to bottom"
	bubble.inspectC.KeyMap = keymap.forList()
	bubble.inspectC.SetFilteringEnabled(false)
	bubble.inspectC.SetShowHelp(false)

	bubble.helpC = help.New()

	bubble.setState(playgroundState)
	return &bubble, nil
}
