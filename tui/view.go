// Package tui provides the interactive stack playground.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dsbox/dsbox/icon"
	"github.com/dsbox/dsbox/style"
	"github.com/dsbox/dsbox/util"
	"github.com/muesli/reflow/wrap"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

// defaultVisibleCells is used until the first window size message arrives.
const defaultVisibleCells = 5

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case playgroundState:
		output = b.viewPlayground()
	case inspectState:
		output = b.viewInspect()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewPlayground() string {
	lines := []string{
		style.Title("Stack Playground"),
		"",
		b.inputC.View(),
		"",
	}

	lines = append(lines, strings.Split(b.renderStack(), "\n")...)
	lines = append(lines, "", style.Faint(b.summary()))

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewInspect() string {
	return b.renderLines(true, []string{listExtraPaddingStyle.Render(b.inspectC.View())})
}

// renderStack draws the topmost cells that fit on screen, followed by the unused capacity.
func (b *statefulBubble) renderStack() string {
	if b.stack.IsEmpty() {
		return style.Faint(icon.Get(icon.Empty) + " empty")
	}

	visible := defaultVisibleCells
	if b.height > 0 {
		// header, input, summary and help take about ten lines, each cell takes three
		visible = util.Max((b.height-10)/3, 1)
	}

	width := util.Max(b.width-4, 8)

	var cells []string
	for value := range b.stack.All() {
		if len(cells) == visible {
			break
		}

		cell := style.Cell
		if len(cells) == 0 {
			cell = style.TopCell
		}
		cells = append(cells, cell.Render(wrap.String(value, width)))
	}

	if hidden := b.stack.Len() - len(cells); hidden > 0 {
		cells = append(cells, style.Faint(fmt.Sprintf("… %s below", util.Quantify(hidden, "element", "elements"))))
	}

	if free := b.stack.Cap() - b.stack.Len(); free > 0 {
		cells = append(cells, style.FreeSlot.Render(util.Quantify(free, "free slot", "free slots")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cells...)
}

func (b *statefulBubble) summary() string {
	stats := b.stack.Stats()
	return fmt.Sprintf(
		"len %d · cap %d · growths %d · shrinks %d · moves %d · undo %d",
		b.stack.Len(),
		b.stack.Cap(),
		stats.Growths,
		stats.Shrinks,
		stats.Moves,
		b.undoHistory.Len(),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
