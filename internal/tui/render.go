package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/jasktodo/internal/output"
	"github.com/jask/jasktodo/internal/task"
	"github.com/jask/jasktodo/internal/view"
)

func (m Model) View() string {
	vm := m.project()

	sections := []string{
		titleStyle.Render(m.title),
		m.renderInput(),
		renderTabs(vm.Filter),
		m.renderList(vm),
		countsStyle.Render(output.CountsLine(vm.Counts)),
	}
	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = statusErrStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.ShortHelpView(m.keys.HelpBindings(m.activeScope())))
	body := strings.Join(sections, "\n")

	if m.alert != "" {
		return overlayCenter(body, m.renderAlert(), m.width, m.height)
	}
	return body
}

func (m Model) renderInput() string {
	style := inputBoxStyle
	if m.focus == focusInput {
		style = inputFocusedBoxStyle
	}
	if w := m.boxWidth(); w > 0 {
		style = style.Width(w)
	}
	return style.Render(m.input.View())
}

// renderTabs draws the three filter selectors; only the current one is highlighted.
func renderTabs(current task.Filter) string {
	tabs := make([]string, 0, 3)
	for i, f := range task.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == current {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return strings.Join(tabs, tabSepStyle.Render("│"))
}

func (m Model) renderList(vm view.Model) string {
	style := listBoxStyle
	if w := m.boxWidth(); w > 0 {
		style = style.Width(w)
	}
	if vm.Empty {
		return style.Render(emptyStyle.Render(vm.Placeholder))
	}

	textWidth := 0
	if w := m.boxWidth(); w > 0 {
		// cursor, checkbox and id columns
		textWidth = w - 4 - 4 - 5
	}
	rows := make([]string, 0, len(vm.Items))
	for i, it := range vm.Items {
		rows = append(rows, m.renderRow(i, it, textWidth))
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (m Model) renderRow(i int, it view.Item, textWidth int) string {
	pointer := "  "
	if m.focus == focusList && i == m.cursor {
		pointer = cursorStyle.Render("› ")
	}
	check := "[ ]"
	if it.Completed {
		check = checkStyle.Render("[x]")
	}
	text := it.Text
	if textWidth > 0 {
		text = ansi.Truncate(text, textWidth, "…")
	}
	if it.Completed {
		text = doneTaskStyle.Render(text)
	} else {
		text = taskStyle.Render(text)
	}
	return pointer + check + " " + idStyle.Render(fmt.Sprintf("%3d", it.ID)) + " " + text
}

func (m Model) renderAlert() string {
	hint := alertHintStyle.Render("enter/esc to dismiss")
	return alertStyle.Render(lipgloss.JoinVertical(lipgloss.Center, m.alert, "", hint))
}

// boxWidth is the inner width for bordered sections, 0 when unknown.
func (m Model) boxWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(20, m.width-4)
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
