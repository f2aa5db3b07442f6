// Package tui is the full-screen terminal front end.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasktodo/internal/command"
	"github.com/jask/jasktodo/internal/logging"
	"github.com/jask/jasktodo/internal/task"
	"github.com/jask/jasktodo/internal/view"
)

const (
	defaultTitle       = "My Todo List"
	defaultPlaceholder = "Add a new task..."
)

// Options configures the program. Zero values fall back to defaults.
type Options struct {
	Title       string
	Placeholder string
	Keys        *KeyRegistry
	Logger      *logging.Logger
}

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the bubbletea model. All state besides the UI chrome lives in
// the store behind the dispatcher; every frame is projected from it.
type Model struct {
	dispatcher *command.Dispatcher
	keys       *KeyRegistry
	logger     *logging.Logger

	title string
	input textinput.Model
	help  help.Model

	focus     focus
	cursor    int
	alert     string
	status    string
	statusErr bool

	width  int
	height int
}

// New returns a model driving d.
func New(d *command.Dispatcher, opts Options) Model {
	if opts.Title == "" {
		opts.Title = defaultTitle
	}
	if opts.Placeholder == "" {
		opts.Placeholder = defaultPlaceholder
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	in := textinput.New()
	in.Placeholder = opts.Placeholder
	in.Prompt = "› "
	in.Focus()

	return Model{
		dispatcher: d,
		keys:       opts.Keys,
		logger:     opts.Logger,
		title:      opts.Title,
		input:      in,
		help:       newHelp(),
		focus:      focusInput,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, msg.Width-10)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.focus == focusInput && m.alert == "" {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// activeScope picks the key scope by precedence: alert, then input, then list.
func (m Model) activeScope() string {
	switch {
	case m.alert != "":
		return scopeAlert
	case m.focus == focusInput:
		return scopeInput
	default:
		return scopeList
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := m.activeScope()
	b := m.keys.Lookup(msg.String(), scope)
	if b != nil && b.Action == actionForceQuit {
		return m, tea.Quit
	}
	switch scope {
	case scopeAlert:
		return m.updateAlert(b)
	case scopeInput:
		return m.updateInput(msg, b)
	default:
		return m.updateList(b)
	}
}

// updateAlert swallows everything except the dismiss keys.
func (m Model) updateAlert(b *Binding) (tea.Model, tea.Cmd) {
	if b != nil && b.Action == actionDismiss {
		m.alert = ""
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg, b *Binding) (tea.Model, tea.Cmd) {
	if b == nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch b.Action {
	case actionSubmit:
		res := m.dispatch(command.NewAdd(m.input.Value()))
		if res.Changed {
			m.input.Reset()
		}
	case actionBlur:
		m.focus = focusList
		m.input.Blur()
	case actionNextFilter, actionPrevFilter:
		m.cycleFilter(b.Action)
	}
	return m, nil
}

func (m Model) updateList(b *Binding) (tea.Model, tea.Cmd) {
	if b == nil {
		return m, nil
	}
	switch b.Action {
	case actionQuit:
		return m, tea.Quit
	case actionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case actionDown:
		if m.cursor < len(m.project().Items)-1 {
			m.cursor++
		}
	case actionToggle:
		if id, ok := m.selectedID(); ok {
			m.dispatch(command.NewToggle(id))
		}
	case actionDelete:
		if id, ok := m.selectedID(); ok {
			m.dispatch(command.NewDelete(id))
		}
	case actionClearCompleted:
		res := m.dispatch(command.NewClearCompleted())
		if res.Removed > 0 {
			m.setStatus(plural(res.Removed, "completed task")+" cleared", false)
		}
	case actionFocusInput:
		m.focus = focusInput
		cmd := m.input.Focus()
		return m, cmd
	case actionFilterAll:
		m.dispatch(command.NewSetFilter(task.FilterAll))
	case actionFilterActive:
		m.dispatch(command.NewSetFilter(task.FilterActive))
	case actionFilterDone:
		m.dispatch(command.NewSetFilter(task.FilterCompleted))
	case actionNextFilter, actionPrevFilter:
		m.cycleFilter(b.Action)
	}
	return m, nil
}

func (m *Model) cycleFilter(a Action) {
	f := m.dispatcher.Store().Filter()
	if a == actionNextFilter {
		f = f.Next()
	} else {
		f = f.Prev()
	}
	m.dispatch(command.NewSetFilter(f))
}

// dispatch applies c and folds the result into the UI state.
func (m *Model) dispatch(c command.Command) command.Result {
	res, err := m.dispatcher.Dispatch(c)
	switch {
	case err != nil:
		m.logger.Warn("command failed", "command", c.String(), "err", err)
		m.setStatus("error: "+err.Error(), true)
	case res.Notice != "":
		m.alert = res.Notice
	case res.Changed:
		m.status = ""
	}
	m.clampCursor()
	return res
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m Model) project() view.Model {
	return view.Project(m.dispatcher.Store())
}

// selectedID returns the id under the cursor, taken from the current frame.
func (m Model) selectedID() (int, bool) {
	items := m.project().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return 0, false
	}
	return items[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	n := len(m.project().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Alert returns the open blocking notice, if any.
func (m Model) Alert() string {
	return m.alert
}
