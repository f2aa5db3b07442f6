package command

import (
	"errors"
	"fmt"

	"github.com/jask/jasktodo/internal/logging"
	"github.com/jask/jasktodo/internal/task"
)

// Result describes what a dispatched command did.
type Result struct {
	// Changed is true when the collection or filter changed.
	Changed bool
	// Ignored is true for toggle/delete on an id that does not exist.
	Ignored bool
	// Notice is a blocking message for the user, set only when add is rejected.
	Notice string
	// Task is the created or toggled task, when there is one.
	Task *task.Task
	// Removed counts tasks dropped by clear-completed or delete.
	Removed int
}

// Dispatcher applies commands to a store.
type Dispatcher struct {
	store  *task.Store
	logger *logging.Logger
}

// NewDispatcher returns a Dispatcher for store. A nil logger discards output.
func NewDispatcher(store *task.Store, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Dispatcher{store: store, logger: logger}
}

// Store returns the store commands are applied to.
func (d *Dispatcher) Store() *task.Store {
	return d.store
}

// Dispatch applies c. The rejected add is reported through Result.Notice,
// not as an error; errors only come from commands no front end can build.
func (d *Dispatcher) Dispatch(c Command) (Result, error) {
	switch c.Name {
	case Add:
		t, err := d.store.Add(c.Text)
		if errors.Is(err, task.ErrEmptyText) {
			d.logger.Debug("add rejected", "reason", "empty text")
			return Result{Notice: task.EmptyTextNotice}, nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("add: %w", err)
		}
		d.logger.Debug("task added", "id", t.ID)
		return Result{Changed: true, Task: &t}, nil

	case Toggle:
		t, ok := d.store.Toggle(c.ID)
		if !ok {
			d.logger.Debug("toggle ignored", "id", c.ID, "reason", "unknown id")
			return Result{Ignored: true}, nil
		}
		d.logger.Debug("task toggled", "id", t.ID, "completed", t.Completed)
		return Result{Changed: true, Task: &t}, nil

	case Delete:
		if !d.store.Delete(c.ID) {
			d.logger.Debug("delete ignored", "id", c.ID, "reason", "unknown id")
			return Result{Ignored: true}, nil
		}
		d.logger.Debug("task deleted", "id", c.ID)
		return Result{Changed: true, Removed: 1}, nil

	case ClearCompleted:
		n := d.store.ClearCompleted()
		d.logger.Debug("completed cleared", "removed", n)
		return Result{Changed: n > 0, Removed: n}, nil

	case SetFilter:
		prev := d.store.Filter()
		if err := d.store.SetFilter(c.Filter); err != nil {
			return Result{}, err
		}
		return Result{Changed: prev != c.Filter}, nil

	default:
		return Result{}, &UnknownCommandError{Word: string(c.Name)}
	}
}

// DispatchLine parses line and dispatches the result.
func (d *Dispatcher) DispatchLine(line string) (Result, error) {
	c, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return d.Dispatch(c)
}
