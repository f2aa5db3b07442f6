// Package task holds the in-memory task collection and the current view filter.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EmptyTextNotice is shown to the user when an add is rejected.
const EmptyTextNotice = "Please enter a task!"

var (
	// ErrEmptyText is returned by Add when the trimmed text is empty.
	ErrEmptyText = errors.New("task text is empty")

	// ErrUnknownFilter is returned for filter values outside all/active/completed.
	ErrUnknownFilter = errors.New("unknown filter")
)

// Task is a single to-do entry.
type Task struct {
	ID        int
	Text      string
	Completed bool
	CreatedAt time.Time
}

// Filter selects which tasks are visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters returns the selectable filters in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// Valid reports whether f is one of the selectable filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

// Label returns the display name used by filter selectors.
func (f Filter) Label() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	all := Filters()
	for i, v := range all {
		if v == f {
			return all[(i+1)%len(all)]
		}
	}
	return FilterAll
}

// Prev returns the filter before f, wrapping around.
func (f Filter) Prev() Filter {
	all := Filters()
	for i, v := range all {
		if v == f {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return FilterAll
}

// Matches reports whether t is visible under f.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// ParseFilter parses a filter name, case-insensitively.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q (want all, active or completed)", ErrUnknownFilter, s)
	}
	return f, nil
}
