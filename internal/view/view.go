// Package view projects the task collection and filter into a view model.
// Render is pure: the same tasks and filter always produce an equal Model.
package view

import "github.com/jask/jasktodo/internal/task"

// EmptyPlaceholder replaces the list when no task is visible.
const EmptyPlaceholder = "No tasks to display"

// Item is one visible task row.
type Item struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Counts summarise the full collection, independent of the filter.
type Counts struct {
	Total     int `json:"total" yaml:"total"`
	Active    int `json:"active" yaml:"active"`
	Completed int `json:"completed" yaml:"completed"`
}

// Model is everything a front end needs to draw one frame.
type Model struct {
	Filter      task.Filter `json:"filter" yaml:"filter"`
	Items       []Item      `json:"items" yaml:"items"`
	Empty       bool        `json:"empty" yaml:"empty"`
	Placeholder string      `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Counts      Counts      `json:"counts" yaml:"counts"`
}

// Source is anything that exposes tasks and a filter. *task.Store satisfies it.
type Source interface {
	Tasks() []task.Task
	Filter() task.Filter
}

// Project renders the current state of src.
func Project(src Source) Model {
	return Render(src.Tasks(), src.Filter())
}

// Render builds the view model for tasks under filter f.
func Render(tasks []task.Task, f task.Filter) Model {
	m := Model{
		Filter: f,
		Items:  make([]Item, 0, len(tasks)),
		Counts: Count(tasks),
	}
	for _, t := range Visible(tasks, f) {
		m.Items = append(m.Items, Item{ID: t.ID, Text: t.Text, Completed: t.Completed})
	}
	if len(m.Items) == 0 {
		m.Empty = true
		m.Placeholder = EmptyPlaceholder
	}
	return m
}

// Visible returns the tasks matching f, in insertion order.
func Visible(tasks []task.Task, f task.Filter) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Count tallies the whole collection.
func Count(tasks []task.Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// IndexOf returns the position of id among the visible items, or -1.
func (m Model) IndexOf(id int) int {
	for i, it := range m.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
