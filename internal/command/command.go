// Package command defines the named commands every front end sends to the
// task store, how they are parsed from text, and how they are applied.
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jask/jasktodo/internal/task"
)

// Name identifies a command.
type Name string

const (
	Add            Name = "add"
	Toggle         Name = "toggle"
	Delete         Name = "delete"
	ClearCompleted Name = "clear-completed"
	SetFilter      Name = "filter"
)

// Command is one user intent. Only the fields relevant to Name are read.
type Command struct {
	Name   Name
	Text   string
	ID     int
	Filter task.Filter
}

func (c Command) String() string {
	switch c.Name {
	case Add:
		return fmt.Sprintf("add %q", c.Text)
	case Toggle, Delete:
		return fmt.Sprintf("%s %d", c.Name, c.ID)
	case SetFilter:
		return fmt.Sprintf("filter %s", c.Filter)
	default:
		return string(c.Name)
	}
}

// NewAdd returns an add command.
func NewAdd(text string) Command { return Command{Name: Add, Text: text} }

// NewToggle returns a toggle command.
func NewToggle(id int) Command { return Command{Name: Toggle, ID: id} }

// NewDelete returns a delete command.
func NewDelete(id int) Command { return Command{Name: Delete, ID: id} }

// NewClearCompleted returns a clear-completed command.
func NewClearCompleted() Command { return Command{Name: ClearCompleted} }

// NewSetFilter returns a filter command.
func NewSetFilter(f task.Filter) Command { return Command{Name: SetFilter, Filter: f} }

// Spec describes how a command is spelled in text front ends.
type Spec struct {
	Name     Name
	Aliases  []string
	Synopsis string
	Usage    string
	parse    func(args string) (Command, error)
}

// Registry maps command names and aliases to specs.
type Registry struct {
	specs map[string]*Spec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*Spec)}
}

// Register adds s. It fails if the name or an alias is taken.
func (r *Registry) Register(s Spec) error {
	keys := append([]string{string(s.Name)}, s.Aliases...)
	for _, k := range keys {
		if _, exists := r.specs[k]; exists {
			return fmt.Errorf("command already registered: %s", k)
		}
	}
	sp := &s
	for _, k := range keys {
		r.specs[k] = sp
	}
	return nil
}

// Find looks up a spec by name or alias, case-insensitively.
func (r *Registry) Find(word string) (*Spec, bool) {
	s, ok := r.specs[strings.ToLower(word)]
	return s, ok
}

// All returns every spec once, sorted by name.
func (r *Registry) All() []*Spec {
	seen := make(map[Name]*Spec)
	for _, s := range r.specs {
		seen[s.Name] = s
	}
	out := make([]*Spec, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Words returns every name and alias, sorted.
func (r *Registry) Words() []string {
	out := make([]string, 0, len(r.specs))
	for k := range r.specs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default is the registry used by Parse.
var Default = NewRegistry()

func register(s Spec) {
	if err := Default.Register(s); err != nil {
		panic(err)
	}
}

func init() {
	register(Spec{
		Name:     Add,
		Aliases:  []string{"a", "new"},
		Synopsis: "Add a task",
		Usage:    "add <text...>",
		parse: func(args string) (Command, error) {
			// Empty text is the store's call, not a parse error.
			return NewAdd(args), nil
		},
	})
	register(Spec{
		Name:     Toggle,
		Aliases:  []string{"t", "done"},
		Synopsis: "Flip a task between active and completed",
		Usage:    "toggle <id>",
		parse: func(args string) (Command, error) {
			id, err := parseID(args)
			if err != nil {
				return Command{}, err
			}
			return NewToggle(id), nil
		},
	})
	register(Spec{
		Name:     Delete,
		Aliases:  []string{"rm", "del"},
		Synopsis: "Delete a task",
		Usage:    "delete <id>",
		parse: func(args string) (Command, error) {
			id, err := parseID(args)
			if err != nil {
				return Command{}, err
			}
			return NewDelete(id), nil
		},
	})
	register(Spec{
		Name:     ClearCompleted,
		Aliases:  []string{"clear", "cc"},
		Synopsis: "Remove every completed task",
		Usage:    "clear-completed",
		parse: func(args string) (Command, error) {
			if args != "" {
				return Command{}, fmt.Errorf("%w: clear-completed takes no arguments", ErrInvalidArgument)
			}
			return NewClearCompleted(), nil
		},
	})
	register(Spec{
		Name:     SetFilter,
		Aliases:  []string{"f", "show"},
		Synopsis: "Show all, active or completed tasks",
		Usage:    "filter <all|active|completed>",
		parse: func(args string) (Command, error) {
			f, err := task.ParseFilter(args)
			if err != nil {
				return Command{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			return NewSetFilter(f), nil
		},
	})
}
