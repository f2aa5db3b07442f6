// Package output writes a view model as plain text, JSON or YAML.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jask/jasktodo/internal/task"
	"github.com/jask/jasktodo/internal/view"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat accepts text, json, yaml (and yml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// document is the shape of the structured formats.
type document struct {
	Title string `json:"title" yaml:"title"`
	view.Model `yaml:",inline"`
}

// Write renders m to w in format f.
func Write(w io.Writer, f Format, title string, m view.Model) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, Text(title, m))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(document{Title: title, Model: m})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Title: title, Model: m}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Text returns the plain frame used by the REPL and the script runner:
//
//	My Todo List
//	[All] Active Completed
//	  1 [ ] buy milk
//	  2 [x] walk the dog
//	Total: 2 · Active: 1 · Completed: 1
func Text(title string, m view.Model) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	b.WriteString(FilterBar(m.Filter))
	b.WriteByte('\n')
	if m.Empty {
		b.WriteString("  ")
		b.WriteString(m.Placeholder)
		b.WriteByte('\n')
	}
	for _, it := range m.Items {
		mark := " "
		if it.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "%3d [%s] %s\n", it.ID, mark, it.Text)
	}
	b.WriteString(CountsLine(m.Counts))
	b.WriteByte('\n')
	return b.String()
}

// FilterBar lists the filters with the selected one bracketed.
func FilterBar(selected task.Filter) string {
	parts := make([]string, 0, 3)
	for _, f := range task.Filters() {
		if f == selected {
			parts = append(parts, "["+f.Label()+"]")
		} else {
			parts = append(parts, f.Label())
		}
	}
	return strings.Join(parts, " ")
}

// CountsLine formats the three counters.
func CountsLine(c view.Counts) string {
	return fmt.Sprintf("Total: %d · Active: %d · Completed: %d", c.Total, c.Active, c.Completed)
}
