package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrEmptyLine is returned by Parse for blank input.
	ErrEmptyLine = errors.New("empty command line")

	// ErrInvalidArgument wraps malformed ids and filter names.
	ErrInvalidArgument = errors.New("invalid argument")
)

// maxSuggestDistance bounds how far a typo may be from a known command.
const maxSuggestDistance = 2

// UnknownCommandError reports a word that names no command.
type UnknownCommandError struct {
	Word       string
	Suggestion string
}

func (e *UnknownCommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown command %q (did you mean %q?)", e.Word, e.Suggestion)
	}
	return fmt.Sprintf("unknown command %q", e.Word)
}

// Parse turns a line such as "toggle 3" into a Command using the default registry.
func Parse(line string) (Command, error) {
	return Default.Parse(line)
}

// Parse turns a line into a Command.
func (r *Registry) Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyLine
	}
	word, args := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		word, args = line[:i], strings.TrimSpace(line[i:])
	}

	spec, ok := r.Find(word)
	if !ok {
		return Command{}, &UnknownCommandError{Word: word, Suggestion: r.Suggest(word)}
	}
	cmd, err := spec.parse(args)
	if err != nil {
		return Command{}, fmt.Errorf("%s: %w", spec.Name, err)
	}
	return cmd, nil
}

// Suggest returns the registered word closest to word, or "" when nothing
// is within maxSuggestDistance edits.
func (r *Registry) Suggest(word string) string {
	word = strings.ToLower(word)
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, w := range r.Words() {
		d := levenshtein.ComputeDistance(word, w)
		if d < bestDist {
			best, bestDist = w, d
		}
	}
	if best == "" {
		return ""
	}
	// Report the primary name rather than a short alias.
	if spec, ok := r.Find(best); ok {
		return string(spec.Name)
	}
	return best
}

func parseID(args string) (int, error) {
	if args == "" {
		return 0, fmt.Errorf("%w: task id required", ErrInvalidArgument)
	}
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: expected one task id, got %q", ErrInvalidArgument, args)
	}
	id, err := strconv.Atoi(strings.TrimPrefix(fields[0], "#"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: task id must be a positive number, got %q", ErrInvalidArgument, fields[0])
	}
	return id, nil
}
