package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/jasktodo/internal/task"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{line: "add buy milk", want: NewAdd("buy milk")},
		{line: "  a   walk the dog  ", want: NewAdd("walk the dog")},
		{line: "add", want: NewAdd("")},
		{line: "ADD\tshout", want: NewAdd("shout")},
		{line: `new Task with <>&"' special chars`, want: NewAdd(`Task with <>&"' special chars`)},
		{line: "toggle 3", want: NewToggle(3)},
		{line: "done #12", want: NewToggle(12)},
		{line: "rm 1", want: NewDelete(1)},
		{line: "delete 7", want: NewDelete(7)},
		{line: "clear", want: NewClearCompleted()},
		{line: "clear-completed", want: NewClearCompleted()},
		{line: "filter active", want: NewSetFilter(task.FilterActive)},
		{line: "show Completed", want: NewSetFilter(task.FilterCompleted)},
		{line: "f all", want: NewSetFilter(task.FilterAll)},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{line: "", want: ErrEmptyLine},
		{line: "   ", want: ErrEmptyLine},
		{line: "toggle", want: ErrInvalidArgument},
		{line: "toggle abc", want: ErrInvalidArgument},
		{line: "toggle 0", want: ErrInvalidArgument},
		{line: "delete 1 2", want: ErrInvalidArgument},
		{line: "clear now", want: ErrInvalidArgument},
		{line: "filter archived", want: ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) err = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestParseUnknownCommandSuggests(t *testing.T) {
	_, err := Parse("togle 1")
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *UnknownCommandError", err)
	}
	if unknown.Suggestion != "toggle" {
		t.Fatalf("suggestion = %q, want %q", unknown.Suggestion, "toggle")
	}
	if !strings.Contains(err.Error(), `did you mean "toggle"`) {
		t.Fatalf("message = %q", err.Error())
	}

	_, err = Parse("xyzzyplugh")
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want *UnknownCommandError", err)
	}
	if unknown.Suggestion != "" {
		t.Fatalf("far-off word got suggestion %q", unknown.Suggestion)
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Spec{Name: "one", Aliases: []string{"o"}}))
	require.Error(t, r.Register(Spec{Name: "one"}))
	require.Error(t, r.Register(Spec{Name: "other", Aliases: []string{"o"}}))

	_, ok := r.Find("other")
	require.False(t, ok, "failed registration must not leave partial entries")
}

func TestDefaultRegistryListsEveryCommand(t *testing.T) {
	var names []Name
	for _, s := range Default.All() {
		names = append(names, s.Name)
	}
	want := []Name{Add, ClearCompleted, Delete, SetFilter, Toggle}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("commands (-want +got):\n%s", diff)
	}
	require.Contains(t, Default.Words(), "rm")
}

func TestCommandString(t *testing.T) {
	require.Equal(t, `add "x"`, NewAdd("x").String())
	require.Equal(t, "toggle 2", NewToggle(2).String())
	require.Equal(t, "filter active", NewSetFilter(task.FilterActive).String())
	require.Equal(t, "clear-completed", NewClearCompleted().String())
}
