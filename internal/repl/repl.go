// Package repl is a line-oriented front end: one command per line, with the
// full frame printed after every change.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jask/jasktodo/internal/command"
	"github.com/jask/jasktodo/internal/logging"
	"github.com/jask/jasktodo/internal/output"
	"github.com/jask/jasktodo/internal/view"
)

// Prompt is shown before every line on a terminal.
const Prompt = "todo> "

var builtinWords = []string{"exit", "help", "ls", "quit"}

// Options configures a Session.
type Options struct {
	Title  string
	Out    io.Writer
	Err    io.Writer
	Logger *logging.Logger
}

// Session runs commands read from a LineReader against one dispatcher.
type Session struct {
	d      *command.Dispatcher
	title  string
	out    io.Writer
	errOut io.Writer
	logger *logging.Logger
}

// New returns a Session. Out and Err default to io.Discard.
func New(d *command.Dispatcher, opts Options) *Session {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Err == nil {
		opts.Err = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	return &Session{d: d, title: opts.Title, out: opts.Out, errOut: opts.Err, logger: opts.Logger}
}

// Run reads lines until EOF, quit/exit, or ctx is done. It closes r.
func (s *Session) Run(ctx context.Context, r LineReader) error {
	defer func() {
		if err := r.Close(); err != nil {
			s.logger.Warn("closing line reader", "err", err)
		}
	}()

	cancel := s.d.Store().Subscribe(s.printFrame)
	defer cancel()

	s.printFrame()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := r.Prompt(Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.AppendHistory(line)

		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		case "help", "?":
			s.printHelp()
			continue
		case "ls", "list":
			s.printFrame()
			continue
		}
		s.exec(line)
	}
}

func (s *Session) exec(line string) {
	res, err := s.d.DispatchLine(line)
	if err != nil {
		s.logger.Info("command rejected", "line", line, "err", err)
		fmt.Fprintf(s.errOut, "error: %v\n", err)
		return
	}
	if res.Notice != "" {
		fmt.Fprintf(s.out, "! %s\n", res.Notice)
	}
}

func (s *Session) printFrame() {
	_, _ = io.WriteString(s.out, output.Text(s.title, view.Project(s.d.Store())))
}

func (s *Session) printHelp() {
	for _, spec := range command.Default.All() {
		fmt.Fprintf(s.out, "  %-32s %s", spec.Usage, spec.Synopsis)
		if len(spec.Aliases) > 0 {
			fmt.Fprintf(s.out, " (aliases: %s)", strings.Join(spec.Aliases, ", "))
		}
		fmt.Fprintln(s.out)
	}
	fmt.Fprintf(s.out, "  %-32s %s\n", "ls", "Show the list again")
	fmt.Fprintf(s.out, "  %-32s %s\n", "quit", "Leave")
}
