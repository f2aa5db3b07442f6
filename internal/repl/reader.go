package repl

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jask/jasktodo/internal/command"
)

// LineReader supplies input lines. Prompt returns io.EOF when input ends.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// NewLineReader returns a liner-backed reader when in is an interactive
// stdin, and a plain line scanner otherwise.
func NewLineReader(in io.Reader, historyPath string) LineReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin && term.IsTerminal(int(f.Fd())) {
		return newLinerReader(historyPath)
	}
	return NewScanReader(in)
}

// ---------------------------------------------------------------------------
// Interactive reader
// ---------------------------------------------------------------------------

type linerReader struct {
	state       *liner.State
	historyPath string
}

func newLinerReader(historyPath string) *linerReader {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetTabCompletionStyle(liner.TabPrints)
	st.SetCompleter(complete)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = st.ReadHistory(f)
			f.Close()
		}
	}
	return &linerReader{state: st, historyPath: historyPath}
}

func (r *linerReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	return line, err
}

func (r *linerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

func (r *linerReader) Close() error {
	saveErr := saveHistory(r.historyPath, r.state.WriteHistory)
	if err := r.state.Close(); err != nil {
		return err
	}
	return saveErr
}

// saveHistory writes history through write into a buffer and replaces the
// file at path atomically.
func saveHistory(path string, write func(io.Writer) (int, error)) error {
	if path == "" {
		return nil
	}
	var buf bytes.Buffer
	if _, err := write(&buf); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// complete offers command names and aliases for the first word.
func complete(line string) []string {
	if strings.ContainsAny(line, " \t") {
		return nil
	}
	prefix := strings.ToLower(line)
	words := append(command.Default.Words(), builtinWords...)
	sort.Strings(words)
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, w)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Piped reader
// ---------------------------------------------------------------------------

// ScanReader reads lines from any io.Reader and prints no prompt.
type ScanReader struct {
	sc *bufio.Scanner
}

// NewScanReader wraps in.
func NewScanReader(in io.Reader) *ScanReader {
	return &ScanReader{sc: bufio.NewScanner(in)}
}

func (r *ScanReader) Prompt(string) (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *ScanReader) AppendHistory(string) {}

func (r *ScanReader) Close() error { return nil }
