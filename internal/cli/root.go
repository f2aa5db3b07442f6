// Package cli wires configuration, logging and the front ends behind a cobra
// command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jask/jasktodo/internal/command"
	"github.com/jask/jasktodo/internal/config"
	"github.com/jask/jasktodo/internal/logging"
	"github.com/jask/jasktodo/internal/task"
	"github.com/jask/jasktodo/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app is the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	logger  *logging.Logger
	closers []io.Closer
}

// NewRootCmd returns the command tree. Each call is independent, so tests
// can build as many as they need.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

func newRoot() (*cobra.Command, *app) {
	a := &app{v: config.New(), logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "jasktodo",
		Short: "A small todo list for the terminal",
		Long: `jasktodo keeps a list of tasks for the current session.

Without a subcommand it opens the full-screen interface. Use "repl" for a
line-oriented prompt, or "run" to apply a script of commands and print the
result.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
		RunE: a.runTUI,
	}
	root.SetVersionTemplate("jasktodo version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is $XDG_CONFIG_HOME/jasktodo/config.toml)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-file", "", "append logs to this file")
	flags.String("filter", "", "initial filter: all, active or completed")
	a.bind(flags, "config", "config")
	a.bind(flags, "log-level", "log.level")
	a.bind(flags, "log-file", "log.path")
	a.bind(flags, "filter", "ui.default_filter")

	root.AddCommand(newREPLCmd(a), newRunCmd(a), newKeysCmd(a))
	return root, a
}

// bind makes a flag override the config key. Flags win over env and file.
func (a *app) bind(flags *pflag.FlagSet, name, key string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

// Execute runs the command tree with ctx and returns the first error.
func Execute(ctx context.Context) error {
	root, a := newRoot()
	defer a.close()
	return root.ExecuteContext(ctx)
}

// load reads configuration and builds the session logger. It runs before
// every command.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	out, err := a.logOutput(cmd)
	if err != nil {
		return err
	}
	a.logger = logging.New(out, cfg.Level()).With("session", uuid.NewString())
	a.logger.Debug("config loaded", "file", a.v.ConfigFileUsed(), "command", cmd.Name())
	return nil
}

// logOutput picks the log sink. The TUI owns the terminal, so it only logs
// to a file; other commands log to stderr unless a file is set.
func (a *app) logOutput(cmd *cobra.Command) (*log.Logger, error) {
	path := a.cfg.Log.Path
	interactive := cmd.Parent() == nil

	if path == "" {
		if interactive {
			return nil, nil
		}
		return log.New(cmd.ErrOrStderr(), "jasktodo ", log.LstdFlags), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if interactive {
		f, err := tea.LogToFile(path, "jasktodo")
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, f)
		return log.Default(), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	a.closers = append(a.closers, f)
	return log.New(f, "jasktodo ", log.LstdFlags), nil
}

func (a *app) close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
	a.closers = nil
}

// newDispatcher returns a dispatcher over a fresh store using the configured
// default filter.
func (a *app) newDispatcher() *command.Dispatcher {
	store := task.NewStore(task.WithFilter(a.cfg.Filter()))
	return command.NewDispatcher(store, a.logger)
}

// keyRegistry returns the default bindings with the user's overrides applied.
func (a *app) keyRegistry() (*tui.KeyRegistry, error) {
	keys := tui.NewKeyRegistry()
	items, err := config.LoadKeybindings(a.cfg.UI.KeybindingsPath)
	if err != nil {
		return nil, err
	}
	if err := keys.ApplyKeybindingConfig(items); err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.UI.KeybindingsPath, err)
	}
	return keys, nil
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	defer a.close()

	keys, err := a.keyRegistry()
	if err != nil {
		return err
	}
	model := tui.New(a.newDispatcher(), tui.Options{
		Title:       a.cfg.UI.Title,
		Placeholder: a.cfg.UI.Placeholder,
		Keys:        keys,
		Logger:      a.logger,
	})

	a.logger.Info("starting tui")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
