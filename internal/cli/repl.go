package cli

import (
	"github.com/spf13/cobra"

	"github.com/jask/jasktodo/internal/repl"
)

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Manage tasks from a line-oriented prompt",
		Long: `Reads one command per line and prints the list after every change.

Commands: add <text>, toggle <id>, delete <id>, clear-completed,
filter <all|active|completed>, ls, help and quit. On a terminal the prompt
has history and tab completion; piped input is read line by line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			session := repl.New(a.newDispatcher(), repl.Options{
				Title:  a.cfg.UI.Title,
				Out:    cmd.OutOrStdout(),
				Err:    cmd.ErrOrStderr(),
				Logger: a.logger,
			})
			reader := repl.NewLineReader(cmd.InOrStdin(), a.cfg.REPL.HistoryPath)
			a.logger.Info("starting repl")
			return session.Run(cmd.Context(), reader)
		},
	}
}
