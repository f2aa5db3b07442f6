package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/jasktodo/internal/command"
	"github.com/jask/jasktodo/internal/output"
	"github.com/jask/jasktodo/internal/view"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		format string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "run <script.jsonc>",
		Short: "Apply a script of commands and print the resulting list",
		Long: `Starts from an empty list, applies every command line in the script and
prints the final view. The script is a JSON array of command lines; comments
and trailing commas are allowed. Use "-" to read the script from stdin.

Example script:

  [
    "add buy milk",
    "add walk the dog",
    "toggle 1", // done already
    "filter active",
  ]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.close()

			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			lines, err := readScript(cmd, args[0])
			if err != nil {
				return err
			}

			d := a.newDispatcher()
			if err := runScript(d, lines, cmd.ErrOrStderr(), strict); err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), f, a.cfg.UI.Title, view.Project(d.Store()))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&strict, "strict", false, "stop at the first line that fails to parse")
	return cmd
}

func readScript(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return command.LoadScript(r)
}

// runScript dispatches lines in order. Notices and errors go to errOut with
// their 1-based line index; only strict mode turns an error into a failure.
func runScript(d *command.Dispatcher, lines []string, errOut io.Writer, strict bool) error {
	for i, line := range lines {
		res, err := d.DispatchLine(line)
		if err != nil {
			if strict {
				return fmt.Errorf("script line %d: %w", i+1, err)
			}
			fmt.Fprintf(errOut, "%d: error: %v\n", i+1, err)
			continue
		}
		if res.Notice != "" {
			fmt.Fprintf(errOut, "%d: ! %s\n", i+1, res.Notice)
		}
	}
	return nil
}
