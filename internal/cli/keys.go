package cli

import (
	"github.com/spf13/cobra"

	"github.com/jask/jasktodo/internal/config"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective keybindings as TOML",
		Long: `Prints every keybinding of the full-screen interface, with overrides from
the keybindings file applied. The output can be saved as that file and edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer a.close()

			keys, err := a.keyRegistry()
			if err != nil {
				return err
			}
			return config.EncodeKeybindings(cmd.OutOrStdout(), keys.ExportKeybindingConfig())
		},
	}
}
