package settings

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "Show or change the current workspace settings",
		Long: heredoc.Doc(`
			Show the settings of the current workspace, or change its theme and
			storage backend. Changing the backend does not copy existing notes.
		`),
		Example: heredoc.Doc(`
			stark settings
			stark settings theme light
			stark settings backend sqlite
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws := s.Config.MustWorkspace()
			out := cmd.OutOrStdout()

			user := ws.Username
			if user == "" {
				user = "-"
			}

			fmt.Fprintf(out, "workspace   %s\n", s.Config.CurrentWorkspace)
			fmt.Fprintf(out, "data_dir    %s\n", ws.DataDir)
			fmt.Fprintf(out, "backend     %s\n", ws.Storage.Backend)
			fmt.Fprintf(out, "theme       %s\n", ws.Theme)
			fmt.Fprintf(out, "log_level   %s\n", ws.LogLevel)
			fmt.Fprintf(out, "card_width  %d\n", ws.CardWidth)
			fmt.Fprintf(out, "username    %s\n", user)
			fmt.Fprintf(out, "config      %s\n", s.Config.GetConfigPath())
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "theme [dark|light]",
			Short:     "Set the dashboard theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"dark", "light"},
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.Config.ChangeTheme(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", s.Config.MustWorkspace().Theme)
				return nil
			},
		},
		&cobra.Command{
			Use:       "backend [file|sqlite]",
			Short:     "Set the storage backend",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"file", "sqlite"},
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := s.Config.ChangeBackend(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Storage backend set to %s\n", s.Config.MustWorkspace().Storage.Backend)
				return nil
			},
		},
	)

	return cmd
}
