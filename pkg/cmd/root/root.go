package root

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/stark/internal/state"
	"github.com/Paintersrp/stark/internal/tui/dashboard"
	"github.com/Paintersrp/stark/pkg/cmd/export"
	"github.com/Paintersrp/stark/pkg/cmd/find"
	"github.com/Paintersrp/stark/pkg/cmd/folder"
	"github.com/Paintersrp/stark/pkg/cmd/list"
	"github.com/Paintersrp/stark/pkg/cmd/move"
	"github.com/Paintersrp/stark/pkg/cmd/new"
	"github.com/Paintersrp/stark/pkg/cmd/search"
	"github.com/Paintersrp/stark/pkg/cmd/settings"
	"github.com/Paintersrp/stark/pkg/cmd/version"
	"github.com/Paintersrp/stark/pkg/cmd/workspace"
)

// isTerminal reports whether the dashboard can take over the terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	listCmd := list.NewCmdList(s)

	cmd := &cobra.Command{
		Use:   "stark",
		Short: "A keyboard driven sticky note board for the terminal.",
		Long: heredoc.Doc(`
			Stark Notes keeps colored note cards on a board, grouped into
			folders and browsable by day.

			Run without arguments to open the board. When output is not a
			terminal the notes are listed instead.
		`),
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				listCmd.SetOut(cmd.OutOrStdout())
				return listCmd.RunE(listCmd, args)
			}
			return dashboard.Run(s)
		},
	}

	cmd.AddCommand(
		new.NewCmdNew(s),
		listCmd,
		find.NewCmdFind(s),
		search.NewCmdSearch(s),
		move.NewCmdMove(s),
		folder.NewCmdFolder(s),
		export.NewCmdExport(s),
		settings.NewCmdSettings(s),
		workspace.NewCmdWorkspace(s),
		version.NewCmdVersion(),
	)

	return cmd, nil
}
