package find

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/fzf"
	"github.com/Paintersrp/stark/internal/preview"
	"github.com/Paintersrp/stark/internal/state"
)

func NewCmdFind(s *state.State) *cobra.Command {
	var query string
	var width int

	cmd := &cobra.Command{
		Use:     "find",
		Aliases: []string{"f"},
		Short:   "Fuzzy find a note and print it.",
		Long: heredoc.Doc(`
			Search titles, folders and content with a fuzzy finder. The chosen
			note is printed as rendered markdown.
		`),
		Example: heredoc.Doc(`
			stark find
			stark find --query reactor
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			finder := fzf.NewFuzzyFinder(
				s.Repo.Notes(),
				s.Repo.FolderName,
				s.Workspace.Theme,
				"Find a note",
			)

			n, err := finder.Run(query)
			if errors.Is(err, fzf.ErrNoSelection) {
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), preview.New(s.Workspace.Theme).Render(n, width))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Initial search query")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "Width of the printed note")

	return cmd
}
