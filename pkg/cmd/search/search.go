package search

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/search"
	"github.com/Paintersrp/stark/internal/state"
	"github.com/Paintersrp/stark/pkg/cmd/list"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:     "search [term]",
		Aliases: []string{"grep"},
		Short:   "Print notes whose title or content contains a term.",
		Long: heredoc.Doc(`
			Search note titles and content without opening a finder. Title
			matches are listed first, each with a short snippet.
		`),
		Example: heredoc.Doc(`
			stark search reactor
			stark search "board meeting" --folder work
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := search.Query{Term: strings.Join(args, " ")}
			if strings.TrimSpace(folder) != "" {
				f, err := s.Repo.FindFolder(folder)
				if err != nil {
					return err
				}
				q.Folder = f.ID
			}

			results := search.NewIndex(s.Repo.Notes()).Search(q)
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No notes match %q\n", q.Term)
				return nil
			}

			for _, r := range results {
				fmt.Fprintf(out, "%-8s  %s\n", list.ShortID(r.NoteID), r.Title)
				if r.Snippet != "" {
					fmt.Fprintf(out, "          %s\n", r.Snippet)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Only search this folder")

	return cmd
}
