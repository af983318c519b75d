package new

import (
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/state"
	"github.com/Paintersrp/stark/pkg/cmd/list"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var folder, date string

	cmd := &cobra.Command{
		Use:     "new [title] [content]",
		Aliases: []string{"n"},
		Short:   "Create a note.",
		Long: heredoc.Doc(`
			Create a note at the front of the board.

			The note gets a random card color. Without a title it is saved as
			"Untitled Note".
		`),
		Example: heredoc.Doc(`
			stark new "Arc reactor" "Palladium core is failing"
			stark new standup --folder work --date tomorrow
		`),
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := list.ParseDay(date, time.Now())
			if err != nil {
				return err
			}

			folderID := notes.FolderAll
			if strings.TrimSpace(folder) != "" {
				f, err := s.Repo.FindFolder(folder)
				if err != nil {
					return err
				}
				folderID = f.ID
			}

			n := s.Repo.CreateNote(folderID, day)
			// nothing opens an editor here
			s.Repo.ConsumePendingEdit()

			if len(args) > 0 {
				n.Title = args[0]
			}
			if len(args) > 1 {
				n.Content = args[1]
			}
			n = n.Normalized()
			s.Repo.UpdateNote(n)

			fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%s)\n", n.DisplayTitle(), list.ShortID(n.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Folder id or name for the note (default all)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date of the note (default today)")

	return cmd
}
