package move

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/state"
)

func NewCmdMove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move [note-id] [folder]",
		Aliases: []string{"mv"},
		Short:   "Move a note to another folder.",
		Long: heredoc.Doc(`
			Move a note to another folder. The note id may be shortened to any
			unique prefix. Without a folder, pick one from a list.
		`),
		Example: heredoc.Doc(`
			stark move 3f9c2a1b work
			stark move 3f9c
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := s.Repo.Resolve(args[0])
			if err != nil {
				return err
			}

			var target notes.Folder
			if len(args) == 2 {
				target, err = s.Repo.FindFolder(args[1])
			} else {
				target, err = pickFolder(s.Repo, n)
			}
			if err != nil {
				return err
			}

			if target.ID == notes.FolderCalendar {
				return fmt.Errorf("notes cannot be moved into the calendar view")
			}

			s.Repo.MoveNote(n.ID, target.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to %s\n", n.DisplayTitle(), target.Name)
			return nil
		},
	}

	return cmd
}

func pickFolder(repo *notes.Repository, n notes.Note) (notes.Folder, error) {
	var choices []notes.Folder
	for _, f := range repo.Folders() {
		if f.ID == notes.FolderCalendar {
			continue
		}
		choices = append(choices, f)
	}

	sel := selection.New(fmt.Sprintf("Move %q to which folder?", n.DisplayTitle()), choices)
	sel.PageSize = 8
	sel.SelectedChoiceStyle = func(c *selection.Choice[notes.Folder]) string {
		return "» " + c.Value.Name
	}
	sel.UnselectedChoiceStyle = func(c *selection.Choice[notes.Folder]) string {
		return "  " + c.Value.Name
	}

	choice, err := sel.RunPrompt()
	if err != nil {
		return notes.Folder{}, fmt.Errorf("error selecting folder: %w", err)
	}
	return choice, nil
}
