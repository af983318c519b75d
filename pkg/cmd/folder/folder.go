package folder

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/state"
)

func NewCmdFolder(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folder",
		Aliases: []string{"folders", "fo"},
		Short:   "Manage folders",
		Long: heredoc.Doc(`
			Add, rename, delete and list folders. The "all" and "calendar"
			folders are built in and cannot be renamed or deleted.
		`),
	}

	cmd.AddCommand(
		newCmdFolderList(s),
		newCmdFolderAdd(s),
		newCmdFolderRename(s),
		newCmdFolderDelete(s),
	)

	return cmd
}

func newCmdFolderList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			counts := make(map[string]int)
			for _, n := range s.Repo.Notes() {
				counts[n.FolderID]++
			}

			active := s.Repo.ActiveFolder()
			for _, f := range s.Repo.Folders() {
				marker := " "
				if f.ID == active {
					marker = "*"
				}

				count := counts[f.ID]
				switch f.ID {
				case notes.FolderAll:
					count = len(s.Repo.Notes())
				case notes.FolderCalendar:
					count = len(s.Repo.NotesOn(time.Now()))
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %-12s %-20s %d\n", marker, f.Glyph(), f.ID, f.Name, count)
			}
			return nil
		},
	}
}

func newCmdFolderAdd(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.Repo.CreateFolder(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added folder %q (%s)\n", f.Name, f.ID)
			return nil
		},
	}
}

func newCmdFolderRename(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [folder] [name]",
		Short: "Rename a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.Repo.FindFolder(args[0])
			if err != nil {
				return err
			}
			if notes.IsProtected(f.ID) {
				return fmt.Errorf("folder %q is built in and cannot be renamed", f.Name)
			}

			if !s.Repo.RenameFolder(f.ID, args[1]) {
				return notes.ErrEmptyFolderName
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", f.Name, s.Repo.FolderName(f.ID))
			return nil
		},
	}
}

func newCmdFolderDelete(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [folder]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a folder",
		Long: heredoc.Doc(`
			Delete a folder. Its notes are kept and still appear under All Notes.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := s.Repo.FindFolder(args[0])
			if err != nil {
				return err
			}
			if notes.IsProtected(f.ID) {
				return fmt.Errorf("folder %q is built in and cannot be deleted", f.Name)
			}

			if !yes {
				ok, err := confirm(fmt.Sprintf("Delete folder %q?", f.Name))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted")
					return nil
				}
			}

			s.Repo.DeleteFolder(f.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted folder %q\n", f.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirm(prompt string) (bool, error) {
	input := confirmation.New(prompt, confirmation.No)
	ok, err := input.RunPrompt()
	if err != nil {
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return ok, nil
}
