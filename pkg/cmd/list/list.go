package list

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/notes"
	"github.com/Paintersrp/stark/internal/state"
)

func NewCmdList(s *state.State) *cobra.Command {
	var folder, date string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "Print the notes in a folder view.",
		Long: heredoc.Doc(`
			Print the notes visible in a folder view, in board order.

			The "all" folder lists every note. The "calendar" folder lists the
			notes dated on --date, which defaults to today.
		`),
		Example: heredoc.Doc(`
			stark list
			stark list --folder work
			stark list --folder calendar --date "last friday"
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := ParseDay(date, time.Now())
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

			Print(cmd.OutOrStdout(), s.Repo, s.Repo.Filter(folderID, day))
			return nil
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Folder id or name to list (default all)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day for the calendar view (default today)")

	return cmd
}

// ParseDay reads a user supplied date, falling back to now when empty.
func ParseDay(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now, nil
	}

	t, err := dateparse.ParseLocal(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse date %q: %w", value, err)
	}
	return t, nil
}

// Print writes one line per note: short id, date, folder and title.
func Print(w io.Writer, repo *notes.Repository, list []notes.Note) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No notes in this view")
		return
	}

	for _, n := range list {
		fmt.Fprintf(
			w,
			"%-8s  %s  %-12s  %s\n",
			ShortID(n.ID),
			n.Date.Local().Format("2006-01-02"),
			repo.FolderName(n.FolderID),
			n.DisplayTitle(),
		)
	}
}

func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
