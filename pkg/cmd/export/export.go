package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/export"
	"github.com/Paintersrp/stark/internal/state"
)

func NewCmdExport(s *state.State) *cobra.Command {
	var format, out, folder string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write notes to markdown or HTML files.",
		Long: heredoc.Doc(`
			Write one file per note into --out. Markdown files carry the title,
			date and content. HTML files are rendered with GitHub flavored
			markdown.
		`),
		Example: heredoc.Doc(`
			stark export --out ./backup
			stark export --format html --folder work --out ./site
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exporter, err := export.New(strings.ToLower(format))
			if err != nil {
				return err
			}

			list := s.Repo.Notes()
			if strings.TrimSpace(folder) != "" {
				f, err := s.Repo.FindFolder(folder)
				if err != nil {
					return err
				}
				list = s.Repo.Filter(f.ID, time.Now())
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes to export")
				return nil
			}

			paths, err := exporter.WriteAll(list, out)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", len(paths), plural(len(paths)), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", export.FormatMarkdown, "Output format: md or html")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "Directory to write into")
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Only export this folder's view")

	return cmd
}

func plural(n int) string {
	if n == 1 {
		return "note"
	}
	return "notes"
}
