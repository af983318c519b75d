package workspace

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/config"
	"github.com/Paintersrp/stark/internal/state"
)

func NewCmdWorkspace(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces",
		Long: heredoc.Doc(`
			Each workspace keeps its own notes, folders and settings. Set
			STARK_WORKSPACE to use a workspace for a single run.
		`),
	}

	cmd.AddCommand(
		newCmdWorkspaceList(s),
		newCmdWorkspaceSwitch(s),
		newCmdWorkspaceAdd(s),
		newCmdWorkspaceRemove(s),
	)

	return cmd
}

func newCmdWorkspaceList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured workspaces",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range s.Config.WorkspaceNames() {
				marker := " "
				if name == s.Config.CurrentWorkspace {
					marker = "*"
				}
				ws := s.Config.Workspaces[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %-7s %s\n", marker, name, ws.Storage.Backend, ws.DataDir)
			}

			return nil
		},
	}
}

func newCmdWorkspaceSwitch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch [name]",
		Short: "Switch the active workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(args[0])
			if target == "" {
				return fmt.Errorf("workspace name cannot be empty")
			}

			if err := s.Config.SwitchWorkspace(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Switched to workspace %q\n", target)
			return nil
		},
	}
	return cmd
}

func newCmdWorkspaceAdd(s *state.State) *cobra.Command {
	var name, dataDir, backend string
	var makeCurrent bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name = strings.TrimSpace(name)
			if name == "" {
				return fmt.Errorf("workspace name is required")
			}

			ws := cloneWorkspaceSettings(s.Config.MustWorkspace())
			ws.DataDir = strings.TrimSpace(dataDir)
			if backend != "" {
				ws.Storage.Backend = backend
			}

			if err := s.Config.AddWorkspace(name, ws, makeCurrent); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added workspace %q\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name of the new workspace")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Where the workspace stores notes (default under ~/.stark-notes/data)")
	cmd.Flags().StringVar(&backend, "backend", "", "Storage backend: file or sqlite (default from the current workspace)")
	cmd.Flags().BoolVar(&makeCurrent, "current", false, "Switch to the new workspace after creation")

	return cmd
}

func newCmdWorkspaceRemove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [name]",
		Short: "Remove an existing workspace",
		Long: heredoc.Doc(`
			Remove a workspace from the config. Its data directory is left on
			disk.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("workspace name cannot be empty")
			}

			if err := s.Config.RemoveWorkspace(name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed workspace %q\n", name)
			return nil
		},
	}

	return cmd
}

// cloneWorkspaceSettings copies display and storage preferences. The data
// directory and login are per workspace and start empty.
func cloneWorkspaceSettings(src *config.Workspace) *config.Workspace {
	if src == nil {
		return &config.Workspace{}
	}

	return &config.Workspace{
		Theme:     src.Theme,
		Storage:   src.Storage,
		LogLevel:  src.LogLevel,
		CardWidth: src.CardWidth,
	}
}
