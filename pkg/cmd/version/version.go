package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/stark/internal/constants"
)

// Version is set at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = constants.Version

func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the stark version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stark %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
