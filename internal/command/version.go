package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"sift/internal/buildinfo"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, buildinfo.Graffiti)
			fmt.Fprintf(out, "%s: %s, %s\n",
				buildinfo.Info.Name(),
				buildinfo.Info.Tag(),
				buildinfo.Info.Time(),
			)
		},
	}
}
