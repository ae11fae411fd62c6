package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/atom/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "atom %s\n", buildInfo.Version)
		fmt.Fprintf(w, "  commit:  %s\n", buildInfo.Commit)
		fmt.Fprintf(w, "  built:   %s\n", buildInfo.BuildDate)
		fmt.Fprintf(w, "  go:      %s\n", buildInfo.GoVersion)
		fmt.Fprintf(w, "  repo:    %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
