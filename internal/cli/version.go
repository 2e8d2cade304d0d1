package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/pkg/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationLenientConfig: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("catalogview %s\n", ver)
			cmd.Printf("commit: %s\n", version.GetGitCommit())
			cmd.Printf("built:  %s\n", version.GetBuildDate())
		},
	}
}
