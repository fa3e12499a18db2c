package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display sqlforge version and the dialects it was built with.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sqlforge v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "SQL SELECT assembler for %d dialects\n", len(dialect.List()))
		},
	}
}
