package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump <name> <version>",
		Short: "Rewrite the pinned version of one record in requirements.lock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			git, _ := cmd.Flags().GetBool("git")
			return c.app.Bump(cmd.Context(), args[0], args[1], git)
		},
	}
	cmd.Flags().BoolP("git", "g", false, "Bump the git ref instead of the version")
	return cmd
}
