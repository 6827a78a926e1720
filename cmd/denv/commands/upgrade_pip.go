package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUpgradePipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade-pip",
		Short: "Upgrade pip inside the project's virtualenv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.UpgradePip(cmd.Context())
		},
	}
}
