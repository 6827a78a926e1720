package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/denv/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the exact set pinned by requirements.lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			develop, _ := cmd.Flags().GetBool("develop")
			return c.app.Install(cmd.Context(), app.InstallOptions{
				Develop: develop,
			})
		},
	}
	cmd.Flags().BoolP("develop", "d", false, "Also install the project in editable mode")
	return cmd
}
