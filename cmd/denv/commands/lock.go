package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/denv/internal/app"
)

func (c *CLI) newLockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lock",
		Short: "Install the project and reconcile requirements.lock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pythonVersion, _ := cmd.Flags().GetString("python-version")
			platform, _ := cmd.Flags().GetString("platform")

			return c.app.Lock(cmd.Context(), app.LockOptions{
				PythonVersion: pythonVersion,
				SysPlatform:   platform,
			})
		},
	}
	cmd.Flags().String("python-version", "", "Marker expression attached to new records, e.g. \"< '3.8'\"")
	cmd.Flags().String("platform", "", "Platform marker attached to new records, e.g. win32")
	return cmd
}
