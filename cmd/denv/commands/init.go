package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/denv/internal/app"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Generate a starter setup.py for a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			author, _ := cmd.Flags().GetString("author")

			return c.app.Init(cmd.Context(), app.InitOptions{
				Name:    args[0],
				Version: version,
				Author:  author,
			})
		},
	}
	cmd.Flags().String("version", "0.1.0", "Initial project version")
	cmd.Flags().String("author", "", "Project author")
	return cmd
}
