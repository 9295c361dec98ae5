package cli

import (
	"github.com/rcliao/aiplayland-journey/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	lanesCmd := &cobra.Command{
		Use:   "lanes",
		Short: "Show lane content in display order",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(cmd.OutOrStdout(), catalog.Lanes())
		},
	}

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "Show modes and their suggested problems",
		Run: func(cmd *cobra.Command, args []string) {
			printJSON(cmd.OutOrStdout(), catalog.Modes())
		},
	}

	RootCmd.AddCommand(lanesCmd, modesCmd)
}
