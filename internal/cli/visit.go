package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "visit [slug]",
		Short: "Record a problem page view",
		Long:  "Record that a visitor opened a problem page. Unknown slugs resolve to a placeholder problem.",
		Args:  cobra.ExactArgs(1),
		Run:   runVisit,
	}

	addVisitorFlag(cmd)

	RootCmd.AddCommand(cmd)
}

func runVisit(cmd *cobra.Command, args []string) {
	nav, s := openNavigator()
	defer s.Close()

	view := nav.Visit(cmd.Context(), visitorID, args[0])
	printJSON(cmd.OutOrStdout(), view)
}
