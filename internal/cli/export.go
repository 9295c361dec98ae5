package cli

import (
	"github.com/rcliao/aiplayland-journey/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export visitor memories as JSON",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.ExportAll(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	if records == nil {
		records = []model.VisitorRecord{}
	}

	printJSON(cmd.OutOrStdout(), records)
}
