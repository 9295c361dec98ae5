package cli

import (
	"github.com/rcliao/aiplayland-journey/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Print a visitor's memory record",
		Run:   runMemory,
	}

	addVisitorFlag(cmd)
	cmd.Flags().Bool("raw", false, "Print the record in its storage encoding")

	RootCmd.AddCommand(cmd)
}

func runMemory(cmd *cobra.Command, args []string) {
	raw, _ := cmd.Flags().GetBool("raw")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	mem := s.Load(cmd.Context(), visitorID)
	if raw {
		b, err := store.Encode(mem)
		if err != nil {
			exitErr("encode memory", err)
		}
		cmd.OutOrStdout().Write(append(b, '\n'))
		return
	}
	printJSON(cmd.OutOrStdout(), mem)
}
