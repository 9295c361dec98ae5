package cli

import (
	"github.com/rcliao/aiplayland-journey/internal/journey"
	"github.com/rcliao/aiplayland-journey/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show scored guided candidates without recording anything",
		Run:   runExplain,
	}

	addVisitorFlag(cmd)
	cmd.Flags().String("from", "", "Current problem slug")
	cmd.Flags().IntP("limit", "l", 10, "Max candidates (0 for all)")

	RootCmd.AddCommand(cmd)
}

func runExplain(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")
	limit, _ := cmd.Flags().GetInt("limit")

	nav, s := openNavigator()
	defer s.Close()

	mem := nav.Memory(cmd.Context(), visitorID)
	rec := nav.Recommender()
	ranked := rec.Ranked(from, mem)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []journey.ScoredProblem{}
	}

	out := struct {
		From       string                  `json:"from"`
		Guided     string                  `json:"guided"`
		Memory     model.VisitorMemory     `json:"memory"`
		Candidates []journey.ScoredProblem `json:"candidates"`
	}{
		From:       from,
		Guided:     rec.Guided(from, mem),
		Memory:     mem,
		Candidates: ranked,
	}
	printJSON(cmd.OutOrStdout(), out)
}
