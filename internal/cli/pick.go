package cli

import (
	"github.com/rcliao/aiplayland-journey/internal/journey"
	"github.com/rcliao/aiplayland-journey/internal/model"
	"github.com/spf13/cobra"
)

type pickResult struct {
	Mode string `json:"mode"`
	From string `json:"from"`
	Next string `json:"next,omitempty"`
	// Related is set for choose.
	Related []model.Problem `json:"related,omitempty"`
}

func init() {
	guideCmd := &cobra.Command{
		Use:   "guide",
		Short: "Record a guided use and print the best next problem",
		Run:   runPick,
	}
	chooseCmd := &cobra.Command{
		Use:   "choose",
		Short: "Record a choose use and print related problems",
		Run:   runPick,
	}
	surpriseCmd := &cobra.Command{
		Use:   "surprise",
		Short: "Record a surprise use and print a problem from another archetype",
		Run:   runPick,
	}

	for _, cmd := range []*cobra.Command{guideCmd, chooseCmd, surpriseCmd} {
		addVisitorFlag(cmd)
		cmd.Flags().String("from", "", "Current problem slug")
		RootCmd.AddCommand(cmd)
	}
}

func runPick(cmd *cobra.Command, args []string) {
	from, _ := cmd.Flags().GetString("from")

	nav, s := openNavigator()
	defer s.Close()

	ctx := cmd.Context()
	res := pickResult{Mode: cmd.Name(), From: from}
	switch cmd.Name() {
	case journey.ModeGuide:
		res.Next = nav.Guide(ctx, visitorID, from)
	case journey.ModeChoose:
		res.Related = nav.Choose(ctx, visitorID, from)
	case journey.ModeSurprise:
		res.Next = nav.Surprise(ctx, visitorID, from)
	}

	printJSON(cmd.OutOrStdout(), res)
}
