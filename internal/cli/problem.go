package cli

import (
	"fmt"

	"github.com/rcliao/aiplayland-journey/internal/journey"
	"github.com/rcliao/aiplayland-journey/internal/model"
	"github.com/spf13/cobra"
)

type problemDetail struct {
	model.Problem
	Category  model.PoolCategory `json:"category"`
	UpsellURL string             `json:"upsell_url,omitempty"`
	Known     bool               `json:"known"`
}

func init() {
	problemCmd := &cobra.Command{
		Use:   "problem",
		Short: "Browse the problem catalog",
	}

	getCmd := &cobra.Command{
		Use:   "get [slug]",
		Short: "Show one problem (unknown slugs resolve to a placeholder)",
		Args:  cobra.ExactArgs(1),
		Run:   runProblemGet,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List problems by slug",
		Run:   runProblemList,
	}
	listCmd.Flags().String("lane", "", "Filter by lane: work, business, school, home, curiosity")
	listCmd.Flags().Bool("slugs-only", false, "Only output slugs")

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find problems whose slug or label contains query",
		Args:  cobra.ExactArgs(1),
		Run:   runProblemSearch,
	}

	problemCmd.AddCommand(getCmd, listCmd, searchCmd)
	RootCmd.AddCommand(problemCmd)
}

func runProblemGet(cmd *cobra.Command, args []string) {
	c, err := loadCatalog()
	if err != nil {
		exitErr("load catalog", err)
	}

	p := c.BySlug(args[0])
	_, known := c.Lookup(args[0])
	detail := problemDetail{Problem: p, Category: p.PoolCategory(), Known: known}
	if url, ok := journey.New(c).UpsellURL(p); ok {
		detail.UpsellURL = url
	}
	printJSON(cmd.OutOrStdout(), detail)
}

func runProblemList(cmd *cobra.Command, args []string) {
	lane, _ := cmd.Flags().GetString("lane")
	slugsOnly, _ := cmd.Flags().GetBool("slugs-only")

	c, err := loadCatalog()
	if err != nil {
		exitErr("load catalog", err)
	}

	problems := c.Sorted()
	if lane != "" {
		if !model.ValidLanes[model.Lane(lane)] {
			exitErr("list", fmt.Errorf("unknown lane %q", lane))
		}
		problems = c.ByLane(model.Lane(lane))
	}
	printProblems(cmd, problems, slugsOnly)
}

func runProblemSearch(cmd *cobra.Command, args []string) {
	c, err := loadCatalog()
	if err != nil {
		exitErr("load catalog", err)
	}
	printProblems(cmd, c.Search(args[0]), false)
}

func printProblems(cmd *cobra.Command, problems []model.Problem, slugsOnly bool) {
	if slugsOnly {
		for _, p := range problems {
			fmt.Fprintln(cmd.OutOrStdout(), p.Slug)
		}
		return
	}
	if problems == nil {
		problems = []model.Problem{}
	}
	printJSON(cmd.OutOrStdout(), problems)
}
