package cli

import (
	"errors"
	"fmt"

	"github.com/rcliao/aiplayland-journey/internal/model"
	"github.com/rcliao/aiplayland-journey/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	visitorCmd := &cobra.Command{
		Use:   "visitor",
		Short: "Manage visitors",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a visitor with an empty memory",
		Run:   runVisitorNew,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List visitors, most recently active first",
		Run:   runVisitorList,
	}
	listCmd.Flags().IntP("limit", "l", 20, "Max results")
	listCmd.Flags().Bool("ids-only", false, "Only output visitor IDs")

	rmCmd := &cobra.Command{
		Use:   "rm [visitor-id]",
		Short: "Forget a visitor",
		Args:  cobra.ExactArgs(1),
		Run:   runVisitorRm,
	}

	visitorCmd.AddCommand(newCmd, listCmd, rmCmd)
	RootCmd.AddCommand(visitorCmd)
}

func runVisitorNew(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	id := store.NewVisitorID()
	if err := s.Save(cmd.Context(), id, model.VisitorMemory{}); err != nil {
		exitErr("create visitor", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"visitor_id":%q}`+"\n", id)
}

func runVisitorList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	visitors, err := s.ListVisitors(cmd.Context(), limit)
	if err != nil {
		exitErr("list visitors", err)
	}

	if idsOnly {
		for _, v := range visitors {
			fmt.Fprintln(cmd.OutOrStdout(), v.VisitorID)
		}
		return
	}

	if visitors == nil {
		visitors = []store.VisitorSummary{}
	}
	printJSON(cmd.OutOrStdout(), visitors)
}

func runVisitorRm(cmd *cobra.Command, args []string) {
	id := args[0]

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Delete(cmd.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			exitErr("rm", fmt.Errorf("visitor %q not found", id))
		}
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"visitor_id":%q}`+"\n", id)
}
