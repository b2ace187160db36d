package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"binsight/internal/cli"
	"binsight/internal/leaderboard"
)

func leaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the points leaderboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.GetUserProfile(ctx)
			if err != nil {
				return fmt.Errorf("failed to get profile: %w", err)
			}

			entries := leaderboard.Build(profile)

			fmt.Println(cli.TitleStyle.Render("Leaderboard"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Rank"),
				headerStyle.Render("Name"),
				headerStyle.Render("Points"),
				headerStyle.Render("Reports"))

			for _, e := range entries {
				line := fmt.Sprintf("%d\t%s\t%d\t%d", e.Rank, e.Name, e.TotalPoints, e.TotalReports)
				if e.IsCurrentUser {
					line = cli.HighlightStyle.Render(line + "  ← you")
				}
				fmt.Fprintln(w, line)
			}

			return nil
		},
	}
}
