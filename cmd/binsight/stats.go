package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"binsight/internal/cli"
	"binsight/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show reporting statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stats, err := store.GetStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			fmt.Println(cli.TitleStyle.Render("Your impact"))
			fmt.Printf("Reports: %d\n", stats.TotalReports)
			fmt.Printf("Points:  %d\n", stats.TotalPoints)
			fmt.Printf("Streak:  %d day(s)\n", stats.Streak)

			if len(stats.CategoryCounts) == 0 {
				return nil
			}

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			// Fixed category order keeps the table stable between runs.
			for _, info := range model.AllCategories() {
				count, ok := stats.CategoryCounts[info.Category]
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s %s\t%d\n", info.Icon, info.Label, count)
			}

			return nil
		},
	}
}
