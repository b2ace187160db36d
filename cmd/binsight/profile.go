package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"binsight/internal/cli"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update your profile",
	}

	cmd.AddCommand(showProfileCmd())
	cmd.AddCommand(setNameCmd())

	return cmd
}

func showProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the local profile",
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

			fmt.Println(cli.TitleStyle.Render(profile.Name))
			fmt.Printf("Points:  %d\n", profile.TotalPoints)
			fmt.Printf("Reports: %d\n", profile.TotalReports)
			fmt.Printf("Streak:  %d day(s)\n", profile.Streak)
			if profile.LastReportDate != nil {
				fmt.Printf("Last report: %s\n", formatTimestamp(*profile.LastReportDate))
			}
			fmt.Printf("Joined:  %s\n", formatTimestamp(profile.JoinedAt))
			return nil
		},
	}
}

func setNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-name <name>",
		Short: "Change the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Name validation is a presentation concern; the store only
			// requires non-empty.
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("name cannot be empty")
			}

			ctx := cmd.Context()
			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			profile, err := store.UpdateUserName(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to update name: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Name updated to " + profile.Name))
			return nil
		},
	}
}
