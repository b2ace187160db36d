package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"binsight/internal/cli"
	"binsight/internal/location"
	"binsight/internal/model"
)

func complaintsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complaints",
		Short: "Browse filed complaints",
	}

	cmd.AddCommand(listComplaintsCmd())
	cmd.AddCommand(showComplaintCmd())

	return cmd
}

func listComplaintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all complaints, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			complaints, err := store.GetComplaints(ctx)
			if err != nil {
				return fmt.Errorf("failed to get complaints: %w", err)
			}

			if len(complaints) == 0 {
				fmt.Println(cli.InfoStyle.Render("No complaints filed yet. Use 'binsight report' to file one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("Filed"),
				headerStyle.Render("Category"),
				headerStyle.Render("Points"),
				headerStyle.Render("Status"),
				headerStyle.Render("ID"))

			for _, c := range complaints {
				fmt.Fprintf(w, "%s\t%s %s\t%d\t%s\t%s\n",
					formatTimestamp(c.CreatedAt),
					c.WasteCategory.Info().Icon, c.WasteCategory.Info().Label,
					c.PointsAwarded,
					string(c.Status),
					c.ID)
			}

			return nil
		},
	}
}

func showComplaintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one complaint in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			complaint, err := store.GetComplaintByID(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get complaint: %w", err)
			}
			if complaint == nil {
				return fmt.Errorf("complaint %q not found", args[0])
			}

			fmt.Println(cli.BoxStyle.Render(renderComplaint(complaint)))
			return nil
		},
	}
}

func renderComplaint(c *model.Complaint) string {
	info := c.WasteCategory.Info()

	var b strings.Builder
	b.WriteString(cli.TitleStyle.Render(fmt.Sprintf("%s %s", info.Icon, info.Label)) + "\n")
	b.WriteString(fmt.Sprintf("ID:         %s\n", c.ID))
	b.WriteString(fmt.Sprintf("Image:      %s\n", c.ImageURI))
	b.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", c.Confidence*100))
	if c.WasteLabel != "" {
		b.WriteString(fmt.Sprintf("Label:      %s\n", c.WasteLabel))
	}
	if c.Location != nil {
		b.WriteString(fmt.Sprintf("Location:   %s\n", location.FormatCoordinates(c.Location.Latitude, c.Location.Longitude)))
		if c.Location.Address != "" {
			b.WriteString(fmt.Sprintf("Address:    %s\n", c.Location.Address))
		}
	}
	b.WriteString(fmt.Sprintf("Points:     %d\n", c.PointsAwarded))
	b.WriteString(fmt.Sprintf("Status:     %s\n", c.Status))
	b.WriteString(fmt.Sprintf("Filed:      %s\n", formatTimestamp(c.CreatedAt)))
	b.WriteString(fmt.Sprintf("Updated:    %s", formatTimestamp(c.UpdatedAt)))
	return b.String()
}
