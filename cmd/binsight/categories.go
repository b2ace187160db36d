package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"binsight/internal/cli"
	"binsight/internal/gamify"
	"binsight/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Browse waste categories and disposal guidance",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(categoryInfoCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all waste categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Recyclable"),
				headerStyle.Render("Base points"),
				headerStyle.Render("Description"))

			for _, info := range model.AllCategories() {
				recyclable := "no"
				if info.Recyclable {
					recyclable = "yes"
				}
				fmt.Fprintf(w, "%s %s\t%s\t%d\t%s\n",
					info.Icon, info.Label, recyclable,
					gamify.BasePoints(info.Category), info.Description)
			}

			return nil
		},
	}
}

func categoryInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <category>",
		Short: "Show disposal guidance for one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			category := model.ParseCategory(args[0])
			if category == model.CategoryUnknown && args[0] != string(model.CategoryUnknown) {
				return fmt.Errorf("unknown category %q; see 'binsight categories list'", args[0])
			}

			info := category.Info()
			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s", info.Icon, info.Label)))
			fmt.Println(info.Description)
			fmt.Println(cli.InfoStyle.Render("Disposal: " + info.DisposalTip))
			if info.Recyclable {
				fmt.Println(cli.SuccessStyle.Render("♻ Recyclable"))
			}
			fmt.Printf("Base points per report: %d\n", gamify.BasePoints(category))
			return nil
		},
	}
}
