package main

import (
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <image>",
		Short: "Classify a waste photo without filing a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := initEngine()
			if err != nil {
				return err
			}

			result, err := classifyWithSpinner(cmd.Context(), engine, args[0])
			if err != nil {
				return err
			}

			printClassification(result)
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}
