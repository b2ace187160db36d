package main

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"binsight/internal/cli"
	"binsight/internal/location"
	"binsight/internal/model"
	"binsight/internal/service"
)

func reportCmd() *cobra.Command {
	var (
		lat      float64
		lng      float64
		accuracy float64
		address  string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "report <image>",
		Short: "Classify a waste photo and file it as a complaint",
		Long: `Classify the photo, attach coordinates when provided, and persist the
report. Points and streak updates are applied immediately and shown.

Use --dry-run to see the classification without filing anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			imageRef := args[0]

			engine, err := initEngine()
			if err != nil {
				return err
			}

			result, err := classifyWithSpinner(ctx, engine, imageRef)
			if err != nil {
				return err
			}

			printClassification(result)

			loc := locationFromFlags(cmd, lat, lng, accuracy, address)
			if loc != nil {
				provider := location.NewStatic(loc)
				fix, provErr := provider.Current(ctx)
				if provErr == nil && fix != nil {
					fmt.Println(cli.SubtleStyle.Render("Location: " + describeLocation(fix)))
				}
				loc = fix
			}

			if dryRun {
				fmt.Println(cli.InfoStyle.Render("Dry run: nothing filed."))
				return nil
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			filed, err := store.FileComplaint(ctx, service.FileComplaintInput{
				ImageURI:    imageRef,
				Category:    result.Category,
				Confidence:  result.Confidence,
				Label:       result.Label,
				Description: result.Description,
				Location:    loc,
			})
			if err != nil {
				return fmt.Errorf("failed to file complaint: %w", err)
			}

			fmt.Println()
			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Complaint filed (%s)", filed.Complaint.ID)))
			fmt.Println(cli.BoldStyle.Render(fmt.Sprintf("+%d points", filed.PointsAwarded)))
			fmt.Printf("Total: %d points across %d reports, %d day streak\n",
				filed.Profile.TotalPoints, filed.Profile.TotalReports, filed.Profile.Streak)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude of the report")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude of the report")
	cmd.Flags().Float64Var(&accuracy, "accuracy", 0, "coordinate accuracy in meters")
	cmd.Flags().StringVar(&address, "address", "", "human-readable address")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "classify only, do not file")

	return cmd
}

// classifyWithSpinner runs classification with a terminal spinner; the
// vision round trip or the simulated fallback delay can take a few seconds.
func classifyWithSpinner(ctx context.Context, engine interface {
	Classify(ctx context.Context, imageRef string) (model.ClassificationResult, error)
}, imageRef string) (model.ClassificationResult, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Classifying image..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	result, err := engine.Classify(ctx, imageRef)
	close(done)
	_ = bar.Finish()
	return result, err
}

func printClassification(result model.ClassificationResult) {
	info := result.Category.Info()

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("%s %s", info.Icon, info.Label)))
	fmt.Printf("Confidence: %.0f%%\n", result.Confidence*100)
	if result.Label != "" && result.Label != info.Label {
		fmt.Printf("Detected: %s\n", result.Label)
	}
	fmt.Println(result.Description)
	fmt.Println(cli.InfoStyle.Render("Disposal: " + result.DisposalTip))
	if result.Recyclable {
		fmt.Println(cli.SuccessStyle.Render("♻ Recyclable"))
	}
}

// locationFromFlags builds a GeoLocation only when coordinates were
// explicitly provided; 0,0 is a valid coordinate, so presence is detected
// via flag changes rather than values.
func locationFromFlags(cmd *cobra.Command, lat, lng, accuracy float64, address string) *model.GeoLocation {
	if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
		return nil
	}

	loc := &model.GeoLocation{Latitude: lat, Longitude: lng, Address: address}
	if cmd.Flags().Changed("accuracy") {
		loc.Accuracy = &accuracy
	}
	return loc
}

func describeLocation(loc *model.GeoLocation) string {
	s := location.FormatCoordinates(loc.Latitude, loc.Longitude)
	if loc.Address != "" {
		s += " (" + loc.Address + ")"
	}
	return s
}
