package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	trendMetric string
	trendRange  string
	trendWidth  int
)

var trendCmd = &cobra.Command{
	Use:   "trend [exercise-name]",
	Short: "Chart the daily best weight or estimated 1RM of an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metric, err := analytics.ParseMetric(trendMetric)
		if err != nil {
			return err
		}
		rng, err := analytics.ParseRange(trendRange)
		if err != nil {
			return err
		}

		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		engine := newEngine()

		ex, ok := snap.ExerciseByName(args[0])
		if !ok {
			return exerciseNotFound(args[0], snap.Exercises)
		}

		points := engine.FilterRange(engine.Series(snap, ex.ID, metric), rng)

		allTime := snap.AllTimeMaxLoad(ex.ID)
		if metric == analytics.MetricMaxE1RM {
			allTime = snap.AllTimeMaxE1RM(ex.ID)
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		fmt.Printf("%s · %s · %s\n\n", boldGreen(ex.Name), metric.Title(), rng.Caption())
		if len(points) == 0 {
			fmt.Println(magenta("  No data in this range."))
		} else {
			for _, line := range renderBars(points, trendWidth, "Jan 02") {
				fmt.Println("  " + line)
			}
		}
		fmt.Println()
		fmt.Printf("  %s: %s\n", boldCyan("Best in range"), utils.FormatKg(analytics.RangeBest(points)))
		fmt.Printf("  %s: %s\n", boldCyan("All-time max"), utils.FormatKg(allTime))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trendCmd)
	trendCmd.Flags().StringVarP(&trendMetric, "metric", "m", "load", "load or e1rm")
	trendCmd.Flags().StringVarP(&trendRange, "range", "r", "all", "4w, 3m or all")
	trendCmd.Flags().IntVar(&trendWidth, "width", 30, "Width of the bars")
}
