package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show this week against last week, PRs, week streaks and the most improved lift",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		engine := newEngine()
		summary := engine.WeeklySummary(snap)

		printBoxedHeader("STATUS")

		fmt.Printf("%s %s\n", color.New(color.FgGreen, color.Bold).Sprint("Week of"),
			utils.FormatDay(summary.WeekStart, engine.Location()))
		printMetric("Sessions", fmt.Sprintf("%d (last week %d)", summary.ThisWeek.Sessions, summary.LastWeek.Sessions))
		printMetric("Sets", fmt.Sprintf("%d (last week %d)", summary.ThisWeek.Sets, summary.LastWeek.Sets))
		printMetric("Volume", fmt.Sprintf("%s (last week %s)",
			utils.FormatKg(summary.ThisWeek.VolumeKg), utils.FormatKg(summary.LastWeek.VolumeKg)))

		pct, ok := summary.VolumeDeltaPercent()
		deltaColor := color.New(color.FgGreen)
		if ok && pct < 0 {
			deltaColor = color.New(color.FgRed)
		}
		printMetric("Change", deltaColor.Sprintf("%s (%s)", formatDeltaPercent(pct, ok), formatDeltaKg(summary.VolumeDeltaKg)))
		printMetric("PRs this week", summary.PRCount)
		fmt.Println()

		printMetric("Current streak", plural(engine.CurrentStreak(snap), "week"))
		printMetric("Longest streak", plural(engine.LongestStreak(snap), "week"))

		if imp, ok := engine.MostImproved(snap); ok {
			printMetric("Most improved", fmt.Sprintf("%s %s → %s (%s)",
				imp.ExerciseName, utils.FormatKg(imp.Prev30), utils.FormatKg(imp.Best30), formatDeltaKg(imp.Delta)))
		} else {
			printMetric("Most improved", noComparison)
		}
		fmt.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
