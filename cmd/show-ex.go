package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	limitSessions int
	historyOnly   bool
)

var showExCmd = &cobra.Command{
	Use:   "show-ex [exercise-name]",
	Short: "Display all-time records and recent history for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		engine := newEngine()
		loc := engine.Location()

		ex, ok := snap.ExerciseByName(args[0])
		if !ok {
			return exerciseNotFound(args[0], snap.Exercises)
		}
		summary, _ := snap.Summary(ex.ID)

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		blue := color.New(color.FgBlue).SprintFunc()

		if !historyOnly {
			fmt.Println(boldGreen("Exercise Information:"))
			fmt.Printf("  %s: %s\n", boldCyan("Name"), ex.Name)
			fmt.Printf("  %s: %s\n", boldCyan("Kind"), ex.Kind.DisplayName())
			fmt.Printf("  %s: %s\n", boldCyan("Created At"), utils.FormatDay(ex.CreatedAt, loc))
			if summary.Entries == 0 {
				fmt.Println(magenta("  Never performed."))
				return nil
			}
			fmt.Printf("  %s: %s\n", boldCyan("Max weight"), utils.FormatKg(summary.MaxLoadKg))
			fmt.Printf("  %s: %s\n", boldCyan("Estimated 1RM"), utils.FormatKg(summary.MaxE1RM))
			if summary.BestSet != nil {
				fmt.Printf("  %s: %s × %d\n", boldCyan("Best set"),
					utils.FormatKg(summary.BestSet.LoadKg), summary.BestSet.Reps)
			}
			fmt.Printf("  %s: %s, %s, %s\n", boldCyan("Logged"),
				plural(summary.Entries, "entry"), plural(summary.Sets, "set"), utils.FormatKg(summary.VolumeKg))
			fmt.Printf("  %s: %d\n", boldCyan("PR entries"), summary.PREntries)
			if !summary.LastPerformed.IsZero() {
				fmt.Printf("  %s: %s\n", boldCyan("Last performed"), utils.FormatDay(summary.LastPerformed, loc))
			}
			fmt.Println()
		}

		entries := datedEntries(snap, ex.ID)
		fmt.Printf("%s %s:\n", boldGreen("History for"), ex.Name)
		if len(entries) == 0 {
			fmt.Println(magenta("  No training sessions found."))
			return nil
		}
		if limitSessions > 0 && len(entries) > limitSessions {
			entries = entries[:limitSessions]
		}

		for _, de := range entries {
			marker := ""
			if snap.IsPREntry(de.entry) {
				marker = " " + yellow("🏆 PR")
			}
			fmt.Printf("\n  %s%s\n", blue(utils.FormatDateTime(de.session.Date, loc)), marker)
			fmt.Printf("      %-4s | %-12s | %-5s\n", "Set", "Weight", "Reps")
			fmt.Println("      " + strings.Repeat("─", 30))
			for j, set := range de.entry.Sets {
				fmt.Printf("      %-4d | %-12s | %-5d\n", j+1, utils.FormatKg(set.LoadKg), set.Reps)
			}
		}
		return nil
	},
}

type datedEntry struct {
	session models.Session
	entry   models.Entry
}

// datedEntries pairs each session-bound entry of the exercise with its
// session, newest first.
func datedEntries(snap *analytics.Snapshot, id models.ExerciseID) []datedEntry {
	var out []datedEntry
	for _, e := range snap.EntriesFor(id) {
		if e.Detached() {
			continue
		}
		s, ok := snap.Session(e.SessionID)
		if !ok {
			continue
		}
		out = append(out, datedEntry{session: s, entry: e})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].session.Date.After(out[j].session.Date)
	})
	return out
}

func init() {
	rootCmd.AddCommand(showExCmd)
	showExCmd.Flags().IntVarP(&limitSessions, "limit", "l", 5, "Number of sessions to display")
	showExCmd.Flags().BoolVarP(&historyOnly, "history-only", "H", false, "Display only history without the summary")
}
