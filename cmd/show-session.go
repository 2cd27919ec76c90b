package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show the session in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return err
		}

		// History is only used to flag sets that would set a record.
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			logrus.WithError(err).Warn("showing session without history")
			snap = analytics.NewSnapshot(nil, nil, nil)
		}

		engine := newEngine()
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Printf("%s %s\n", red("Session:"), utils.FormatDateTime(draft.Date, engine.Location()))
		if draft.TemplateName != "" {
			fmt.Printf("%s %s\n", cyan("Template:"), draft.TemplateName)
		}
		if draft.Notes != "" {
			fmt.Printf("%s %s\n", cyan("Notes:"), draft.Notes)
		}
		fmt.Println()

		if len(draft.Entries) == 0 {
			fmt.Println("No exercises yet. Log a set with 'gymlog add-set <exercise> -w <kg> -r <reps>'.")
			return nil
		}

		tableIndent := "   "
		widths := []int{6, 14, 6, 14, 20}

		var total float64
		for exIdx, entry := range draft.Entries {
			best := snap.AllTimeMaxLoad(entry.ExerciseID)
			fmt.Printf("%s %s\n", cyan(fmt.Sprintf("%d.", exIdx+1)), yellow(entry.ExerciseName))
			if best > 0 {
				fmt.Printf("   %s %s (e1RM %s)\n", cyan("All-time best:"),
					utils.FormatKg(best), utils.FormatKg(snap.AllTimeMaxE1RM(entry.ExerciseID)))
			}
			if len(entry.Sets) == 0 {
				fmt.Println("   No sets logged")
				fmt.Println()
				continue
			}

			fmt.Println(tableIndent + tableRule(widths, "┌", "┬", "┐"))
			fmt.Println(tableIndent + tableRow(widths, "Set", "Load", "Reps", "e1RM", "Note"))
			fmt.Println(tableIndent + tableRule(widths, "├", "┼", "┤"))
			for setIdx, set := range entry.Sets {
				line := tableIndent + tableRow(widths,
					strconv.Itoa(setIdx+1),
					utils.FormatKg(set.LoadKg),
					strconv.Itoa(set.Reps),
					utils.FormatKg(analytics.E1RM(set.LoadKg, set.Reps)),
					set.Note,
				)
				if best > 0 && set.LoadKg > best+analytics.PRTolerance {
					line += " " + green("★ new best")
				}
				fmt.Println(line)
			}
			fmt.Println(tableIndent + tableRule(widths, "└", "┴", "┘"))

			vol := analytics.EntryVolume(draftEntryAsEntry(entry))
			total += vol
			fmt.Printf("   %s %s\n\n", cyan("Volume:"), utils.FormatKg(vol))
		}

		fmt.Printf("%s %s\n", red("Session volume:"), utils.FormatKg(total))
		return nil
	},
}

func draftEntryAsEntry(d models.DraftEntry) models.Entry {
	entry := models.Entry{ExerciseID: d.ExerciseID}
	for _, s := range d.Sets {
		entry.Sets = append(entry.Sets, models.Set{Reps: s.Reps, LoadKg: s.LoadKg, Note: s.Note})
	}
	return entry
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
