package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	historyLimit   int
	filterDay      string
	filterExercise string
)

// historyRow is one line of the history listing.
type historyRow struct {
	Session  models.Session
	Entries  int
	Sets     int
	VolumeKg float64
	PR       bool
}

// historyCmd lists saved sessions newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display session history with volume and PR markers, optionally filtered by day or exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		engine := newEngine()

		sessions := snap.Sessions
		if filterDay != "" {
			day, err := utils.ParseDate(filterDay, engine.Location())
			if err != nil {
				return err
			}
			sessions = sessionsOnDay(engine, snap, day)
		}

		var exerciseID models.ExerciseID
		if filterExercise != "" {
			ex, ok := snap.ExerciseByName(filterExercise)
			if !ok {
				return exerciseNotFound(filterExercise, snap.Exercises)
			}
			exerciseID = ex.ID
		}

		rows := buildHistory(snap, sessions, exerciseID)
		if historyLimit > 0 && len(rows) > historyLimit {
			rows = rows[:historyLimit]
		}
		if len(rows) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		for _, r := range rows {
			marker := "  "
			if r.PR {
				marker = yellow("★ ")
			}
			fmt.Printf("%s%-22s %-12s %-10s %s  %s\n",
				marker,
				utils.FormatDateTime(r.Session.Date, engine.Location()),
				plural(r.Entries, "exercise"),
				plural(r.Sets, "set"),
				utils.FormatKg(r.VolumeKg),
				faint(shortID(r.Session.ID)),
			)
		}
		return nil
	},
}

// buildHistory summarizes sessions newest first. A non-empty exerciseID keeps
// only sessions where that exercise was trained.
func buildHistory(snap *analytics.Snapshot, sessions []models.Session, exerciseID models.ExerciseID) []historyRow {
	prs := snap.SessionsWithPR()

	rows := make([]historyRow, 0, len(sessions))
	for _, s := range sessions {
		entries := snap.EntriesForSession(s.ID)
		if exerciseID != "" && !containsExercise(entries, exerciseID) {
			continue
		}
		row := historyRow{
			Session:  s,
			Entries:  len(entries),
			VolumeKg: snap.SessionVolume(s.ID),
			PR:       prs[s.ID],
		}
		for _, e := range entries {
			row.Sets += len(e.Sets)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Session.Date.After(rows[j].Session.Date)
	})
	return rows
}

func containsExercise(entries []models.Entry, id models.ExerciseID) bool {
	for _, e := range entries {
		if e.ExerciseID == id {
			return true
		}
	}
	return false
}

func shortID(id models.SessionID) string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of sessions to display (0 for all)")
	historyCmd.Flags().StringVarP(&filterDay, "day", "d", "", "Filter by day (YYYY-MM-DD)")
	historyCmd.Flags().StringVarP(&filterExercise, "exercise", "e", "", "Only sessions that include this exercise")
}
