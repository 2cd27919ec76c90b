package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/storage"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var dateStr string

var lookSessionCmd = &cobra.Command{
	Use:   "look-session [session-id]",
	Short: "Display a saved session by ID (a unique prefix is enough), or all sessions of a day using --date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && dateStr == "" {
			return fmt.Errorf("Provide a session ID or --date")
		}

		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}
		engine := newEngine()

		var sessions []models.Session
		if dateStr != "" {
			day, err := utils.ParseDate(dateStr, engine.Location())
			if err != nil {
				return err
			}
			sessions = sessionsOnDay(engine, snap, day)
			if len(sessions) == 0 {
				fmt.Println(color.New(color.FgMagenta).Sprint("No sessions found on that date."))
				return nil
			}
		} else {
			s, err := findSession(snap, args[0])
			if err != nil {
				return err
			}
			sessions = []models.Session{s}
		}

		for i, s := range sessions {
			if i > 0 {
				fmt.Println(strings.Repeat("=", 50))
			}
			printSavedSession(engine, snap, s)
		}
		return nil
	},
}

var deleteSessionCmd = &cobra.Command{
	Use:   "delete-session [session-id]",
	Short: "Delete a saved session with all its sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		snap, err := st.Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		s, err := findSession(snap, args[0])
		if err != nil {
			return err
		}

		if err := st.DeleteSession(cmd.Context(), s.ID); err != nil {
			return fmt.Errorf("Failed to delete session: %w", err)
		}

		fmt.Printf("✅ Session %s deleted\n", s.ID)
		return nil
	},
}

// findSession resolves a full session ID or a unique prefix of one.
func findSession(snap *analytics.Snapshot, id string) (models.Session, error) {
	if s, ok := snap.Session(models.SessionID(id)); ok {
		return s, nil
	}

	var matches []models.Session
	for _, s := range snap.Sessions {
		if strings.HasPrefix(string(s.ID), id) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return models.Session{}, fmt.Errorf("session %s: %w", id, storage.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Session{}, fmt.Errorf("session prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}

func sessionsOnDay(engine *analytics.Engine, snap *analytics.Snapshot, day time.Time) []models.Session {
	start := engine.StartOfDay(day)
	var out []models.Session
	for _, s := range snap.Sessions {
		if engine.StartOfDay(s.Date).Equal(start) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func printSavedSession(engine *analytics.Engine, snap *analytics.Snapshot, s models.Session) {
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	magenta := color.New(color.FgMagenta).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("%s %s\n", boldGreen("Session"), s.ID)
	fmt.Printf("  %s: %s\n", blue("Date"), utils.FormatDateTime(s.Date, engine.Location()))
	if s.Notes != "" {
		fmt.Printf("  %s: %s\n", magenta("Notes"), s.Notes)
	}

	entries := snap.EntriesForSession(s.ID)
	if len(entries) == 0 {
		fmt.Println(magenta("  No exercises recorded."))
		return
	}

	for _, entry := range entries {
		name := "(unknown exercise)"
		if ex, ok := snap.Exercise(entry.ExerciseID); ok {
			name = ex.Name
		}
		marker := ""
		if snap.IsPREntry(entry) {
			marker = " " + yellow("🏆 PR")
		}
		fmt.Printf("\n  %s%s\n", cyan(name), marker)
		fmt.Printf("     %-4s | %-12s | %-5s | %s\n", "Set", "Load", "Reps", "e1RM")
		fmt.Println("     " + strings.Repeat("─", 40))
		for i, set := range entry.Sets {
			fmt.Printf("     %-4s | %-12s | %-5d | %s", strconv.Itoa(i+1), utils.FormatKg(set.LoadKg), set.Reps,
				utils.FormatKg(analytics.E1RM(set.LoadKg, set.Reps)))
			if set.Note != "" {
				fmt.Printf("  %s", magenta(set.Note))
			}
			fmt.Println()
		}
		fmt.Printf("     %s %s\n", blue("Volume:"), utils.FormatKg(analytics.EntryVolume(entry)))
	}
	fmt.Printf("\n  %s %s\n", boldGreen("Session volume:"), utils.FormatKg(snap.SessionVolume(s.ID)))
}

func init() {
	rootCmd.AddCommand(lookSessionCmd)
	rootCmd.AddCommand(deleteSessionCmd)
	lookSessionCmd.Flags().StringVarP(&dateStr, "date", "d", "", "Show every session on this day (YYYY-MM-DD)")
}
