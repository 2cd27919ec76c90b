package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to enable verbose session details.
var details bool

// calendarCmd prints a Monday-first month grid. Training days are green and
// days with a PR are yellow.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of training days, highlighting days with PRs",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := newEngine()
		now := engine.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			return err
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, engine.Location())
		byDay := sessionsByMonthDay(engine, snap, firstOfMonth)
		prs := snap.SessionsWithPR()

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()

		fmt.Println(centerText(fmt.Sprintf("%s %d", month.String(), year), 20))
		fmt.Println("Mo Tu We Th Fr Sa Su")

		weekday := (int(firstOfMonth.Weekday()) + 6) % 7
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		lastDay := firstOfMonth.AddDate(0, 1, -1).Day()
		for day := 1; day <= lastDay; day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if sessions, ok := byDay[day]; ok {
				dayStr = green(dayStr)
				for _, s := range sessions {
					if prs[s.ID] {
						dayStr = yellow(fmt.Sprintf("%2d", day))
						break
					}
				}
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Printf("Legend: %s training  %s PR\n", green("██"), yellow("██"))
		fmt.Printf("Sessions this month: %d\n", countSessions(byDay))

		if details {
			fmt.Println("\nSession Details:")
			var days []int
			for d := range byDay {
				days = append(days, d)
			}
			sort.Ints(days)
			for _, day := range days {
				dayDate := time.Date(year, month, day, 0, 0, 0, 0, engine.Location())
				fmt.Printf("\n%s:\n", dayDate.Format("Mon, 02 Jan 2006"))
				for _, s := range byDay[day] {
					fmt.Printf("  Session %s at %s, %s\n",
						shortID(s.ID), s.Date.In(engine.Location()).Format("15:04"),
						utils.FormatKg(snap.SessionVolume(s.ID)))
				}
			}
		}

		return nil
	},
}

// sessionsByMonthDay groups the sessions of the month starting at first by
// local day of month.
func sessionsByMonthDay(engine *analytics.Engine, snap *analytics.Snapshot, first time.Time) map[int][]models.Session {
	next := first.AddDate(0, 1, 0)
	byDay := make(map[int][]models.Session)
	for _, s := range snap.Sessions {
		day := engine.StartOfDay(s.Date)
		if day.Before(first) || !day.Before(next) {
			continue
		}
		byDay[day.Day()] = append(byDay[day.Day()], s)
	}
	for _, sessions := range byDay {
		sort.Slice(sessions, func(i, j int) bool { return sessions[i].Date.Before(sessions[j].Date) })
	}
	return byDay
}

func countSessions(byDay map[int][]models.Session) int {
	n := 0
	for _, s := range byDay {
		n += len(s)
	}
	return n
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "d", false, "Print additional session details")
}
