package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/analytics"
	"github.com/misterclayt0n/gymlog/internal/utils"
)

const noComparison = "—"

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value any) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// tableRule draws a horizontal table border for the given column widths.
func tableRule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return left + strings.Join(parts, mid) + right
}

func tableRow(widths []int, cells ...string) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(&sb, "%-*s│", w, cell)
	}
	return sb.String()
}

// formatDeltaPercent renders the week-over-week change, or a dash when there
// is nothing to compare against.
func formatDeltaPercent(pct float64, ok bool) string {
	if !ok {
		return noComparison
	}
	return fmt.Sprintf("%+.0f%%", pct)
}

func formatDeltaKg(kg float64) string {
	sign := "+"
	if kg < 0 {
		sign = "-"
	}
	return sign + utils.FormatKg(math.Abs(kg))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// renderBars draws one horizontal bar per point, scaled so the largest value
// fills width.
func renderBars(points []analytics.Point, width int, dayLayout string) []string {
	if width < 1 {
		width = 1
	}
	best := analytics.RangeBest(points)
	lines := make([]string, 0, len(points))
	for _, p := range points {
		n := 0
		if best > 0 {
			n = int(math.Round(p.Value / best * float64(width)))
		}
		if n < 1 && p.Value > 0 {
			n = 1
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			p.Day.Format(dayLayout), strings.Repeat("█", n)+strings.Repeat(" ", width-n), utils.FormatKg(p.Value)))
	}
	return lines
}
