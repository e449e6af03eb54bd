// ABOUTME: CLI command printing a month grid with recorded days marked.
// ABOUTME: Defaults to the current month; accepts YYYY-MM.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar [YYYY-MM]",
	Aliases: []string{"cal"},
	Short:   "Show a month calendar of recorded days",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()

		if len(args) == 1 {
			t, err := time.Parse("2006-01", args[0])
			if err != nil {
				return fmt.Errorf("invalid month %q: want YYYY-MM", args[0])
			}
			year, month = t.Year(), t.Month()
		}

		recorded, err := trk.RecordedDays(year, month)
		if err != nil {
			return fmt.Errorf("failed to load recorded days: %w", err)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		green := color.New(color.FgGreen)

		fmt.Println(bold.Sprintf("%d年%d月", year, int(month)))
		fmt.Println(faint.Sprint(" 日  月  火  水  木  金  土"))

		first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		daysInMonth := first.AddDate(0, 1, -1).Day()
		today := trk.Today()

		var row []string
		for i := 0; i < int(first.Weekday()); i++ {
			row = append(row, "   ")
		}
		for day := 1; day <= daysInMonth; day++ {
			dayKey := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
			cell := fmt.Sprintf("%3d", day)
			switch {
			case dayKey == today:
				cell = bold.Sprint(cell)
			case recorded[dayKey]:
				cell = green.Sprint(cell)
			default:
				cell = faint.Sprint(cell)
			}
			row = append(row, cell)
			if len(row) == 7 {
				fmt.Println(strings.Join(row, " "))
				row = row[:0]
			}
		}
		if len(row) > 0 {
			fmt.Println(strings.Join(row, " "))
		}

		count := 0
		for _, ok := range recorded {
			if ok {
				count++
			}
		}
		fmt.Println(green.Sprintf("記録日数: %d日", count))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
