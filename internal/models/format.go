// ABOUTME: Display formatting for durations, counts and dates.
// ABOUTME: Japanese labels match the mobile app this tool replaces.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTime renders seconds as a compact Japanese duration:
// 1時間1分, 1分30秒, 30秒.
func FormatTime(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d時間%d分", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%d分%d秒", minutes, secs)
	}
	return fmt.Sprintf("%d秒", secs)
}

// FormatTimeDetailed renders seconds as HH:MM:SS with no day rollover:
// 86400 -> "24:00:00".
func FormatTimeDetailed(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}

// FormatCount renders an occurrence count.
func FormatCount(count int64) string {
	return fmt.Sprintf("%d回", count)
}

// FormatDate renders a day key as M月D日. Slash-separated input is
// tolerated; anything unparseable is returned unchanged.
func FormatDate(day string) string {
	if day == "" {
		return ""
	}
	normalized := strings.ReplaceAll(day, "/", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) >= 3 {
		month, merr := strconv.Atoi(parts[1])
		d, derr := strconv.Atoi(strings.Split(parts[2], "T")[0])
		if merr == nil && derr == nil {
			return fmt.Sprintf("%d月%d日", month, d)
		}
	}
	if t, err := time.Parse(time.RFC3339, day); err == nil {
		return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
	}
	return day
}
