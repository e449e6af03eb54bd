// ABOUTME: Gamified level (title) definitions per item kind.
// ABOUTME: Thresholds are seconds for duration items, occurrences for count items.
package models

// Level is one attainable title with its threshold and badge color.
type Level struct {
	Threshold int64
	Title     string
	Color     string
}

// DurationLevels are the titles for duration items, thresholds in seconds.
var DurationLevels = []Level{
	{0, "🐣 見習い", "#BDBDBD"},
	{3 * 3600, "🐥 駆け出し", "#81C784"},
	{10 * 3600, "🧑‍💻 一人前", "#4CAF50"},
	{50 * 3600, "⚔️ 熟練者", "#2196F3"},
	{100 * 3600, "👑 達人", "#FF9800"},
	{500 * 3600, "🦄 伝説", "#9C27B0"},
}

// CountLevels are the titles for count items, thresholds in occurrences.
var CountLevels = []Level{
	{0, "🐣 見習い", "#BDBDBD"},
	{10, "🐥 駆け出し", "#81C784"},
	{50, "🧑‍💻 一人前", "#4CAF50"},
	{100, "⚔️ 熟練者", "#2196F3"},
	{500, "👑 達人", "#FF9800"},
	{1000, "🦄 伝説", "#9C27B0"},
}

// LevelStatus is the current level, the next one (nil at the top) and
// the percent progress toward it.
type LevelStatus struct {
	Current  Level
	Next     *Level
	Progress int // 0-100 toward Next, 100 at the top level
}

// LevelInfo returns the level status for a total value of the given kind.
func LevelInfo(kind Kind, totalValue int64) LevelStatus {
	levels := CountLevels
	if kind == KindDuration {
		levels = DurationLevels
	}

	current := levels[0]
	var next *Level
	if len(levels) > 1 {
		next = &levels[1]
	}
	for i := range levels {
		if totalValue >= levels[i].Threshold {
			current = levels[i]
			if i+1 < len(levels) {
				next = &levels[i+1]
			} else {
				next = nil
			}
		} else {
			break
		}
	}

	status := LevelStatus{Current: current, Next: next, Progress: 100}
	if next != nil {
		span := next.Threshold - current.Threshold
		done := totalValue - current.Threshold
		pct := int(done * 100 / span)
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		status.Progress = pct
	}
	return status
}
