// ABOUTME: Shared CLI helpers for value parsing and day-key validation.
// ABOUTME: Time values accept Go duration syntax or plain seconds.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/skosaka/tsumiage/internal/daykey"
	"github.com/skosaka/tsumiage/internal/models"
)

// parseValue converts a user-supplied amount into the item's unit:
// seconds for time items, occurrences for count items. Time values
// accept Go duration syntax ("30m", "1h30m") or a bare second count.
func parseValue(kind models.Kind, s string) (int64, error) {
	if kind == models.KindCount {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid count: %s", s)
		}
		return n, nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %s (try 30m, 1h30m, or seconds)", s)
	}
	return int64(d.Seconds()), nil
}

// parseDay validates an optional --day flag value.
func parseDay(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if _, err := daykey.Parse(s); err != nil {
		return "", fmt.Errorf("invalid day %q: want YYYY-MM-DD", s)
	}
	return s, nil
}
