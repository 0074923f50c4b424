// Package schedule computes publication timestamps.
package schedule

import (
	"sort"
	"time"
)

// NextPublishTime picks the earliest preferred hour (UTC) not yet passed
// today; when all have passed it rolls to the first preferred hour tomorrow.
// With no preferred hours it falls back to 10:00.
func NextPublishTime(now time.Time, preferredHours []int) time.Time {
	hours := make([]int, 0, len(preferredHours))
	for _, h := range preferredHours {
		if h >= 0 && h <= 23 {
			hours = append(hours, h)
		}
	}
	if len(hours) == 0 {
		hours = []int{10}
	}
	sort.Ints(hours)

	now = now.UTC()
	for _, h := range hours {
		slot := time.Date(now.Year(), now.Month(), now.Day(), h, 0, 0, 0, time.UTC)
		if slot.After(now) {
			return slot
		}
	}
	next := now.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), hours[0], 0, 0, 0, time.UTC)
}
