package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

func TestAllHoursPassedRollsToTomorrow(t *testing.T) {
	got := NextPublishTime(at(14, 0), []int{8, 10, 12})
	want := time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, want, got)
}

func TestEarliestRemainingHourToday(t *testing.T) {
	got := NextPublishTime(at(14, 0), []int{15, 18})
	assert.Equal(t, at(15, 0), got)
}

func TestExactHourCountsAsPassed(t *testing.T) {
	got := NextPublishTime(at(10, 0), []int{10, 12})
	assert.Equal(t, at(12, 0), got)
}

func TestUnsortedHours(t *testing.T) {
	got := NextPublishTime(at(9, 30), []int{17, 12, 10})
	assert.Equal(t, at(10, 0), got)
}

func TestNoHoursFallsBack(t *testing.T) {
	got := NextPublishTime(at(8, 0), nil)
	assert.Equal(t, at(10, 0), got)

	got = NextPublishTime(at(8, 0), []int{-3, 99})
	assert.Equal(t, at(10, 0), got)
}
