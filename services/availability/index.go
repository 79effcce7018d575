// Package availability keeps the per-listing calendar of booked days.
package availability

import (
	"sort"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// Index is a sparse set of booked calendar days, keyed by day number
// (days since 1970-01-01 UTC). The zero value and a nil *Index are both
// valid empty indexes for reads.
type Index struct {
	days map[int64]struct{}
}

// New returns an empty index.
func New() *Index {
	return &Index{days: make(map[int64]struct{})}
}

// Date builds a date-only value in UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// dayNumber reduces t to its calendar date in its own location.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return Date(y, m, d).Unix() / secondsPerDay
}

func fromDayNumber(n int64) time.Time {
	return time.Unix(n*secondsPerDay, 0).UTC()
}

// IsBooked reports whether the calendar day of date is booked.
func (ix *Index) IsBooked(date time.Time) bool {
	if ix == nil || ix.days == nil {
		return false
	}
	_, ok := ix.days[dayNumber(date)]
	return ok
}

// CheckRange walks every day strictly after checkIn up to and including
// checkOut and fails on the first booked one. The check-in day is left to
// the caller.
func (ix *Index) CheckRange(checkIn, checkOut time.Time) error {
	last := dayNumber(checkOut)
	for n := dayNumber(checkIn) + 1; n <= last; n++ {
		if ix.hasDay(n) {
			return &OverlapError{Date: fromDayNumber(n)}
		}
	}
	return nil
}

// WithRangeBooked returns a copy of the index with every day from checkIn
// to checkOut inclusive marked booked. The receiver is never modified; on
// overlap no index is returned.
func (ix *Index) WithRangeBooked(checkIn, checkOut time.Time) (*Index, error) {
	next := ix.Clone()
	last := dayNumber(checkOut)
	for n := dayNumber(checkIn); n <= last; n++ {
		if next.hasDay(n) {
			return nil, &OverlapError{Date: fromDayNumber(n)}
		}
		next.days[n] = struct{}{}
	}
	return next, nil
}

// Clone returns an independent copy. Cloning nil yields an empty index.
func (ix *Index) Clone() *Index {
	out := New()
	if ix == nil {
		return out
	}
	for n := range ix.days {
		out.days[n] = struct{}{}
	}
	return out
}

// Len returns the number of booked days.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.days)
}

// Days returns the booked days in ascending order.
func (ix *Index) Days() []time.Time {
	if ix.Len() == 0 {
		return nil
	}
	nums := make([]int64, 0, len(ix.days))
	for n := range ix.days {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

	out := make([]time.Time, len(nums))
	for i, n := range nums {
		out[i] = fromDayNumber(n)
	}
	return out
}

func (ix *Index) hasDay(n int64) bool {
	if ix == nil || ix.days == nil {
		return false
	}
	_, ok := ix.days[n]
	return ok
}

// NightsBetween counts the calendar days from checkIn to checkOut inclusive.
func NightsBetween(checkIn, checkOut time.Time) int64 {
	return dayNumber(checkOut) - dayNumber(checkIn) + 1
}
