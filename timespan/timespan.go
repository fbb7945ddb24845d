package timespan

import (
	"math"
	"time"

	"golang.org/x/text/message"
)

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
	daysPerMonth     = 30
	daysPerYear      = 365

	// minCount is the smallest number printed in a counted phrase.
	minCount = 2
)

// HumanString describes how long ago start was, seen from end. The order of
// the arguments does not matter; only the absolute difference is used.
func HumanString(start, end time.Time, opts ...Option) string {
	return Human(end.Sub(start), opts...)
}

// Human describes a duration as a relative phrase. Negative durations are
// treated as their absolute value.
func Human(d time.Duration, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := printer(o.Language)

	key, n := classify(d)
	if n == 0 {
		return p.Sprintf(message.Key(key, ""))
	}

	return p.Sprintf(message.Key(key, ""), n)
}

// classify maps d to a message key and, for counted phrases, its count.
// Singular phrases return n == 0.
func classify(d time.Duration) (key string, n int) {
	if d < 0 {
		d = -d
	}

	seconds := d.Seconds()
	switch {
	case seconds <= 45:
		return keySeconds, 0
	case seconds <= 90:
		return keyMinute, 0
	}

	minutes := seconds / secondsPerMinute
	switch {
	case minutes <= 45:
		return keyMinutes, count(minutes)
	case minutes <= 90:
		return keyHour, 0
	}

	hours := minutes / minutesPerHour
	switch {
	case hours <= 22:
		return keyHours, count(hours)
	case hours <= 36:
		return keyDay, 0
	}

	days := hours / hoursPerDay
	switch {
	case days <= 25:
		return keyDays, count(days)
	case days <= 45:
		return keyMonth, 0
	case days <= 345:
		return keyMonths, count(days / daysPerMonth)
	case days <= 545:
		return keyYear, 0
	default:
		return keyYears, count(days / daysPerYear)
	}
}

// count rounds x half down and clamps it to minCount.
func count(x float64) int {
	return max(minCount, int(math.Ceil(x-0.5)))
}
