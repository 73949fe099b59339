package format

import (
	"fmt"
	"math"
	"time"
)

const (
	minute = 60.0
	hour   = minute * 60
	day    = hour * 24
	week   = day * 7
	month  = day * (365.0 / 12.0)
	year   = month * 12
)

// Bucket is a unit of magnitude used to describe an age.
type Bucket struct {
	Unit    string
	Seconds float64
}

// Buckets lists the age buckets from largest to smallest.
var Buckets = []Bucket{
	{Unit: "year", Seconds: year},
	{Unit: "month", Seconds: month},
	{Unit: "week", Seconds: week},
	{Unit: "day", Seconds: day},
	{Unit: "hour", Seconds: hour},
	{Unit: "minute", Seconds: minute},
	{Unit: "second", Seconds: 1},
}

// BucketFor returns the largest bucket strictly exceeded by |seconds|.
// Falls through to the "second" bucket.
func BucketFor(seconds float64) Bucket {
	n := math.Abs(seconds)
	for _, b := range Buckets[:len(Buckets)-1] {
		if n > b.Seconds {
			return b
		}
	}
	return Buckets[len(Buckets)-1]
}

// FormatAge formats a signed delta in seconds, e.g. "3 days" or "1 minute".
func FormatAge(seconds float64) string {
	n := math.Abs(seconds)
	b := BucketFor(n)

	count := int64(math.Floor(n / b.Seconds))
	unit := b.Unit
	if count != 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s", count, unit)
}

// FormatDuration is FormatAge for a time.Duration, truncated to whole seconds.
func FormatDuration(d time.Duration) string {
	return FormatAge(float64(d / time.Second))
}

// Since formats the age of t relative to now.
func Since(t, now time.Time) string {
	return FormatDuration(now.Sub(t))
}
