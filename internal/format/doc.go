// Package format renders durations as short human-readable ages.
//
// An age is a single magnitude bucket, never a compound value: a delta of
// 90 seconds is "1 minute", 400 days is "1 year".
//
// # Buckets
//
// Buckets are checked largest first; the first one whose length is strictly
// smaller than the absolute delta wins:
//
//   - year: 365 days
//   - month: 365/12 days
//   - week: 7 days
//   - day, hour, minute
//   - second: fallback for everything else, including zero
//
// The count is floored and the unit gets a trailing "s" unless the count is 1.
// The sign of the delta is ignored, so past and future times format alike.
package format
