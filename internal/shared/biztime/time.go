// Package biztime holds the clock convention shared by domain and storage.
package biztime

import "time"

// NowUTC returns the current time in UTC truncated to millisecond precision,
// so a value survives a round trip through a DATETIME(3) column unchanged.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
