package service

import "time"

// timeNow allows tests to pin the clock
var timeNow = time.Now

// now returns the current time truncated to match the precision mongo stores, e.g. "2018-11-22T08:39:16.782Z"
func now() time.Time {
	return timeNow().Truncate(time.Millisecond)
}
