package port

import "time"

// Clock supplies the current time to window checks. Injected so boundary
// conditions (now == startTime, now == endTime) are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
