package services

import "time"

// Clock abstracts wall-clock time so lifecycle transitions and
// confirmation codes are deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real clock.
func SystemClock() Clock { return systemClock{} }
