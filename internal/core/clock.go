package core

import "time"

//go:generate go tool go.uber.org/mock/mockgen -source=clock.go -destination=clock_mock.go -package=core

// Clock supplies the current time for operation timestamps and the daily
// withdrawal-counter reset. Injected so tests can advance the calendar.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
