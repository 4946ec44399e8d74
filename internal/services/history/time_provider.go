package history

import "time"

//go:generate mockgen -destination=mock/mock_time_provider.go -package=mockhistory -source=time_provider.go

// TimeProvider stamps records with the wall clock time they were saved at
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the system clock
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
