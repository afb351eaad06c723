package userdata

import (
	"math/rand"
	"time"
)

func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}

func newTestService(at time.Time, seed int64) *Service {
	return NewServiceWithSources(DefaultConfig(), nil, fixedClock(at), rand.New(rand.NewSource(seed)))
}
