package crawler

import (
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates outbound page fetches. Acquire blocks until the next
// request is allowed; it never drops or rejects a caller, and a wait in
// progress is not cancellable.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name Limiter
type Limiter interface {
	Acquire()
}

type BlockingLimiter struct {
	limiter *rate.Limiter
}

// NewBlockingLimiter allows requestsPerSecond sustained calls with no
// burst beyond a single request. Non-positive rates fall back to 1 rps.
func NewBlockingLimiter(requestsPerSecond float64) *BlockingLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}

	return &BlockingLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

func (l *BlockingLimiter) Acquire() {
	r := l.limiter.Reserve()
	time.Sleep(r.Delay())
}
