package ai

import (
	"context"
	"time"
)

// SetSleepForTest replaces the backoff sleep so tests can observe delays.
func (g *Gateway) SetSleepForTest(sleep func(ctx context.Context, d time.Duration) error) {
	g.sleep = sleep
}
