// Package schedule distributes finished briefs across a future time
// window.
package schedule

import (
	"time"

	"github.com/jonathan/content-planner/internal/types"
)

// DefaultHorizon is the publishing window when the caller gives none.
const DefaultHorizon = 7 * 24 * time.Hour

// Scheduler assigns scheduled_for timestamps. The clock is injected so
// the even-spread property is testable against a fixed epoch.
type Scheduler struct {
	nowFn func() time.Time
}

// New returns a Scheduler on the real clock.
func New() *Scheduler {
	return &Scheduler{nowFn: time.Now}
}

// NewWithClock returns a Scheduler with a fixed clock for tests.
func NewWithClock(nowFn func() time.Time) *Scheduler {
	return &Scheduler{nowFn: nowFn}
}

// Spread assigns brief i of n the timestamp now + i*(horizon/n),
// mutating the slice in place. Deterministic given n and the clock; no
// randomness. A non-positive horizon falls back to DefaultHorizon.
func (s *Scheduler) Spread(briefs []types.ContentBrief, horizon time.Duration) {
	n := len(briefs)
	if n == 0 {
		return
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	now := s.nowFn()
	step := horizon / time.Duration(n)
	for i := range briefs {
		briefs[i].ScheduledFor = now.Add(time.Duration(i) * step)
	}
}
