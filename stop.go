package retryuntil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Stop bounds the number of invocations in a retry session. A Stop is a
// reusable policy; each session derives its own state from it, so one Stop
// value may be shared across concurrent sessions.
type Stop interface {
	begin(clock clockwork.Clock) stopState
}

// stopState is the per-session view of a Stop. exhausted is consulted only
// after a trigger-matching result, never before the first invocation; wait
// suspends the caller between attempts.
type stopState interface {
	exhausted() bool
	wait(interval time.Duration)
}

// MaxDuration returns a Stop that ends the session once d has elapsed since
// the session started, measured on a monotonic clock. Inter-attempt waits
// sleep until the next point on a fixed grid anchored at the session start
// (start + interval, start + 2*interval, ...), so invocation latency does not
// accumulate as drift across iterations.
func MaxDuration(d time.Duration) Stop {
	return durationStop(d)
}

// MaxAttempts returns a Stop that ends the session after n invocations.
// Inter-attempt waits sleep for the full interval measured from the moment
// the wait begins; drift is acceptable because the contract is attempt-count
// based, not schedule based.
func MaxAttempts(n uint) Stop {
	return attemptStop(n)
}

type durationStop time.Duration

func (s durationStop) begin(clock clockwork.Clock) stopState {
	start := clock.Now()
	return &durationState{
		clock:    clock,
		start:    start,
		deadline: start.Add(time.Duration(s)),
	}
}

type durationState struct {
	clock    clockwork.Clock
	start    time.Time
	deadline time.Time
	next     time.Time // next grid wake time, start + k*interval
}

func (s *durationState) exhausted() bool {
	return !s.clock.Now().Before(s.deadline)
}

func (s *durationState) wait(interval time.Duration) {
	if s.next.IsZero() {
		s.next = s.start.Add(interval)
	}
	if d := s.next.Sub(s.clock.Now()); d > 0 {
		s.clock.Sleep(d)
	}
	s.next = s.next.Add(interval)
}

type attemptStop uint

func (s attemptStop) begin(clock clockwork.Clock) stopState {
	return &attemptState{clock: clock, remaining: uint(s)}
}

type attemptState struct {
	clock     clockwork.Clock
	remaining uint
}

func (s *attemptState) exhausted() bool {
	if s.remaining > 0 {
		s.remaining--
	}
	return s.remaining == 0
}

func (s *attemptState) wait(interval time.Duration) {
	s.clock.Sleep(interval)
}
