package retryuntil

import (
	"time"
)

// Func is the callable shape the driver retries: a zero-argument invocation
// yielding a return value. Bind arguments with a closure or method value
// before handing the callable to the driver.
type Func[T comparable] func() T

// Until invokes fn repeatedly until it returns a value outside triggers, or
// stop ends the session, whichever comes first. There is no delay between
// attempts. fn is always invoked at least once, even if stop is already
// satisfied on entry.
//
// The last observed value is returned unconditionally; the driver reports no
// success flag. Callers that need to distinguish success from exhaustion
// re-apply Matches to the result:
//
//	status := retryuntil.Until(poll, pending, retryuntil.MaxAttempts(5))
//	if retryuntil.Matches(pending, status) {
//	    // exhausted while still pending
//	}
func Until[T comparable](fn Func[T], triggers []T, stop Stop, opts ...Option) T {
	return run(fn, triggers, stop, 0, newConfig(opts))
}

// UntilAtIntervals is Until with a fixed delay observed between the end of
// one invocation and the start of the next. In duration mode the delays are
// paced on a grid anchored at the session start; in attempt mode each delay
// is the full interval measured from the moment the wait begins. See Stop.
func UntilAtIntervals[T comparable](fn Func[T], triggers []T, stop Stop, interval time.Duration, opts ...Option) T {
	return run(fn, triggers, stop, interval, newConfig(opts))
}

func run[T comparable](fn Func[T], triggers []T, stop Stop, interval time.Duration, cfg config) T {
	state := stop.begin(cfg.clock)
	for {
		v := fn()
		if !Matches(triggers, v) {
			return v
		}
		if state.exhausted() {
			return v
		}
		if interval > 0 {
			state.wait(interval)
		}
	}
}
