// Package retryuntil retries a callable until it returns a value outside a
// caller-supplied trigger set.
//
// retryuntil is a value-triggered retry package that provides:
//
//   - Trigger Sets: retry decisions driven by return values, not errors
//   - Two Stop Conditions: a wall-clock budget or an attempt count
//   - Fixed Intervals: optional inter-attempt delay, grid-paced in duration mode
//   - Alias Tokens: reference-returning callables compared by referent value
//   - Injectable Clock: control time in tests without real sleeps
//
// # Quick Start
//
// Retry a poll until it stops reporting "pending", for at most five attempts:
//
//	status := retryuntil.Until(func() string {
//	    return job.Status()
//	}, []string{"pending"}, retryuntil.MaxAttempts(5))
//
// Or bound the session by elapsed time, probing every 100ms:
//
//	ok := retryuntil.UntilAtIntervals(func() bool {
//	    return conn.Ping()
//	}, []bool{false}, retryuntil.MaxDuration(3*time.Second), 100*time.Millisecond)
//
// # Callables and Arguments
//
// The driver accepts any zero-argument function value. Free functions, method
// values, and inline closures all fit; arguments are bound at the call site:
//
//	retryuntil.Until(server.Healthy, []bool{false}, retryuntil.MaxAttempts(3))
//
//	retryuntil.Until(func() int {
//	    return send(conn, payload)
//	}, []int{codeBusy, codeAgain}, retryuntil.MaxDuration(time.Second))
//
// # Outcome
//
// The driver always returns the last observed value, whether the session
// ended by leaving the trigger set or by exhausting the stop condition. There
// is no success flag; callers that need the distinction re-apply Matches:
//
//	if retryuntil.Matches(triggers, result) {
//	    // stop condition reached while still in the trigger set
//	}
//
// Exhaustion is a normal outcome, not an error. The driver defines no errors
// of its own and catches nothing: a panic raised by the callable propagates
// immediately and terminates the session.
//
// # Pacing
//
// UntilAtIntervals waits between attempts. In duration mode the waits target
// a fixed grid anchored at the session start, so slow invocations do not push
// later attempts off schedule. In attempt mode each wait is the full interval
// from the moment it begins. A zero interval never suspends the caller.
//
// # Reference Returns
//
// When the callable returns a handle to storage it does not own, wrap the
// trigger values and the return in Alias so membership compares the
// referents' values rather than handle identity:
//
//	var current, target state
//	got := retryuntil.Until(func() retryuntil.Alias[state] {
//	    refresh(&current)
//	    return retryuntil.Ref(&current)
//	}, []retryuntil.Alias[state]{retryuntil.Ref(&target)}, retryuntil.MaxAttempts(10))
//
// # Concurrency
//
// A session runs synchronously on the caller's goroutine and cannot be
// cancelled once started. Sessions share no state, so concurrent sessions
// need no coordination as long as the callables themselves are safe.
//
// # Testing
//
// Inject a fake clock to control time:
//
//	clock := clockwork.NewFakeClock()
//	go func() {
//	    clock.BlockUntil(1)
//	    clock.Advance(100 * time.Millisecond)
//	}()
//	v := retryuntil.UntilAtIntervals(fn, triggers,
//	    retryuntil.MaxAttempts(2), 100*time.Millisecond,
//	    retryuntil.WithClock(clock))
package retryuntil
