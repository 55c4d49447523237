package retryuntil_test

import (
	"fmt"
	"time"

	"github.com/tsejhuang/retryuntil"
)

// ExampleUntil demonstrates retrying a callable bounded by an attempt count.
func ExampleUntil() {
	attempts := 0
	ok := retryuntil.Until(func() bool {
		attempts++
		return attempts == 3
	}, []bool{false}, retryuntil.MaxAttempts(5))

	fmt.Println("Result:", ok)
	fmt.Println("Attempts:", attempts)

	// Output:
	// Result: true
	// Attempts: 3
}

// ExampleUntil_exhaustion demonstrates detecting an exhausted session by
// re-applying the membership test to the returned value.
func ExampleUntil_exhaustion() {
	pending := []string{"pending", "unknown"}

	status := retryuntil.Until(func() string {
		return "pending"
	}, pending, retryuntil.MaxAttempts(3))

	if retryuntil.Matches(pending, status) {
		fmt.Println("exhausted:", status)
	}

	// Output:
	// exhausted: pending
}

// ExampleUntilAtIntervals demonstrates a duration-bounded session with a
// fixed delay between attempts.
func ExampleUntilAtIntervals() {
	attempts := 0
	ok := retryuntil.UntilAtIntervals(func() bool {
		attempts++
		return attempts == 3
	}, []bool{false}, retryuntil.MaxDuration(time.Second), time.Millisecond)

	fmt.Println("Result:", ok)
	fmt.Println("Attempts:", attempts)

	// Output:
	// Result: true
	// Attempts: 3
}

// ExampleMatches demonstrates the membership test on its own.
func ExampleMatches() {
	triggers := []int{429, 503}

	fmt.Println(retryuntil.Matches(triggers, 503))
	fmt.Println(retryuntil.Matches(triggers, 200))

	// Output:
	// true
	// false
}

// ExampleRef demonstrates alias tokens: distinct handles match when their
// referents hold equal values.
func ExampleRef() {
	a, b := 42, 42
	triggers := []retryuntil.Alias[int]{retryuntil.Ref(&a)}

	fmt.Println(retryuntil.Matches(triggers, retryuntil.Ref(&b)))

	// Output:
	// true
}
