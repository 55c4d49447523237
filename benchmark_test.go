package retryuntil

import (
	"testing"
)

func BenchmarkUntil_ImmediateSuccess(b *testing.B) {
	triggers := []bool{false}
	stop := MaxAttempts(3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Until(func() bool {
			return true
		}, triggers, stop)
	}
}

func BenchmarkUntil_Exhausted(b *testing.B) {
	triggers := []int{429, 503}
	stop := MaxAttempts(3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Until(func() int {
			return 429
		}, triggers, stop)
	}
}

func BenchmarkMatches(b *testing.B) {
	triggers := []int{1, 2, 3, 4, 5, 6, 7, 8}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Matches(triggers, 9)
	}
}

func BenchmarkMatches_Alias(b *testing.B) {
	vals := make([]int, 8)
	triggers := make([]Alias[int], len(vals))
	for i := range vals {
		vals[i] = i
		triggers[i] = Ref(&vals[i])
	}
	probe := 9

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Matches(triggers, Ref(&probe))
	}
}
