package retryuntil

// referentEqualer is implemented by element types whose equality dereferences
// to an underlying value instead of comparing the elements themselves. Alias
// is the only implementation in this package.
type referentEqualer[T any] interface {
	referentEqual(T) bool
}

// Matches reports whether v is a member of triggers. Elements that alias
// externally owned storage (see Alias) are compared by referent value, never
// by handle identity; all other types use their standard equality.
//
// The scan is linear; order and duplicates in triggers do not affect the
// outcome. An empty trigger set matches nothing.
func Matches[T comparable](triggers []T, v T) bool {
	if eq, ok := any(v).(referentEqualer[T]); ok {
		for _, trigger := range triggers {
			if eq.referentEqual(trigger) {
				return true
			}
		}
		return false
	}
	for _, trigger := range triggers {
		if v == trigger {
			return true
		}
	}
	return false
}
