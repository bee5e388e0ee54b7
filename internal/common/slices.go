package common

// IsSingle reports whether s holds exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of s, or the zero value and false when s
// is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E

		return zero, false
	}

	return s[0], true
}
