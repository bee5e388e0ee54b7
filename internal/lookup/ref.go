package lookup

import (
	"fmt"
	"strings"
)

// Ref is a parsed lookup reference.
type Ref struct {
	Owner  string
	Method string
}

// String returns "Owner.method".
func (r Ref) String() string {
	return r.Owner + "." + r.Method
}

// ParseRef splits a reference on its last '.'.
// Owners may themselves be dotted ("system.DeptService.findNameById").
func ParseRef(s string) (Ref, error) {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return Ref{}, fmt.Errorf("%w: reference %q has no owner", ErrResolution, s)
	}

	ref := Ref{Owner: s[:i], Method: s[i+1:]}
	if ref.Owner == "" || ref.Method == "" {
		return Ref{}, fmt.Errorf("%w: malformed reference %q", ErrResolution, s)
	}

	return ref, nil
}
