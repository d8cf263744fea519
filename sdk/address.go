package sdk

import "strings"

// Address is a ledger account id like "alice.community" or "token.community".
type Address string

// String returns the literal account id.
// Example payload: sdk.Address("alice.community").String()
func (a Address) String() string {
	return string(a)
}

// IsValid runs the light sanity checks the host also applies: length bounds,
// lowercase alphanumerics and non-repeating ._- separators.
// Example payload: sdk.Address("alice.community").IsValid()
func (a Address) IsValid() bool {
	s := string(a)
	if len(s) < 2 || len(s) > 64 {
		return false
	}
	prevSep := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			prevSep = false
		case r == '.' || r == '_' || r == '-':
			if prevSep {
				return false
			}
			prevSep = true
		default:
			return false
		}
	}
	return !prevSep
}

// IsSubAccountOf reports whether the address lives under the given parent,
// which is how factory-deployed organization instances are laid out.
// Example payload: sdk.Address("dao.factory.community").IsSubAccountOf("factory.community")
func (a Address) IsSubAccountOf(parent Address) bool {
	return strings.HasSuffix(string(a), "."+string(parent))
}
