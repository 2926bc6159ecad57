package crypto

import "crypto/subtle"

// Choice is a constant-time boolean: its value is always 0 or 1 and it is
// combined with arithmetic instead of the short-circuit operators && and ||,
// so that holding or propagating one does not reveal it through timing.
// Callers that need to act on the final result convert it with Bool, which
// is the single allowed point where the bit becomes observable.
type Choice byte

// And returns c AND other without branching.
func (c Choice) And(other Choice) Choice {
	return c & other & 1
}

// Or returns c OR other without branching.
func (c Choice) Or(other Choice) Choice {
	return (c | other) & 1
}

// Not returns the negation of c without branching.
func (c Choice) Not() Choice {
	return (c ^ 1) & 1
}

// Bool reveals the bit. Only call it once the value no longer needs to stay
// secret, typically when returning the final outcome to the caller.
func (c Choice) Bool() bool {
	return c&1 == 1
}

// mask expands the bit to a full byte mask: 0xff when set, 0x00 otherwise.
func (c Choice) mask() byte {
	return -(byte(c) & 1)
}

// EqualBytes compares two byte slices in constant time. Slices of different
// lengths compare as unequal; the length itself is not hidden.
func EqualBytes(a, b []byte) Choice {
	return Choice(subtle.ConstantTimeCompare(a, b))
}
