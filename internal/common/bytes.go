package common

// WipeByteArray zeroes a sensitive buffer in place, e.g. a password after it
// has been hashed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
