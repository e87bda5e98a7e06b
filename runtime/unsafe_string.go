package cbor

import "unsafe"

// UnsafeString returns a string that shares the same underlying
// memory as b. It must only be used while b is immutable for the
// lifetime of the string, such as the borrowed payload of a Token
// over a buffer nobody writes to.
func UnsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
