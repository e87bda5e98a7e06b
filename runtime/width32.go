//go:build cbor_no64

package cbor

// Extended64 reports whether 8-byte arguments (integers, lengths and
// counts above math.MaxUint32) can be encoded and decoded.
const Extended64 = false
