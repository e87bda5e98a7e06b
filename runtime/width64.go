//go:build !cbor_no64

package cbor

// Extended64 reports whether 8-byte arguments (integers, lengths and
// counts above math.MaxUint32) can be encoded and decoded. Build with
// the cbor_no64 tag to restrict the codec to 32-bit arguments.
const Extended64 = true
