package cbor

import (
	"encoding/binary"
	"math/bits"
)

// nativeBigEndian reports whether the host stores integers most
// significant byte first, in which case wire order needs no swapping.
var nativeBigEndian = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

func swap16(v uint16) uint16 {
	if nativeBigEndian {
		return v
	}
	return bits.ReverseBytes16(v)
}

func swap32(v uint32) uint32 {
	if nativeBigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

func swap64(v uint64) uint64 {
	if nativeBigEndian {
		return v
	}
	return bits.ReverseBytes64(v)
}

// loadWire16 reads two wire-order (big-endian) bytes as a host value.
func loadWire16(b []byte) uint16 { return swap16(binary.NativeEndian.Uint16(b)) }

// loadWire32 reads four wire-order bytes as a host value.
func loadWire32(b []byte) uint32 { return swap32(binary.NativeEndian.Uint32(b)) }

// loadWire64 reads eight wire-order bytes as a host value.
func loadWire64(b []byte) uint64 { return swap64(binary.NativeEndian.Uint64(b)) }

// storeWire16 writes v into b in wire order.
func storeWire16(b []byte, v uint16) { binary.NativeEndian.PutUint16(b, swap16(v)) }

// storeWire32 writes v into b in wire order.
func storeWire32(b []byte, v uint32) { binary.NativeEndian.PutUint32(b, swap32(v)) }

// storeWire64 writes v into b in wire order.
func storeWire64(b []byte, v uint64) { binary.NativeEndian.PutUint64(b, swap64(v)) }
