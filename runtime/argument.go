package cbor

import "math"

// argumentWidth returns how many bytes follow the initial byte to carry
// the argument for the given additional info.
func argumentWidth(minor uint8) (int, error) {
	if minor <= addInfoDirect {
		return 0, nil
	}
	switch minor {
	case addInfoUint8:
		return 1, nil
	case addInfoUint16:
		return 2, nil
	case addInfoUint32:
		return 4, nil
	case addInfoUint64:
		return 8, nil
	}
	return 0, ErrInvalidLength
}

// readArgument decodes the argument for minor from b, which starts right
// after the initial byte. It returns the argument and the number of bytes
// of b it occupies.
func readArgument(b []byte, minor uint8) (uint64, int, error) {
	w, err := argumentWidth(minor)
	if err != nil {
		return 0, 0, err
	}
	if len(b) < w {
		return 0, 0, ErrInsufficientData
	}
	switch w {
	case 0:
		return uint64(minor), 0, nil
	case 1:
		return uint64(b[0]), 1, nil
	case 2:
		return uint64(loadWire16(b)), 2, nil
	case 4:
		return uint64(loadWire32(b)), 4, nil
	default:
		if !Extended64 {
			return 0, 0, ErrUnsupportedWidth
		}
		return loadWire64(b), 8, nil
	}
}

// argumentSize returns the encoded size of an initial byte carrying u
// with the minimal width.
func argumentSize(u uint64) int {
	switch {
	case u <= addInfoDirect:
		return 1
	case u <= math.MaxUint8:
		return 2
	case u <= math.MaxUint16:
		return 3
	case u <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// checkArgument rejects arguments that need 8 bytes when extended
// support is compiled out.
func checkArgument(u uint64) error {
	if !Extended64 && u > math.MaxUint32 {
		return ErrUnsupportedWidth
	}
	return nil
}

// putHead writes the initial byte and minimal-width argument for u into
// dst, which must hold at least argumentSize(u) bytes. It returns the
// number of bytes written.
func putHead(dst []byte, majorType uint8, u uint64) int {
	switch {
	case u <= addInfoDirect:
		dst[0] = makeByte(majorType, uint8(u))
		return 1
	case u <= math.MaxUint8:
		dst[0] = makeByte(majorType, addInfoUint8)
		dst[1] = uint8(u)
		return 2
	case u <= math.MaxUint16:
		dst[0] = makeByte(majorType, addInfoUint16)
		storeWire16(dst[1:], uint16(u))
		return 3
	case u <= math.MaxUint32:
		dst[0] = makeByte(majorType, addInfoUint32)
		storeWire32(dst[1:], uint32(u))
		return 5
	default:
		dst[0] = makeByte(majorType, addInfoUint64)
		storeWire64(dst[1:], u)
		return 9
	}
}
