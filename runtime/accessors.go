package cbor

import "math"

// expect checks that the current token has type want. On mismatch the
// Scanner moves to the error state; if it already is there, its
// original error is kept.
func (s *Scanner) expect(want Type) error {
	if s.tok.Type == want {
		return nil
	}
	if s.tok.Type == ErrorType {
		return s.tok.err
	}
	err := TypeError{Method: want, Encoded: s.tok.Type}
	s.fail(err)
	return err
}

// consumed is called after every successful accessor.
func (s *Scanner) consumed() {
	if s.lookahead {
		s.Next()
	}
}

// ReadUint reads the current UintType token.
func (s *Scanner) ReadUint() (uint64, error) {
	if err := s.expect(UintType); err != nil {
		return 0, err
	}
	u := s.tok.arg
	s.consumed()
	return u, nil
}

// ReadInt reads the current UintType or NegIntType token as a signed
// integer. If the value does not fit in an int64 it returns IntOverflow
// and the Scanner keeps the token.
func (s *Scanner) ReadInt() (int64, error) {
	var i int64
	switch s.tok.Type {
	case UintType:
		if s.tok.arg > math.MaxInt64 {
			return 0, IntOverflow{Value: s.tok.arg, FailedBitsize: 64}
		}
		i = int64(s.tok.arg)
	case NegIntType:
		if s.tok.arg > math.MaxInt64 {
			return 0, IntOverflow{Value: s.tok.arg, Negative: true, FailedBitsize: 64}
		}
		i = -1 - int64(s.tok.arg)
	case ErrorType:
		return 0, s.tok.err
	default:
		err := TypeError{Method: IntType, Encoded: s.tok.Type}
		s.fail(err)
		return 0, err
	}
	s.consumed()
	return i, nil
}

// ReadFloat64 reads the current FloatType token.
func (s *Scanner) ReadFloat64() (float64, error) {
	if err := s.expect(FloatType); err != nil {
		return 0, err
	}
	f := s.tok.f
	s.consumed()
	return f, nil
}

// ReadFloat32 reads the current FloatType token, converting it to
// single precision.
func (s *Scanner) ReadFloat32() (float32, error) {
	if err := s.expect(FloatType); err != nil {
		return 0, err
	}
	f := float32(s.tok.f)
	s.consumed()
	return f, nil
}

// ReadBool reads the current BoolType token.
func (s *Scanner) ReadBool() (bool, error) {
	if err := s.expect(BoolType); err != nil {
		return false, err
	}
	v := s.tok.arg != 0
	s.consumed()
	return v, nil
}

// ReadNil consumes the current NilType token.
func (s *Scanner) ReadNil() error {
	if err := s.expect(NilType); err != nil {
		return err
	}
	s.consumed()
	return nil
}

// ReadUndefined consumes the current UndefinedType token.
func (s *Scanner) ReadUndefined() error {
	if err := s.expect(UndefinedType); err != nil {
		return err
	}
	s.consumed()
	return nil
}

// ReadArrayHeader reads the element count of the current ArrayType
// token. The elements are the following items.
func (s *Scanner) ReadArrayHeader() (uint64, error) {
	if err := s.expect(ArrayType); err != nil {
		return 0, err
	}
	sz := s.tok.arg
	s.consumed()
	return sz, nil
}

// ReadMapHeader reads the pair count of the current MapType token.
func (s *Scanner) ReadMapHeader() (uint64, error) {
	if err := s.expect(MapType); err != nil {
		return 0, err
	}
	sz := s.tok.arg
	s.consumed()
	return sz, nil
}

// ReadTag reads the tag number of the current TagType token.
func (s *Scanner) ReadTag() (uint64, error) {
	if err := s.expect(TagType); err != nil {
		return 0, err
	}
	tag := s.tok.arg
	s.consumed()
	return tag, nil
}

// ReadSimple reads the code of the current SimpleType token.
func (s *Scanner) ReadSimple() (uint64, error) {
	if err := s.expect(SimpleType); err != nil {
		return 0, err
	}
	v := s.tok.arg
	s.consumed()
	return v, nil
}

// StringLen returns the payload length of the current StrType token.
// It never advances.
func (s *Scanner) StringLen() (int, error) {
	if err := s.expect(StrType); err != nil {
		return 0, err
	}
	return len(s.tok.raw), nil
}

// BytesLen returns the payload length of the current BinType token.
// It never advances.
func (s *Scanner) BytesLen() (int, error) {
	if err := s.expect(BinType); err != nil {
		return 0, err
	}
	return len(s.tok.raw), nil
}

// ReadString copies the current StrType payload into dst and returns its
// length. If dst is too short it returns ErrShortBuffer, copies nothing
// and keeps the token.
func (s *Scanner) ReadString(dst []byte) (int, error) {
	if err := s.expect(StrType); err != nil {
		return 0, err
	}
	n := len(s.tok.raw)
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	copy(dst, s.tok.raw)
	s.consumed()
	return n, nil
}

// ReadCString is like ReadString but also writes a NUL after the
// payload, so dst must hold one extra byte.
func (s *Scanner) ReadCString(dst []byte) (int, error) {
	if err := s.expect(StrType); err != nil {
		return 0, err
	}
	n := len(s.tok.raw)
	if len(dst) <= n {
		return 0, ErrShortBuffer
	}
	copy(dst, s.tok.raw)
	dst[n] = 0
	s.consumed()
	return n, nil
}

// ReadBytes copies the current BinType payload into dst and returns its
// length. If dst is too short it returns ErrShortBuffer, copies nothing
// and keeps the token.
func (s *Scanner) ReadBytes(dst []byte) (int, error) {
	if err := s.expect(BinType); err != nil {
		return 0, err
	}
	n := len(s.tok.raw)
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	copy(dst, s.tok.raw)
	s.consumed()
	return n, nil
}
