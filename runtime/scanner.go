package cbor

import "math"

// Scanner decodes a CBOR byte slice one item at a time.
//
// The Scanner holds the current Token. It is in one of three states:
// active (the token holds a decoded item), end (EndType, input exhausted)
// or error (ErrorType). The error state is terminal: once entered, every
// further Next or accessor call fails without decoding or moving.
//
// In lookahead mode each successful accessor call (ReadUint, ReadString,
// ...) advances to the following item before returning, so the Scanner
// already holds the next token. Otherwise the caller calls Next between
// accesses.
//
// A Scanner is not safe for concurrent use. It never copies the input;
// StrType and BinType tokens borrow from it.
type Scanner struct {
	buf       []byte
	pos       int
	start     int // offset of the current token
	lookahead bool
	tok       Token
}

// NewScanner constructs a Scanner over b and decodes the first item.
// An empty b leaves the Scanner at EndType.
func NewScanner(b []byte, lookahead bool) *Scanner {
	s := &Scanner{buf: b, lookahead: lookahead}
	s.Next()
	return s
}

// Token returns the current token.
func (s *Scanner) Token() Token { return s.tok }

// Type returns the type of the current token.
func (s *Scanner) Type() Type { return s.tok.Type }

// Err returns the error that moved the Scanner into the error state, or
// nil.
func (s *Scanner) Err() error { return s.tok.err }

// Done reports whether the Scanner reached the end of input or failed.
func (s *Scanner) Done() bool { return s.tok.Type == EndType || s.tok.Type == ErrorType }

// Offset returns the offset at which the current token starts. In the
// error state it is the offset of the item that failed to decode, or of
// the token an accessor rejected.
func (s *Scanner) Offset() int { return s.start }

// Pos returns the offset of the first byte not yet consumed.
func (s *Scanner) Pos() int { return s.pos }

// Remaining returns the unconsumed portion of the input.
func (s *Scanner) Remaining() []byte { return s.buf[s.pos:] }

// Lookahead reports whether accessors advance automatically.
func (s *Scanner) Lookahead() bool { return s.lookahead }

// fail moves the Scanner into the terminal error state.
func (s *Scanner) fail(err error) {
	s.tok = Token{Type: ErrorType, err: err}
}

// Next decodes the item at the current position. It returns true when
// an item was decoded. It returns false at the end of input (Type is
// EndType) and on failure (Type is ErrorType, Err reports why); a failed
// attempt leaves Pos where it was. Once the Scanner is in the error
// state Next does nothing.
func (s *Scanner) Next() bool {
	if s.tok.Type == ErrorType {
		return false
	}
	s.start = s.pos
	if s.pos >= len(s.buf) {
		s.tok = Token{Type: EndType}
		return false
	}

	lead := s.buf[s.pos]
	major := getMajorType(lead)
	minor := getAddInfo(lead)
	p := s.buf[s.pos+1:]

	if major == majorTypeSimple {
		tok, n, err := readSimple(p, minor)
		if err != nil {
			s.fail(argumentError(err, major, minor))
			return false
		}
		s.tok = tok
		s.pos += 1 + n
		return true
	}

	arg, n, err := readArgument(p, minor)
	if err != nil {
		s.fail(argumentError(err, major, minor))
		return false
	}
	tok := Token{Type: majorTokenTypes[major], arg: arg}
	switch major {
	case majorTypeBytes, majorTypeText:
		if uint64(len(p)-n) < arg {
			s.fail(ErrInsufficientData)
			return false
		}
		tok.raw = p[n : n+int(arg) : n+int(arg)]
		n += int(arg)
	}
	s.tok = tok
	s.pos += 1 + n
	return true
}

// readSimple decodes a major type 7 item from p, which starts after the
// initial byte.
func readSimple(p []byte, minor uint8) (Token, int, error) {
	switch minor {
	case simpleFalse:
		return Token{Type: BoolType, arg: 0}, 0, nil
	case simpleTrue:
		return Token{Type: BoolType, arg: 1}, 0, nil
	case simpleNull:
		return Token{Type: NilType}, 0, nil
	case simpleUndefined:
		return Token{Type: UndefinedType}, 0, nil
	case simpleFloat32:
		if len(p) < 4 {
			return Token{}, 0, ErrInsufficientData
		}
		f := math.Float32frombits(loadWire32(p))
		return Token{Type: FloatType, f: float64(f)}, 4, nil
	case simpleFloat64:
		if len(p) < 8 {
			return Token{}, 0, ErrInsufficientData
		}
		f := math.Float64frombits(loadWire64(p))
		return Token{Type: FloatType, f: f}, 8, nil
	}
	arg, n, err := readArgument(p, minor)
	if err != nil {
		return Token{}, 0, err
	}
	return Token{Type: SimpleType, arg: arg}, n, nil
}

// argumentError attaches the offending initial byte to length errors.
func argumentError(err error, major, minor uint8) error {
	if err == ErrInvalidLength {
		return InvalidAdditionalInfoError{Major: major, Info: minor}
	}
	return err
}
