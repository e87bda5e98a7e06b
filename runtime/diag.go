package cbor

import (
	"math"
	"strconv"
	"strings"
)

// DiagBytes renders the first CBOR item in b in RFC 8949 diagnostic
// notation and returns the bytes that follow it.
func DiagBytes(b []byte) (string, []byte, error) {
	s := NewScanner(b, false)
	if s.Type() == EndType {
		return "", b, ErrInsufficientData
	}
	out, err := DiagNext(s)
	if err != nil {
		return "", b, err
	}
	return out, b[s.Offset():], nil
}

// DiagNext renders the item the Scanner currently holds, including the
// nested items an array, map or tag declares, and leaves the Scanner on
// the token after it. DiagNext moves the Scanner with Next, so the
// lookahead setting does not matter.
//
// A failure to decode the token after the item is not reported here; it
// stays in the Scanner for the next call.
func DiagNext(s *Scanner) (string, error) {
	rb := getRenderBuf()
	defer putRenderBuf(rb)
	if err := diagToken(rb, s, 0); err != nil {
		return "", err
	}
	return rb.String(), nil
}

func diagToken(buf *renderBuf, s *Scanner, depth int) error {
	if depth > recursionLimit {
		return ErrMaxDepthExceeded
	}
	tok := s.Token()
	switch tok.Type {
	case ErrorType:
		return tok.err
	case EndType:
		// a container declared more items than the input holds
		return ErrInsufficientData
	case UintType:
		buf.uint(tok.arg)
	case NegIntType:
		buf.str(formatNegInt(tok.arg))
	case BinType:
		buf.str("h'")
		buf.hexBytes(tok.raw)
		buf.char('\'')
	case StrType:
		buf.quoted(tok.raw)
	case ArrayType:
		s.Next()
		buf.char('[')
		for i := uint64(0); i < tok.arg; i++ {
			if i > 0 {
				buf.str(", ")
			}
			if err := diagToken(buf, s, depth+1); err != nil {
				return err
			}
		}
		buf.char(']')
		return nil
	case MapType:
		s.Next()
		buf.char('{')
		for i := uint64(0); i < tok.arg; i++ {
			if i > 0 {
				buf.str(", ")
			}
			if err := diagToken(buf, s, depth+1); err != nil { // key
				return err
			}
			buf.str(": ")
			if err := diagToken(buf, s, depth+1); err != nil { // value
				return err
			}
		}
		buf.char('}')
		return nil
	case TagType:
		s.Next()
		buf.uint(tok.arg)
		buf.char('(')
		if err := diagToken(buf, s, depth+1); err != nil {
			return err
		}
		buf.char(')')
		return nil
	case SimpleType:
		buf.str("simple(")
		buf.uint(tok.arg)
		buf.char(')')
	case BoolType:
		buf.str(strconv.FormatBool(tok.arg != 0))
	case NilType:
		buf.str("null")
	case UndefinedType:
		buf.str("undefined")
	case FloatType:
		buf.str(formatFloatDiag(tok.f))
	}
	s.Next()
	return nil
}

// formatNegInt formats -1-n, which for n = math.MaxUint64 is one past
// the uint64 range.
func formatNegInt(n uint64) string {
	if n <= math.MaxInt64 {
		return strconv.FormatInt(-1-int64(n), 10)
	}
	if n == math.MaxUint64 {
		return "-18446744073709551616"
	}
	return "-" + strconv.FormatUint(n+1, 10)
}

// formatFloatDiag returns a diagnostic string for f matching RFC examples
// (1.5, 100000.0, 1.0e+300, Infinity).
func formatFloatDiag(f float64) string {
	if math.IsInf(f, +1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	af := math.Abs(f)
	if af == 0 || (af >= 1e-5 && af < 1e15) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if i := strings.IndexByte(s, 'e'); i >= 0 && !strings.Contains(s[:i], ".") {
		s = s[:i] + ".0" + s[i:]
	}
	return s
}
