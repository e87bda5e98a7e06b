package cbor

import "math"

// Token is one decoded CBOR item.
//
// Only the payload that belongs to Type is populated; the accessors for
// other payloads return zero values. A Token owns no memory: for StrType
// and BinType, Bytes returns a view into the buffer the Scanner was
// created over, valid only while that buffer is alive and unmodified.
type Token struct {
	Type Type

	arg uint64  // value, count, tag number or simple value
	f   float64 // FloatType only
	raw []byte  // StrType and BinType only
	err error   // ErrorType only
}

// Uint returns the token's unsigned magnitude: the value of a UintType,
// the argument n of a NegIntType (whose value is -1-n), the element count
// of an ArrayType, the pair count of a MapType, the tag number of a
// TagType, the payload length of StrType and BinType, the code of a
// SimpleType, and 1 or 0 for a BoolType.
func (t Token) Uint() uint64 { return t.arg }

// Int returns the signed value of a UintType or NegIntType token and
// whether it fits in an int64.
func (t Token) Int() (int64, bool) {
	switch t.Type {
	case UintType:
		if t.arg > math.MaxInt64 {
			return 0, false
		}
		return int64(t.arg), true
	case NegIntType:
		if t.arg > math.MaxInt64 {
			return 0, false
		}
		return -1 - int64(t.arg), true
	}
	return 0, false
}

// Float returns the value of a FloatType token.
func (t Token) Float() float64 { return t.f }

// Bool returns the value of a BoolType token.
func (t Token) Bool() bool { return t.Type == BoolType && t.arg != 0 }

// Bytes returns the borrowed payload of a StrType or BinType token.
func (t Token) Bytes() []byte { return t.raw }

// Err returns the diagnostic of an ErrorType token.
func (t Token) Err() error { return t.err }
