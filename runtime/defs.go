// This package is a token-oriented CBOR (RFC 8949) codec that works on
// caller-owned buffers.
//
// This package defines two halves that share one argument codec:
//   - (*Writer).WriteXxxx() appends one fully encoded item to a fixed-capacity
//     []byte, or fails without touching it.
//   - (*Scanner).Next() decodes one item at a time into a Token whose string
//     and byte payloads are borrowed views into the input.
//
// The typed accessors on *Scanner ((*Scanner).ReadXxxx()) check the current
// token's type before extracting a value and, when the Scanner was created in
// lookahead mode, advance to the following item on success:
//
//	s := cbor.NewScanner(msg, true)
//	n, _ := s.ReadArrayHeader()
//	for i := uint64(0); i < n; i++ {
//		v, err := s.ReadInt()
//		...
//	}
//
// Indefinite-length items are not supported. Arrays, maps and tags report
// their declared count; pulling the nested items is up to the caller.
package cbor

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length; rejected by this package
)

// Simple values in major type 7
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat32   = 26
	simpleFloat64   = 27
)

const (
	// recursionLimit bounds nesting when rendering diagnostic notation.
	recursionLimit = 10000
)

// makeByte creates a CBOR initial byte from major type and additional info
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}

// Type is the kind of a decoded Token.
type Type byte

// Token types
const (
	EndType       Type = iota // end of input
	UintType                  // non-negative integer
	NegIntType                // negative integer
	ArrayType                 // array header
	StrType                   // text string
	BinType                   // byte string
	MapType                   // map header
	TagType                   // semantic tag
	SimpleType                // simple value other than bool/null/undefined
	BoolType                  // true or false
	NilType                   // null
	UndefinedType             // undefined
	FloatType                 // single or double precision float
	ErrorType                 // decode or accessor failure

	// IntType is never held by a Token. It names what ReadInt accepts
	// (UintType or NegIntType) in a TypeError.
	IntType
)

// String implements fmt.Stringer
func (t Type) String() string {
	switch t {
	case EndType:
		return "end"
	case UintType:
		return "uint"
	case NegIntType:
		return "negint"
	case ArrayType:
		return "array"
	case StrType:
		return "str"
	case BinType:
		return "bin"
	case MapType:
		return "map"
	case TagType:
		return "tag"
	case SimpleType:
		return "simple"
	case BoolType:
		return "bool"
	case NilType:
		return "nil"
	case UndefinedType:
		return "undefined"
	case FloatType:
		return "float"
	case ErrorType:
		return "error"
	case IntType:
		return "int"
	default:
		return "<invalid>"
	}
}

// majorTokenTypes maps major types 0-6 to their token type.
var majorTokenTypes = [...]Type{
	majorTypeUint:   UintType,
	majorTypeNegInt: NegIntType,
	majorTypeBytes:  BinType,
	majorTypeText:   StrType,
	majorTypeArray:  ArrayType,
	majorTypeMap:    MapType,
	majorTypeTag:    TagType,
}
