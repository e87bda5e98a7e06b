package cbor

// Worst-case encoded sizes for common types. For variable-length types
// such as strings and byte slices, the total encoded size is the
// corresponding prefix size plus the length of the value.
const (
	Int64Size        = 9
	IntSize          = Int64Size
	UintSize         = Int64Size
	Int32Size        = 5
	Uint32Size       = 5
	Uint64Size       = Int64Size
	Float64Size      = 9
	Float32Size      = 5
	BoolSize         = 1
	NilSize          = 1
	UndefinedSize    = 1
	MapHeaderSize    = Int64Size
	ArrayHeaderSize  = Int64Size
	TagSize          = Int64Size
	SimpleSize       = 2
	BytesPrefixSize  = Int64Size
	StringPrefixSize = Int64Size
)

// UintEncodedSize returns the exact number of bytes WriteUint uses for u.
func UintEncodedSize(u uint64) int { return argumentSize(u) }

// IntEncodedSize returns the exact number of bytes WriteInt uses for i.
func IntEncodedSize(i int64) int {
	if i < 0 {
		return argumentSize(uint64(-(i + 1)))
	}
	return argumentSize(uint64(i))
}

// StringEncodedSize returns the exact number of bytes WriteString or
// WriteBytes uses for a payload of n bytes.
func StringEncodedSize(n int) int { return argumentSize(uint64(n)) + n }
