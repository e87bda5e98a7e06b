package cbor

import (
	"bytes"
	"math"
)

// Writer encodes CBOR items into a caller-owned buffer of fixed capacity.
//
// Every WriteXxxx call is all-or-nothing: the encoded size of the item is
// computed first and, if it does not fit in Available(), the call returns
// ErrShortBuffer and neither the buffer nor the cursor changes. Writer
// never allocates and never grows the buffer.
type Writer struct {
	buf []byte
	n   int
}

// NewWriter constructs a Writer that fills buf from the start. The
// capacity of the Writer is len(buf).
func NewWriter(buf []byte) *Writer { return &Writer{buf: buf} }

// Bytes returns the encoded bytes written so far. The slice aliases the
// buffer passed to NewWriter.
func (w *Writer) Bytes() []byte { return w.buf[:w.n] }

// Len returns the number of bytes written.
func (w *Writer) Len() int { return w.n }

// Available returns the remaining capacity in bytes.
func (w *Writer) Available() int { return len(w.buf) - w.n }

// Reset rewinds the cursor to the start of the buffer.
func (w *Writer) Reset() { w.n = 0 }

// reserve returns the next sz bytes of the buffer and advances the
// cursor past them, or fails without moving it.
func (w *Writer) reserve(sz int) ([]byte, error) {
	if sz > w.Available() {
		return nil, ErrShortBuffer
	}
	o := w.buf[w.n : w.n+sz]
	w.n += sz
	return o, nil
}

// writeHead writes a header-only item (integers, array/map headers, tags,
// simple values).
func (w *Writer) writeHead(majorType uint8, u uint64) error {
	if err := checkArgument(u); err != nil {
		return err
	}
	o, err := w.reserve(argumentSize(u))
	if err != nil {
		return err
	}
	putHead(o, majorType, u)
	return nil
}

// writePayload writes a length header followed by data. The header and
// payload are checked against capacity together.
func writePayload[T ~string | ~[]byte](w *Writer, majorType uint8, data T) error {
	sz := uint64(len(data))
	if err := checkArgument(sz); err != nil {
		return err
	}
	o, err := w.reserve(argumentSize(sz) + len(data))
	if err != nil {
		return err
	}
	n := putHead(o, majorType, sz)
	copy(o[n:], data)
	return nil
}

// WriteUint writes an unsigned integer.
func (w *Writer) WriteUint(u uint64) error {
	return w.writeHead(majorTypeUint, u)
}

// WriteInt writes a signed integer. Negative values use major type 1
// with argument -1-i.
func (w *Writer) WriteInt(i int64) error {
	if i < 0 {
		// -(i+1) cannot overflow, even for math.MinInt64.
		return w.writeHead(majorTypeNegInt, uint64(-(i + 1)))
	}
	return w.writeHead(majorTypeUint, uint64(i))
}

// WriteFloat32 writes a single-precision float (always 5 bytes).
func (w *Writer) WriteFloat32(f float32) error {
	o, err := w.reserve(Float32Size)
	if err != nil {
		return err
	}
	o[0] = makeByte(majorTypeSimple, simpleFloat32)
	storeWire32(o[1:], math.Float32bits(f))
	return nil
}

// WriteFloat64 writes a double-precision float (always 9 bytes).
func (w *Writer) WriteFloat64(f float64) error {
	o, err := w.reserve(Float64Size)
	if err != nil {
		return err
	}
	o[0] = makeByte(majorTypeSimple, simpleFloat64)
	storeWire64(o[1:], math.Float64bits(f))
	return nil
}

// WriteBool writes true (0xf5) or false (0xf4).
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.writeHead(majorTypeSimple, simpleTrue)
	}
	return w.writeHead(majorTypeSimple, simpleFalse)
}

// WriteNil writes null (0xf6).
func (w *Writer) WriteNil() error {
	return w.writeHead(majorTypeSimple, simpleNull)
}

// WriteUndefined writes undefined (0xf7).
func (w *Writer) WriteUndefined() error {
	return w.writeHead(majorTypeSimple, simpleUndefined)
}

// WriteString writes a text string. The bytes of s are copied verbatim;
// no UTF-8 validation is performed.
func (w *Writer) WriteString(s string) error {
	return writePayload(w, majorTypeText, s)
}

// WriteStringBytes writes data as a text string.
func (w *Writer) WriteStringBytes(data []byte) error {
	return writePayload(w, majorTypeText, data)
}

// WriteCString writes the NUL-terminated string at the start of data as
// a text string. The terminator is not encoded; if data holds no NUL,
// all of it is written.
func (w *Writer) WriteCString(data []byte) error {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return writePayload(w, majorTypeText, data)
}

// WriteBytes writes a byte string.
func (w *Writer) WriteBytes(data []byte) error {
	return writePayload(w, majorTypeBytes, data)
}

// WriteArrayHeader writes an array header declaring sz elements.
func (w *Writer) WriteArrayHeader(sz uint64) error {
	return w.writeHead(majorTypeArray, sz)
}

// WriteMapHeader writes a map header declaring sz key/value pairs.
func (w *Writer) WriteMapHeader(sz uint64) error {
	return w.writeHead(majorTypeMap, sz)
}

// WriteTag writes a semantic tag number. The tagged item follows as the
// next write.
func (w *Writer) WriteTag(tag uint64) error {
	return w.writeHead(majorTypeTag, tag)
}

// WriteSimple writes a major type 7 item with val as its argument.
// Values below 24 are encoded in the initial byte, larger ones as
// 0xf8 followed by val.
func (w *Writer) WriteSimple(val uint8) error {
	return w.writeHead(majorTypeSimple, uint64(val))
}
