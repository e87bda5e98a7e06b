package cbor

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FromJSON converts a JSON document into CBOR items written to w.
//
//   - null/bool/number/string/array/object map naturally to CBOR
//     null/bool/int-or-float64/text/array/map. Object keys are written
//     in sorted order.
//   - Wrapper objects reach the items JSON cannot express:
//     {"$tag":N, "$":value}   -> tag N followed by value
//     {"$bytes": string}       -> byte string (base64, standard alphabet)
//     {"$float32": number}     -> single-precision float
//     {"$simple": N}           -> simple value N (0..255)
//     {"$undefined": true}     -> undefined
//
// js must hold exactly one JSON value; anything after it other than
// whitespace yields ErrTrailingJSON and nothing is written.
//
// If conversion fails, for example with ErrShortBuffer, w.Len() is
// restored to its value on entry; bytes past it may have been
// overwritten.
func FromJSON(w *Writer, js []byte) error {
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return ErrTrailingJSON
	}
	start := w.n
	if err := jsonToCBOR(w, v); err != nil {
		w.n = start
		return err
	}
	return nil
}

// ErrTrailingJSON is returned by FromJSON when the input continues past
// its first JSON value.
var ErrTrailingJSON = errors.New("cbor: trailing data after JSON value")

func jsonToCBOR(w *Writer, v any) error {
	switch x := v.(type) {
	case nil:
		return w.WriteNil()
	case bool:
		return w.WriteBool(x)
	case json.Number:
		return writeJSONNumber(w, x)
	case string:
		return w.WriteString(x)
	case []any:
		if err := w.WriteArrayHeader(uint64(len(x))); err != nil {
			return err
		}
		for i, e := range x {
			if err := jsonToCBOR(w, e); err != nil {
				return WrapError(err, i)
			}
		}
		return nil
	case map[string]any:
		if ok, err := tryWrapper(w, x); ok || err != nil {
			return err
		}
		if err := w.WriteMapHeader(uint64(len(x))); err != nil {
			return err
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := w.WriteString(k); err != nil {
				return err
			}
			if err := jsonToCBOR(w, x[k]); err != nil {
				return WrapError(err, k)
			}
		}
		return nil
	default:
		return errors.New("cbor: unsupported JSON value")
	}
}

// writeJSONNumber prefers integers when possible, otherwise float64.
func writeJSONNumber(w *Writer, n json.Number) error {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return w.WriteInt(i)
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return w.WriteUint(u)
		}
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	return w.WriteFloat64(f)
}

func tryWrapper(w *Writer, m map[string]any) (bool, error) {
	if len(m) == 0 || len(m) > 2 {
		return false, nil
	}
	// Generic {"$tag":N, "$":value}
	if tagv, ok := m["$tag"]; ok {
		iv, ok2 := m["$"]
		if !ok2 {
			return true, errors.New("cbor: $tag wrapper missing $ field")
		}
		tag, err := jsonUint(tagv)
		if err != nil {
			return true, err
		}
		if err := w.WriteTag(tag); err != nil {
			return true, err
		}
		return true, jsonToCBOR(w, iv)
	}
	if len(m) != 1 {
		return false, nil
	}
	if v, ok := m["$bytes"]; ok {
		s, ok := v.(string)
		if !ok {
			return true, errors.New("cbor: $bytes expects string")
		}
		data, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return true, err
		}
		return true, w.WriteBytes(data)
	}
	if v, ok := m["$float32"]; ok {
		n, ok := v.(json.Number)
		if !ok {
			return true, errors.New("cbor: $float32 expects number")
		}
		f, err := strconv.ParseFloat(string(n), 32)
		if err != nil {
			return true, err
		}
		return true, w.WriteFloat32(float32(f))
	}
	if v, ok := m["$simple"]; ok {
		u, err := jsonUint(v)
		if err != nil {
			return true, err
		}
		if u > math.MaxUint8 {
			return true, errors.New("cbor: $simple out of range")
		}
		return true, w.WriteSimple(uint8(u))
	}
	if v, ok := m["$undefined"]; ok {
		if b, _ := v.(bool); !b {
			return true, errors.New("cbor: $undefined expects true")
		}
		return true, w.WriteUndefined()
	}
	return false, nil
}

func jsonUint(v any) (uint64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, errors.New("cbor: expected a JSON number")
	}
	return strconv.ParseUint(string(n), 10, 64)
}

// IsLikelyJSON guesses whether b is JSON text rather than CBOR: it must be
// valid UTF-8 and its first non-space byte must open a JSON value. The
// bare literals must be spelled out in full.
func IsLikelyJSON(b []byte) bool {
	b = bytes.TrimLeft(b, " \t\r\n")
	if len(b) == 0 || !utf8.Valid(b) {
		return false
	}
	switch c := b[0]; {
	case c == '{', c == '[', c == '"', c == '-', c >= '0' && c <= '9':
		return true
	}
	for _, lit := range [...]string{"true", "false", "null"} {
		if bytes.HasPrefix(b, []byte(lit)) {
			return true
		}
	}
	return false
}
