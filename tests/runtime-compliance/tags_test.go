package tests

import (
	"errors"
	"testing"

	cbor "github.com/synadia-labs/cbortoken/runtime"
)

func TestTagFollowedByItem(t *testing.T) {
	// 1(1363896240): epoch-based date/time
	msg := mustHex(t, "c11a514b67b0")
	s := cbor.NewScanner(msg, true)
	tag, err := s.ReadTag()
	if err != nil || tag != 1 {
		t.Fatalf("ReadTag: (%d, %v)", tag, err)
	}
	v, err := s.ReadUint()
	if err != nil || v != 1363896240 {
		t.Fatalf("tagged item: (%d, %v)", v, err)
	}
	if s.Type() != cbor.EndType {
		t.Fatalf("trailing state %v", s.Type())
	}

	got := encode(t, func(w *cbor.Writer) error {
		if err := w.WriteTag(1); err != nil {
			return err
		}
		return w.WriteUint(1363896240)
	})
	if string(got) != string(msg) {
		t.Fatalf("WriteTag: got %x want %x", got, msg)
	}
}

func TestNestedTags(t *testing.T) {
	// 55799(24(h'6449455446')): self-described encoded CBOR data item
	msg := mustHex(t, "d9d9f7d818456449455446")
	s := cbor.NewScanner(msg, false)
	if s.Type() != cbor.TagType || s.Token().Uint() != 55799 {
		t.Fatalf("outer tag: %v %d", s.Type(), s.Token().Uint())
	}
	s.Next()
	if s.Type() != cbor.TagType || s.Token().Uint() != 24 {
		t.Fatalf("inner tag: %v %d", s.Type(), s.Token().Uint())
	}
	s.Next()
	inner := s.Token().Bytes()
	if s.Type() != cbor.BinType || len(inner) != 5 {
		t.Fatalf("payload: %v % x", s.Type(), inner)
	}
	// The payload is itself a CBOR item.
	is := cbor.NewScanner(inner, true)
	buf := make([]byte, 8)
	n, err := is.ReadString(buf)
	if err != nil || string(buf[:n]) != "IETF" {
		t.Fatalf("embedded item: (%q, %v)", buf[:n], err)
	}
}

func TestSimpleValues(t *testing.T) {
	cases := []struct {
		hex  string
		want uint64
	}{
		{"e0", 0},
		{"f0", 16},
		{"f3", 19},
		{"f818", 24},
		{"f8ff", 255},
	}
	for _, tc := range cases {
		s := cbor.NewScanner(mustHex(t, tc.hex), true)
		if s.Type() != cbor.SimpleType {
			t.Fatalf("%s: type %v", tc.hex, s.Type())
		}
		v, err := s.ReadSimple()
		if err != nil || v != tc.want {
			t.Fatalf("%s: (%d, %v)", tc.hex, v, err)
		}
		if s.Type() != cbor.EndType {
			t.Fatalf("%s: not consumed", tc.hex)
		}
		got := encode(t, func(w *cbor.Writer) error { return w.WriteSimple(uint8(tc.want)) })
		if string(got) != string(mustHex(t, tc.hex)) {
			t.Fatalf("WriteSimple(%d): got %x want %s", tc.want, got, tc.hex)
		}
	}
}

func TestSimpleCodesForFixedValues(t *testing.T) {
	// Simple values 20-23 are the fixed tokens.
	cases := map[uint8]cbor.Type{
		20: cbor.BoolType,
		21: cbor.BoolType,
		22: cbor.NilType,
		23: cbor.UndefinedType,
	}
	for code, typ := range cases {
		got := encode(t, func(w *cbor.Writer) error { return w.WriteSimple(code) })
		if s := cbor.NewScanner(got, false); s.Type() != typ {
			t.Fatalf("simple(%d) decoded as %v, want %v", code, s.Type(), typ)
		}
	}
}

func TestHalfFloatIsReportedAsSimple(t *testing.T) {
	// 1.0 as IEEE 754 half precision.
	s := cbor.NewScanner(mustHex(t, "f93c00"), true)
	if s.Type() != cbor.SimpleType || s.Token().Uint() != 0x3c00 {
		t.Fatalf("got %v %#x", s.Type(), s.Token().Uint())
	}
	if _, err := s.ReadFloat64(); !errors.Is(err, cbor.ErrInvalidType) {
		t.Fatalf("ReadFloat64 on half: %v", err)
	}
}

func TestContainersReportCountsOnly(t *testing.T) {
	// An array declaring three elements but holding one: the Scanner
	// reports the count and the caller discovers the shortfall.
	s := cbor.NewScanner(mustHex(t, "8301"), true)
	n, err := s.ReadArrayHeader()
	if err != nil || n != 3 {
		t.Fatalf("ReadArrayHeader: (%d, %v)", n, err)
	}
	if _, err := s.ReadUint(); err != nil {
		t.Fatal(err)
	}
	_, err = s.ReadUint()
	if !errors.Is(err, cbor.ErrInvalidType) {
		t.Fatalf("reading past the input: %v", err)
	}
	if s.Type() != cbor.ErrorType {
		t.Fatalf("scanner state after reading past the input: %v", s.Type())
	}
	var te cbor.TypeError
	if !errors.As(err, &te) || te.Encoded != cbor.EndType {
		t.Fatalf("want a TypeError on end, got %v", err)
	}
}
