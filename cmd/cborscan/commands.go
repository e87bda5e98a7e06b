package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"go.uber.org/zap"

	cbor "github.com/synadia-labs/cbortoken/runtime"
)

type diagCmd struct {
	File string `arg:"" optional:"" help:"Input file (default stdin)."`
	Hex  bool   `short:"x" help:"Treat input as hex-encoded CBOR."`
}

// Run prints every top-level item of the input, which may be a CBOR
// sequence.
func (c *diagCmd) Run(e *env) error {
	data, err := readInput(c.File, e.stdin, c.Hex)
	if err != nil {
		return err
	}
	e.log.Debug("diag", zap.String("file", c.File), zap.Int("bytes", len(data)))

	s := cbor.NewScanner(data, false)
	if s.Type() == cbor.EndType {
		return errors.New("empty input")
	}
	items := 0
	for !s.Done() {
		off := s.Offset()
		out, err := cbor.DiagNext(s)
		if err != nil {
			return fmt.Errorf("item %d at offset %d: %w", items, off, err)
		}
		fmt.Fprintln(e.stdout, out)
		items++
	}
	if s.Type() == cbor.ErrorType {
		return fmt.Errorf("item %d: %w", items, cbor.WrapError(s.Err(), s.Offset()))
	}
	e.log.Debug("diag done", zap.Int("items", items))
	return nil
}

type checkCmd struct {
	File string `arg:"" optional:"" help:"Input file (default stdin)."`
	Hex  bool   `short:"x" help:"Treat input as hex-encoded CBOR."`
}

// Run walks the input with Next only. Container counts are not checked.
func (c *checkCmd) Run(e *env) error {
	data, err := readInput(c.File, e.stdin, c.Hex)
	if err != nil {
		return err
	}
	s := cbor.NewScanner(data, false)
	tokens := 0
	for !s.Done() {
		e.log.Debug("token",
			zap.Int("offset", s.Offset()),
			zap.Stringer("type", s.Type()),
			zap.Uint64("arg", s.Token().Uint()),
		)
		tokens++
		s.Next()
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("check failed after %d tokens: %w", tokens, cbor.WrapError(err, s.Offset()))
	}
	fmt.Fprintf(e.stdout, "ok: %d tokens, %d bytes\n", tokens, len(data))
	return nil
}

type encodeCmd struct {
	File string `arg:"" optional:"" help:"JSON input file (default stdin)."`
	Hex  bool   `short:"x" help:"Write hex text instead of raw CBOR."`
	Size int    `default:"65536" help:"Capacity of the output buffer in bytes."`
}

// Run converts one JSON document. The output buffer has a fixed size;
// a document that does not fit is an error, not a reallocation.
func (c *encodeCmd) Run(e *env) error {
	data, err := readInput(c.File, e.stdin, false)
	if err != nil {
		return err
	}
	if !cbor.IsLikelyJSON(data) {
		return errors.New("input does not look like JSON")
	}
	if c.Size <= 0 {
		return fmt.Errorf("invalid --size %d", c.Size)
	}
	w := cbor.NewWriter(make([]byte, c.Size))
	if err := cbor.FromJSON(w, data); err != nil {
		if errors.Is(err, cbor.ErrShortBuffer) {
			e.log.Warn("output buffer too small", zap.Int("size", c.Size))
		}
		return fmt.Errorf("encode: %w", err)
	}
	e.log.Debug("encoded", zap.Int("json_bytes", len(data)), zap.Int("cbor_bytes", w.Len()))

	if c.Hex {
		_, err = fmt.Fprintln(e.stdout, hex.EncodeToString(w.Bytes()))
	} else {
		_, err = e.stdout.Write(w.Bytes())
	}
	return err
}
