package cbor

import (
	"errors"
	"strconv"
)

const resumableDefault = false

var (
	// ErrInsufficientData is returned when the
	// slice being decoded is too short to
	// contain the argument or payload an item declares
	ErrInsufficientData error = errShort{}

	// ErrInvalidLength is returned for the reserved additional info
	// values 28-30 and for indefinite-length items (31), which this
	// package does not support.
	ErrInvalidLength error = errInvalidLength{}

	// ErrUnsupportedWidth is returned when an 8-byte argument is read or
	// written by a build without extended integer support (see Extended64).
	ErrUnsupportedWidth error = errUnsupportedWidth{}

	// ErrInvalidType is matched by every TypeError.
	ErrInvalidType error = errInvalidType{}

	// ErrMaxDepthExceeded is returned when rendering nests deeper than
	// the recursion limit.
	ErrMaxDepthExceeded error = errors.New("cbor: max depth exceeded")

	// ErrShortBuffer is returned when a destination buffer cannot hold
	// the encoded item or the decoded payload. Nothing is written.
	ErrShortBuffer error = errShortBuffer{}
)

// Error is the interface satisfied
// by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable returns whether
	// or not the error means that
	// the stream of data is malformed
	// and the information is unrecoverable.
	Resumable() bool
}

// contextError allows Error instances to be enhanced with additional
// context about their origin.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	out := e
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		out = e.cause
	}
	return out
}

// Resumable returns whether or not the error means that the stream of data is
// malformed and the information is unrecoverable.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context that allows the part of the
// serialized data that caused the problem to be identified. Underlying errors
// can be retrieved using Cause()
//
// The input error is not modified - a new error should be returned.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func ctxString(ctx []any) string {
	out := ""
	for idx, c := range ctx {
		if idx > 0 {
			out += "/"
		}
		switch v := c.(type) {
		case string:
			out += v
		case int:
			out += strconv.Itoa(v)
		case uint64:
			out += strconv.FormatUint(v, 10)
		default:
			out += "?"
		}
	}
	return out
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	} else {
		return add
	}
}

func quoteStr(s string) string { return strconv.Quote(s) }

// errWrapped allows arbitrary errors passed to WrapError to be enhanced with
// context and unwrapped with Cause()
type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	} else {
		return e.cause.Error()
	}
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// Unwrap returns the cause.
func (e errWrapped) Unwrap() error { return e.cause }

type errShort struct{}

func (e errShort) Error() string   { return "cbor: insufficient data" }
func (e errShort) Resumable() bool { return false }

type errInvalidLength struct{}

func (e errInvalidLength) Error() string   { return "cbor: invalid length" }
func (e errInvalidLength) Resumable() bool { return false }

type errUnsupportedWidth struct{}

func (e errUnsupportedWidth) Error() string   { return "cbor: 64-bit integers are not supported" }
func (e errUnsupportedWidth) Resumable() bool { return false }

type errInvalidType struct{}

func (e errInvalidType) Error() string   { return "cbor: invalid data type" }
func (e errInvalidType) Resumable() bool { return true }

type errShortBuffer struct{}

func (e errShortBuffer) Error() string   { return "cbor: buffer too small" }
func (e errShortBuffer) Resumable() bool { return true }

// InvalidAdditionalInfoError is returned when an initial byte carries
// additional info that has no definite-length meaning (28-31).
// This kind of error is unrecoverable.
type InvalidAdditionalInfoError struct {
	Major uint8
	Info  uint8
}

// Error implements the error interface
func (i InvalidAdditionalInfoError) Error() string {
	return "cbor: invalid length: additional info " + strconv.Itoa(int(i.Info)) + " for major type " + strconv.Itoa(int(i.Major))
}

// Resumable returns 'false' for InvalidAdditionalInfoErrors
func (i InvalidAdditionalInfoError) Resumable() bool { return false }

// Is reports whether target is ErrInvalidLength.
func (i InvalidAdditionalInfoError) Is(target error) bool { return target == ErrInvalidLength }

// IntOverflow is returned when a call
// would downcast an integer to a type
// with too few bits to hold its value.
type IntOverflow struct {
	Value         uint64 // magnitude as encoded on the wire
	Negative      bool   // whether the item was a negative integer
	FailedBitsize int    // the bit size that the value could not fit into
	ctx           string
}

// Error implements the error interface
func (i IntOverflow) Error() string {
	var str string
	if i.Negative {
		str = "cbor: -1-" + strconv.FormatUint(i.Value, 10) + " overflows int" + strconv.Itoa(i.FailedBitsize)
	} else {
		str = "cbor: " + strconv.FormatUint(i.Value, 10) + " overflows int" + strconv.Itoa(i.FailedBitsize)
	}
	if i.ctx != "" {
		str += " at " + i.ctx
	}
	return str
}

// Resumable is always 'true' for overflows
func (i IntOverflow) Resumable() bool { return true }

func (i IntOverflow) withContext(ctx string) error { i.ctx = addCtx(i.ctx, ctx); return i }

// A TypeError is returned when a particular
// accessor is unsuitable for the token
// the Scanner currently holds.
type TypeError struct {
	Method  Type // Type expected by method
	Encoded Type // Type actually decoded

	ctx string
}

// Error implements the error interface
func (t TypeError) Error() string {
	out := "cbor: invalid data type: attempted to read " + quoteStr(t.Encoded.String()) + " with method for " + quoteStr(t.Method.String())
	if t.ctx != "" {
		out += " at " + t.ctx
	}
	return out
}

// Resumable returns 'true' for TypeErrors
func (t TypeError) Resumable() bool { return true }

// Is reports whether target is ErrInvalidType.
func (t TypeError) Is(target error) bool { return target == ErrInvalidType }

func (t TypeError) withContext(ctx string) error { t.ctx = addCtx(t.ctx, ctx); return t }
