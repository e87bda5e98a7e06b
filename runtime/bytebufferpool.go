package cbor

import (
	"encoding/hex"
	"strconv"
	"sync"
)

// renderBuf accumulates diagnostic text. Buffers come from a pool;
// one that grew past maxPooledRender is left to the GC instead of being
// returned, so a single huge rendering does not pin its memory.
type renderBuf struct {
	b []byte
}

const maxPooledRender = 64 << 10

var renderPool = sync.Pool{New: func() any { return &renderBuf{b: make([]byte, 0, 256)} }}

func getRenderBuf() *renderBuf {
	rb := renderPool.Get().(*renderBuf)
	rb.b = rb.b[:0]
	return rb
}

func putRenderBuf(rb *renderBuf) {
	if cap(rb.b) > maxPooledRender {
		return
	}
	renderPool.Put(rb)
}

func (rb *renderBuf) str(s string)      { rb.b = append(rb.b, s...) }
func (rb *renderBuf) char(c byte)       { rb.b = append(rb.b, c) }
func (rb *renderBuf) uint(u uint64)     { rb.b = strconv.AppendUint(rb.b, u, 10) }
func (rb *renderBuf) hexBytes(p []byte) { rb.b = hex.AppendEncode(rb.b, p) }

// quoted appends p as a Go-syntax double-quoted string, which matches
// diagnostic notation for printable text.
func (rb *renderBuf) quoted(p []byte) { rb.b = strconv.AppendQuote(rb.b, UnsafeString(p)) }

func (rb *renderBuf) String() string { return string(rb.b) }
