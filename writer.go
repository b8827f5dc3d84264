package lre

import "encoding/hex"

// Writer is an append-only byte buffer with a bounded growth policy,
// grounded on the teacher's extend/copyAll growth helpers (lexy.go) but
// adapted into an owned, resettable object: the Facade needs something
// that can hold a preallocation size and be reused across Pack calls,
// which the teacher's stateless free functions never needed because they
// never owned a buffer themselves.
type Writer struct {
	buf    []byte
	prealloc int
}

// NewWriter returns a Writer whose buffer is preallocated to hold at
// least prealloc bytes. prealloc == 0 disables preallocation, matching
// spec §4.5/§6's preallocated_size = 0 convention.
func NewWriter(prealloc int) *Writer {
	w := &Writer{prealloc: prealloc}
	if prealloc > 0 {
		w.buf = make([]byte, 0, prealloc)
	}
	return w
}

// Reset truncates the buffer to length 0, retaining its capacity.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// Bytes returns the buffer's current contents. The returned slice aliases
// the Writer's internal storage and is only valid until the next call
// that mutates the Writer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteBytes appends b as-is.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteString appends s as-is.
func (w *Writer) WriteString(s string) {
	w.buf = append(w.buf, s...)
}

// WriteHex appends the lowercase hex encoding of b, two ASCII characters
// per input byte, via encoding/hex (see DESIGN.md's dependency-footprint
// entry for why this one primitive is stdlib rather than a pack library).
func (w *Writer) WriteHex(b []byte) {
	start := len(w.buf)
	w.buf = append(w.buf, make([]byte, hex.EncodedLen(len(b)))...)
	hex.Encode(w.buf[start:], b)
}

// WriteComplementedHex appends the nine's-complement of the lowercase hex
// encoding of b: every hex digit d of hex.Encode(b) is written as 'f' - d.
// This is the digit form of the negative-magnitude payloads of the medium
// and big-integer encodings (spec §4.2), which those encoders produce by
// calling complementInPlace on the hex they have already written.
func (w *Writer) WriteComplementedHex(b []byte) {
	start := len(w.buf)
	w.WriteHex(b)
	complementInPlace(w.buf[start:])
}
