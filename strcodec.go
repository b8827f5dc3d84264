package lre

import (
	"unicode/utf8"

	"github.com/positeral/lre/internal/hexdigit"
)

// writeString encodes v, which must have Kind() == KindBytes or KindText,
// using the shared X HH… {H|L} + layout of spec §4.3. Grounded on the
// teacher's bytesCodec/stringCodec (bytes.go, string.go), which likewise
// share nearly all of their logic and differ only at the type boundary.
func writeString(w *Writer, v Value) {
	w.WriteByte(tagString)
	var kind byte
	if v.Kind() == KindBytes {
		w.WriteHex(v.bytes)
		kind = kindBytes
	} else {
		w.WriteHex([]byte(v.text))
		kind = kindUnicode
	}
	w.WriteByte(kind)
	w.WriteByte(termPos)
}

// readString decodes a string token. tag is the already-peeked first byte
// and must be tagString.
func readString(r *Reader) (Value, error) {
	if _, err := r.ReadByte(); err != nil { // consume 'X'
		return Value{}, err
	}
	// Hex digits never collide with the H/L suffix bytes, so the payload is
	// exactly the run of hex digits preceding the first non-hex-digit byte.
	rest := r.Remaining()
	i := 0
	for i < len(rest) && hexdigit.IsHexDigit(rest[i]) {
		i++
	}
	if i+1 >= len(rest) || rest[i+1] != termPos {
		return Value{}, wrapf(ErrUnterminated, "at offset %d: string token missing H+/L+ terminator", r.Pos())
	}
	kind := rest[i]
	if kind != kindBytes && kind != kindUnicode {
		return Value{}, wrapf(ErrUnknownTag, "at offset %d: expected %q or %q, got %#02x", r.Pos(), kindBytes, kindUnicode, kind)
	}
	hexPayload := rest[:i]
	if _, err := r.Advance(i + 2); err != nil {
		return Value{}, err
	}
	raw, err := decodeHex(hexPayload)
	if err != nil {
		return Value{}, err
	}
	if kind == kindBytes {
		return Bytes(raw), nil
	}
	if !utf8.Valid(raw) {
		return Value{}, ErrInvalidUTF8
	}
	return Text(string(raw)), nil
}
