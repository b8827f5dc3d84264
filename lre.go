package lre

// LRE is an encoder/decoder instance holding an optional preallocated
// output buffer, grounded on spec §4.5/§6's "LRE(preallocated_size)"
// constructor and on the teacher's package-level convenience constructors
// (lexy.Bool(), lexy.Int64(), ...) which wrap an internal Codec value for
// the common case while still allowing a configured instance.
//
// An LRE value is not safe for concurrent use: its Writer is shared
// exclusive state across the calls made on one instance, matching spec
// §5 ("concurrent use of the same instance from multiple threads is not
// supported"). Create one LRE per goroutine, or use the package-level
// Pack/Load functions, which allocate a fresh instance per call.
type LRE struct {
	prealloc int
	w        *Writer
}

// New returns an LRE whose internal buffer is preallocated to hold at
// least preallocatedSize bytes across Pack calls. preallocatedSize == 0
// disables preallocation.
func New(preallocatedSize int) *LRE {
	return &LRE{prealloc: preallocatedSize}
}

// Pack encodes value into this instance's buffer and returns its
// contents. The returned slice aliases the instance's internal buffer and
// is only valid until the next call to Pack on the same instance.
func (l *LRE) Pack(value Value) ([]byte, error) {
	if l.w == nil {
		l.w = NewWriter(l.prealloc)
	}
	l.w.Reset()
	if err := encode(l.w, value, 0); err != nil {
		return nil, err
	}
	return l.w.Bytes(), nil
}

// Load decodes buf, returning the single decoded value if buf held
// exactly one top-level token, or a KindList Value holding the ordered
// sequence of decoded tokens otherwise (spec §4.5: "if exactly one value
// was decoded, returns it; otherwise returns the ordered sequence").
func (l *LRE) Load(buf []byte) (Value, error) {
	values, err := decodeAll(NewReader(buf))
	if err != nil {
		return Value{}, err
	}
	if len(values) == 1 {
		return values[0], nil
	}
	return List(values...), nil
}

// Pack encodes value using a fresh, non-preallocating LRE instance. This
// is a convenience for the common case; see LRE.Pack for the configured
// form.
func Pack(value Value) ([]byte, error) {
	return New(0).Pack(value)
}

// Load decodes buf using a fresh LRE instance. See LRE.Load.
func Load(buf []byte) (Value, error) {
	return New(0).Load(buf)
}
