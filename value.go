package lre

import (
	"math/big"
)

// Kind identifies which variant of the value universe a Value holds.
type Kind uint8

const (
	// KindNegInf is negative infinity, the smallest value in the universe.
	KindNegInf Kind = iota
	// KindInt is an arbitrary-precision signed integer.
	KindInt
	// KindFloat is a finite float64. NaN is never a valid KindFloat payload
	// once a Value reaches Pack, which rejects it with ErrNaN; see Float.
	KindFloat
	// KindBytes is an uninterpreted byte string.
	KindBytes
	// KindText is a Unicode string.
	KindText
	// KindList is an ordered, possibly nested sequence of Values.
	KindList
	// KindPosInf is positive infinity, the largest finite-adjacent value.
	KindPosInf
)

// Value is the closed, tagged-variant input and output type for this
// package: every value this codec can encode or decode is one of the
// seven Kinds above. Value is immutable once constructed; the As*
// accessors never modify the receiver.
type Value struct {
	kind  Kind
	i     *big.Int
	f     float64
	bytes []byte
	text  string
	list  []Value
}

// Int returns a Value holding the signed integer i.
func Int(i int64) Value {
	return Value{kind: KindInt, i: big.NewInt(i)}
}

// BigInt returns a Value holding the arbitrary-precision signed integer i.
// i is not retained; BigInt copies it.
func BigInt(i *big.Int) Value {
	return Value{kind: KindInt, i: new(big.Int).Set(i)}
}

// Float returns a Value holding the float64 f. f may be NaN at
// construction time, but encoding it with Pack will fail with ErrNaN;
// construction itself never fails (mirroring the teacher's stance that a
// Codec's Get must decode whatever its Append can produce, not that every
// invalid value must be rejected at the earliest possible moment).
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Bytes returns a Value holding an uninterpreted byte string. b is not
// retained; Bytes copies it.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, bytes: cp}
}

// Text returns a Value holding a Unicode string.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// List returns a Value holding an ordered sequence of Values, which may
// itself contain nested lists. vs is not retained; List copies the slice
// header's contents (not each element, which is already immutable).
func List(vs ...Value) Value {
	cp := make([]Value, len(vs))
	copy(cp, vs)
	return Value{kind: KindList, list: cp}
}

// NegInf returns the negative-infinity Value.
func NegInf() Value { return Value{kind: KindNegInf} }

// PosInf returns the positive-infinity Value.
func PosInf() Value { return Value{kind: KindPosInf} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns v's integer payload and true if v.Kind() == KindInt.
// The returned *big.Int is owned by the caller.
func (v Value) AsInt() (*big.Int, bool) {
	if v.kind != KindInt {
		return nil, false
	}
	return new(big.Int).Set(v.i), true
}

// AsFloat returns v's float payload and true if v.Kind() == KindFloat.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// AsBytes returns v's byte-string payload and true if v.Kind() == KindBytes.
// The returned slice is owned by the caller.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	cp := make([]byte, len(v.bytes))
	copy(cp, v.bytes)
	return cp, true
}

// AsText returns v's text payload and true if v.Kind() == KindText.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// AsList returns v's element sequence and true if v.Kind() == KindList.
// The returned slice is owned by the caller.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	cp := make([]Value, len(v.list))
	copy(cp, v.list)
	return cp, true
}
