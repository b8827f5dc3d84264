package lre_test

import (
	"math/big"
	"testing"

	"github.com/positeral/lre"
	"github.com/stretchr/testify/assert"
)

func TestValueAccessorsMatchKind(t *testing.T) {
	t.Parallel()
	values := []lre.Value{
		lre.NegInf(),
		lre.PosInf(),
		lre.Int(5),
		lre.BigInt(big.NewInt(-5)),
		lre.Float(1.5),
		lre.Bytes([]byte("hi")),
		lre.Text("hi"),
		lre.List(lre.Int(1), lre.Int(2)),
	}
	kinds := []lre.Kind{
		lre.KindNegInf, lre.KindPosInf, lre.KindInt, lre.KindInt,
		lre.KindFloat, lre.KindBytes, lre.KindText, lre.KindList,
	}
	for i, v := range values {
		assert.Equal(t, kinds[i], v.Kind())
	}

	_, ok := values[2].AsFloat()
	assert.False(t, ok, "an int Value should not report an AsFloat")
	_, ok = values[4].AsInt()
	assert.False(t, ok, "a float Value should not report an AsInt")
}

// Mutating the caller's backing array after construction must not affect
// the Value: constructors copy their input.
func TestValueConstructorsCopy(t *testing.T) {
	t.Parallel()
	b := []byte{1, 2, 3}
	v := lre.Bytes(b)
	b[0] = 0xff
	got, _ := v.AsBytes()
	assert.Equal(t, []byte{1, 2, 3}, got)

	n := big.NewInt(42)
	vi := lre.BigInt(n)
	n.SetInt64(0)
	got2, _ := vi.AsInt()
	assert.Equal(t, int64(42), got2.Int64())
}
