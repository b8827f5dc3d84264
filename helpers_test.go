package lre_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/positeral/lre"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCase pairs an input Value with its expected encoded bytes, the same
// table shape the teacher uses throughout its own *_test.go files.
type testCase struct {
	name string
	in   lre.Value
	want []byte
}

// testPack runs every case through lre.Pack, asserting the exact encoding.
func testPack(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got, err := lre.Pack(c.in)
			require.NoError(t, err)
			assert.Equal(t, string(c.want), string(got), "encode(%v)", c.name)
		})
	}
}

// testRoundTrip packs then loads every case, asserting the decoded value
// is the input value (see assertSameValue).
func testRoundTrip(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			buf, err := lre.Pack(c.in)
			require.NoError(t, err)
			got, err := lre.Load(buf)
			require.NoError(t, err)
			assertSameValue(t, c.in, got)
		})
	}
}

// assertSameValue asserts that got has the same kind and payload as want,
// except for floats whose encoding is shared with another kind (see
// DESIGN.md, "Int/float collapse on decode"): a whole-valued float must
// decode as a KindInt of exactly equal value, and an infinite float as
// KindPosInf or KindNegInf.
func assertSameValue(t *testing.T, want, got lre.Value) {
	t.Helper()
	if wf, ok := want.AsFloat(); ok && got.Kind() != lre.KindFloat {
		switch {
		case math.IsInf(wf, 1):
			require.Equal(t, lre.KindPosInf, got.Kind())
		case math.IsInf(wf, -1):
			require.Equal(t, lre.KindNegInf, got.Kind())
		default:
			require.Equal(t, lre.KindInt, got.Kind())
			wi, acc := new(big.Float).SetFloat64(wf).Int(nil)
			require.Equal(t, big.Exact, acc)
			gi, _ := got.AsInt()
			assert.Equal(t, 0, wi.Cmp(gi))
		}
		return
	}
	require.Equal(t, want.Kind(), got.Kind())
	switch want.Kind() {
	case lre.KindInt:
		wi, _ := want.AsInt()
		gi, _ := got.AsInt()
		assert.Equal(t, 0, wi.Cmp(gi))
	case lre.KindFloat:
		wf, _ := want.AsFloat()
		gf, _ := got.AsFloat()
		assert.Equal(t, wf, gf)
	case lre.KindBytes:
		wb, _ := want.AsBytes()
		gb, _ := got.AsBytes()
		assert.Equal(t, wb, gb)
	case lre.KindText:
		wt, _ := want.AsText()
		gt, _ := got.AsText()
		assert.Equal(t, wt, gt)
	case lre.KindList:
		wl, _ := want.AsList()
		gl, _ := got.AsList()
		require.Len(t, gl, len(wl))
		for i := range wl {
			assertSameValue(t, wl[i], gl[i])
		}
	}
}
