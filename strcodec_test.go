package lre_test

import (
	"errors"
	"testing"

	"github.com/positeral/lre"
)

// Concrete scenarios 1-3 from spec §8, byte-exact.
func TestStringEncodingConcrete(t *testing.T) {
	t.Parallel()
	testPack(t, []testCase{
		{"ascii text", lre.Text("abcdef"), []byte("X616263646566L+")},
		{"unicode text", lre.Text("china愣!"), []byte("X6368696e61e684a321L+")},
		{"byte string", lre.Bytes([]byte{0x01, 0x02}), []byte("X0102H+")},
	})
}

func TestStringEmpty(t *testing.T) {
	t.Parallel()
	testPack(t, []testCase{
		{"empty text", lre.Text(""), []byte("XL+")},
		{"empty bytes", lre.Bytes(nil), []byte("XH+")},
	})
}

func TestStringRoundTrip(t *testing.T) {
	t.Parallel()
	testRoundTrip(t, []testCase{
		{"ascii", lre.Text("hello world"), nil},
		{"unicode", lre.Text("日本語"), nil},
		{"empty text", lre.Text(""), nil},
		{"bytes", lre.Bytes([]byte{0xde, 0xad, 0xbe, 0xef}), nil},
		{"empty bytes", lre.Bytes(nil), nil},
	})
}

// Scenario 9/10 from spec §8: shorter strings sort above longer ones
// sharing a prefix, and ordinary lexicographic prefixes sort as expected.
func TestStringOrdering(t *testing.T) {
	t.Parallel()
	cases := [][2]string{
		{"91221", "912200000"},
		{"124", "123"},
	}
	for _, c := range cases {
		bigger, smaller := c[0], c[1]
		t.Run(bigger+">"+smaller, func(t *testing.T) {
			t.Parallel()
			a, err := lre.Pack(lre.Text(bigger))
			if err != nil {
				t.Fatal(err)
			}
			b, err := lre.Pack(lre.Text(smaller))
			if err != nil {
				t.Fatal(err)
			}
			if string(a) <= string(b) {
				t.Fatalf("encode(%q) = %q, want > encode(%q) = %q", bigger, a, smaller, b)
			}
		})
	}
}

func TestStringKindOrdering(t *testing.T) {
	t.Parallel()
	bytesEnc, err := lre.Pack(lre.Bytes([]byte("same")))
	if err != nil {
		t.Fatal(err)
	}
	textEnc, err := lre.Pack(lre.Text("same"))
	if err != nil {
		t.Fatal(err)
	}
	if string(bytesEnc) >= string(textEnc) {
		t.Fatalf("byte-string encoding %q should sort below unicode encoding %q", bytesEnc, textEnc)
	}
}

func TestOddHexLengthDecode(t *testing.T) {
	t.Parallel()
	// A well-formed token has an even count of hex digits before its H/L
	// suffix; "X1H+" has one, which decodeHex must reject distinctly from
	// a plain bad-hex-digit failure.
	if _, err := lre.Load([]byte("X1H+")); !errors.Is(err, lre.ErrOddHexLength) {
		t.Fatalf("expected ErrOddHexLength decoding an odd number of hex digits, got %v", err)
	}
}

func TestInvalidUTF8Decode(t *testing.T) {
	t.Parallel()
	buf, err := lre.Pack(lre.Bytes([]byte{0xff, 0xfe}))
	if err != nil {
		t.Fatal(err)
	}
	// Flip the kind suffix from byte-string to unicode, producing an
	// invalid-UTF-8 unicode token.
	buf[len(buf)-2] = 'L'
	if _, err := lre.Load(buf); err == nil {
		t.Fatal("expected an error decoding invalid UTF-8 as unicode text")
	}
}
