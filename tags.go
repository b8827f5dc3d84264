package lre

// Wire-format constants: the tag byte that opens every non-empty encoded
// token, the terminator bytes that close them, and the two string-kind
// suffix bytes. See DESIGN.md, "Open Question 1", for why the infinity
// tags are not the literal ASCII letters named in the originating
// specification, and "Open Question 1, addendum" for why negative finite
// numbers get their own tag (tagNegMedium) rather than sharing tagMedium
// with zero and positive finite numbers.
const (
	tagNegBigInt byte = 'D' // negative big integer; terminator termNeg
	tagNegMedium byte = 'E' // negative finite number (medium form); terminator termNeg
	tagMedium    byte = 'M' // zero or positive finite number (medium form); terminator termPos
	tagPosBigInt byte = 'U' // positive big integer; terminator termPos
	tagString    byte = 'X' // byte string or unicode string

	// tagNegInf and tagPosInf are single-byte, payload-free, terminator-free
	// tokens. Their values are sentinels chosen to sort correctly relative
	// to tagNegBigInt/tagNegMedium/tagMedium/tagPosBigInt/tagString; see
	// DESIGN.md.
	tagNegInf byte = 0x02
	tagPosInf byte = 0x56

	termPos byte = '+' // closes a non-negative medium/bigint token
	termNeg byte = '~' // closes a negative medium/bigint token

	kindBytes   byte = 'H' // byte-string suffix, precedes termPos
	kindUnicode byte = 'L' // unicode-string suffix, precedes termPos
)

// Tag ordering, least to greatest (unsigned byte comparison of the tag
// alone, before any payload is considered):
//
//	tagNegInf(0x02) < tagNegBigInt('D') < tagNegMedium('E') < tagMedium('M')
//	  < tagPosBigInt('U') < tagPosInf(0x56) < tagString('X')
//
// which realizes the §3 total order NegInf < NegBigInt < NegFinite < Zero
// <= PosFinite < PosBigInt < PosInf < String.

// isInfinityTag reports whether b is one of the two payload-free tokens.
func isInfinityTag(b byte) bool {
	return b == tagNegInf || b == tagPosInf
}
