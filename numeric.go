package lre

import (
	"encoding/hex"
	"math"
	"math/big"

	"github.com/positeral/lre/internal/hexdigit"
)

// maxBigIntPayloadBytes is the overflow ceiling from spec §4.2/§6: the
// LLLL field is four hex digits, so the largest representable payload is
// 0xffff bytes (roughly 2^524280 in magnitude).
const maxBigIntPayloadBytes = 0xffff

// complementInPlace nine's-complements every byte of b, which must already
// hold only lowercase hex digits (e.g. just written by WriteHex). Shared by
// Writer.WriteComplementedHex and the big-integer/medium encoders below.
func complementInPlace(b []byte) {
	hexdigit.ComplementInto(b, b)
}

// writeNumber encodes v, which must have Kind() == KindInt or KindFloat,
// dispatching to the medium (M) or big-integer (U/D) layout, or to the
// infinity sentinels for non-finite floats.
func writeNumber(w *Writer, v Value) error {
	if v.Kind() == KindFloat {
		f := v.f
		switch {
		case math.IsNaN(f):
			return ErrNaN
		case math.IsInf(f, 1):
			w.WriteByte(tagPosInf)
			return nil
		case math.IsInf(f, -1):
			w.WriteByte(tagNegInf)
			return nil
		case f == 0: // covers both +0.0 and -0.0
			w.WriteString("M00+")
			return nil
		}
		intPart, fracNumerator, fracDigits := decomposeFloat(f)
		if intBytes := intPart.Bytes(); fracDigits == 0 && len(intBytes) >= 8 {
			// Same layout as an Int of equal value (see the KindInt path).
			return writeBigInt(w, math.Signbit(f), intBytes)
		}
		return writeMedium(w, math.Signbit(f), intPart, fracNumerator, fracDigits)
	}

	// KindInt.
	n := v.i
	if n.Sign() == 0 {
		w.WriteString("M00+")
		return nil
	}
	mag := new(big.Int).Abs(n)
	magBytes := mag.Bytes()
	neg := n.Sign() < 0
	if len(magBytes) < 8 {
		return writeMedium(w, neg, mag, nil, 0)
	}
	return writeBigInt(w, neg, magBytes)
}

// decomposeFloat splits the magnitude of a nonzero finite float f into an
// exact integer part and an exact binary fraction, expressed as fracDigits
// hex digits of fracNumerator (so the fractional value is
// fracNumerator / 16^fracDigits). math.Frexp gives frac in [0.5, 1) and an
// exponent such that f == frac * 2^exp; scaling frac by 2^53 yields the
// exact 53-bit mantissa integer, after which everything is exact integer
// arithmetic. Grounded on the teacher's float64Codec reasoning (float.go)
// that every finite float64 is an exact dyadic rational.
func decomposeFloat(f float64) (intPart *big.Int, fracNumerator *big.Int, fracDigits int) {
	f = math.Abs(f)
	frac, exp := math.Frexp(f)
	const mantissaBits = 53
	mantissa := new(big.Int).SetUint64(uint64(frac * (1 << mantissaBits)))
	binExp2 := exp - mantissaBits

	if binExp2 >= 0 {
		intPart = new(big.Int).Lsh(mantissa, uint(binExp2))
		return intPart, big.NewInt(0), 0
	}

	shift := uint(-binExp2)
	intPart = new(big.Int).Rsh(mantissa, shift)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), shift), big.NewInt(1))
	remainder := new(big.Int).And(mantissa, mask)
	if remainder.Sign() == 0 {
		return intPart, big.NewInt(0), 0
	}

	// Align the remainder to a whole number of hex digits (4-bit groups) so
	// that it can be read off directly as fracDigits hex characters.
	fracDigits = (int(shift) + 3) / 4
	pad := uint(fracDigits*4) - shift
	fracNumerator = new(big.Int).Lsh(remainder, pad)
	return intPart, fracNumerator, fracDigits
}

// writeMedium writes the TAG EE MMMM… [FFFF…] TERM layout of spec §4.2.
// See DESIGN.md, "Open Question 2", for why this reading of §4.2 is used
// instead of the one literal example (scenario 6's "M01+") that no
// self-consistent layout can reproduce, and "Open Question 1, addendum"
// for why neg selects tagNegMedium rather than reusing tagMedium with a
// complemented payload: a shared tag would make every complemented
// negative payload compare against tagMedium's own "00" zero payload and
// its uncomplemented positive payloads using plain hex-digit order, which
// can never place every negative below zero (nines-complement of "00" is
// "ff", sorting above, not below, zero's own "00"). A distinct tag that is
// byte-less than tagMedium settles the sign boundary before any payload
// byte is even compared.
func writeMedium(w *Writer, neg bool, intPart *big.Int, fracNumerator *big.Int, fracDigits int) error {
	intBytes := intPart.Bytes()
	if len(intBytes) > 0xff {
		// A medium integer part is only ever < 8 bytes (caller already
		// routes 8-byte-or-larger integers to writeBigInt); a float's
		// integer part is bounded by float64's exponent range to well
		// under this.
		return ErrOverflow
	}

	start := w.Len()
	if neg {
		w.WriteByte(tagNegMedium)
	} else {
		w.WriteByte(tagMedium)
	}
	w.WriteHex([]byte{byte(len(intBytes))})
	w.WriteHex(intBytes)
	if fracDigits > 0 {
		fracHex := make([]byte, fracDigits)
		renderFracHex(fracHex, fracNumerator)
		fracHex = trimTrailingZeroDigits(fracHex)
		w.WriteBytes(fracHex)
	}
	if neg {
		complementInPlace(w.Bytes()[start+1:]) // leave the tag byte itself alone
		w.WriteByte(termNeg)
	} else {
		w.WriteByte(termPos)
	}
	return nil
}

// renderFracHex writes exactly len(dst) hex digits of n, most significant
// digit first, into dst. n must fit in len(dst)*4 bits.
func renderFracHex(dst []byte, n *big.Int) {
	byteLen := (len(dst) + 1) / 2
	buf := make([]byte, byteLen)
	n.FillBytes(buf)
	full := make([]byte, hex.EncodedLen(byteLen))
	hex.Encode(full, buf)
	// full has an even number of digits; dst may want an odd count (when
	// fracDigits is odd), so take the low len(dst) digits.
	copy(dst, full[len(full)-len(dst):])
}

// trimTrailingZeroDigits drops trailing '0' hex digits, returning an empty
// slice if every digit is zero.
func trimTrailingZeroDigits(digits []byte) []byte {
	i := len(digits)
	for i > 0 && digits[i-1] == '0' {
		i--
	}
	return digits[:i]
}

// writeBigInt writes the TAG LLLL HHHH… TERM layout of spec §4.2 for
// magnitudes of 8 bytes or more.
func writeBigInt(w *Writer, neg bool, magBytes []byte) error {
	if len(magBytes) > maxBigIntPayloadBytes {
		return ErrOverflow
	}
	start := w.Len()
	if neg {
		w.WriteByte(tagNegBigInt)
	} else {
		w.WriteByte(tagPosBigInt)
	}
	length := uint16(len(magBytes))
	w.WriteHex([]byte{byte(length >> 8), byte(length)})
	w.WriteHex(magBytes)
	if neg {
		complementInPlace(w.Bytes()[start+1:])
		w.WriteByte(termNeg)
	} else {
		w.WriteByte(termPos)
	}
	return nil
}

// readNumber decodes a medium or big-integer token. tag is the
// already-peeked first byte; it must be tagMedium, tagNegMedium,
// tagNegBigInt, or tagPosBigInt.
func readNumber(r *Reader, tag byte) (Value, error) {
	if _, err := r.ReadByte(); err != nil { // consume the tag
		return Value{}, err
	}
	switch tag {
	case tagNegBigInt, tagPosBigInt:
		return readBigInt(r, tag == tagNegBigInt)
	case tagMedium, tagNegMedium:
		return readMedium(r, tag == tagNegMedium)
	default:
		return Value{}, unknownTagError{tag}
	}
}

// scanTerminatedPayload reads bytes up to and including the next '+' or
// '~', returning the payload (excluding the terminator) and whether the
// terminator was the negative one. A payload byte that is not a lowercase
// hex digit is reported as ErrBadHexDigit.
func scanTerminatedPayload(r *Reader) (payload []byte, neg bool, err error) {
	rest := r.Remaining()
	for i, b := range rest {
		switch b {
		case termPos:
			if _, err := r.Advance(i + 1); err != nil {
				return nil, false, err
			}
			return rest[:i], false, nil
		case termNeg:
			if _, err := r.Advance(i + 1); err != nil {
				return nil, false, err
			}
			return rest[:i], true, nil
		default:
			if !hexdigit.IsHexDigit(b) {
				return nil, false, wrapf(ErrBadHexDigit, "at offset %d: %#02x in numeric payload", r.Pos()+i, b)
			}
		}
	}
	return nil, false, wrapf(ErrUnterminated, "at offset %d: no terminator found", r.Pos())
}

func readBigInt(r *Reader, neg bool) (Value, error) {
	payload, terminatorNeg, err := scanTerminatedPayload(r)
	if err != nil {
		return Value{}, err
	}
	if terminatorNeg != neg {
		return Value{}, wrapf(ErrUnterminated, "at offset %d: tag/terminator sign mismatch", r.Pos())
	}
	if neg {
		payload = hexdigit.ComplementAll(payload)
	}
	if len(payload) < 4 {
		return Value{}, wrapf(ErrBadHexDigit, "at offset %d: big-integer length field too short", r.Pos())
	}
	lenBytes, err := decodeHex(payload[:4])
	if err != nil {
		return Value{}, err
	}
	length := int(lenBytes[0])<<8 | int(lenBytes[1])
	magHex := payload[4:]
	if len(magHex) != length*2 {
		return Value{}, wrapf(ErrBadHexDigit, "at offset %d: big-integer length field disagrees with payload", r.Pos())
	}
	magBytes, err := decodeHex(magHex)
	if err != nil {
		return Value{}, err
	}
	n := new(big.Int).SetBytes(magBytes)
	if neg {
		n.Neg(n)
	}
	return BigInt(n), nil
}

func readMedium(r *Reader, negTag bool) (Value, error) {
	payload, negTerm, err := scanTerminatedPayload(r)
	if err != nil {
		return Value{}, err
	}
	if negTerm != negTag {
		return Value{}, wrapf(ErrUnterminated, "at offset %d: medium tag/terminator sign mismatch", r.Pos())
	}
	neg := negTag
	if len(payload) == 0 {
		return Value{}, wrapf(ErrBadHexDigit, "at offset %d: medium number missing EE field", r.Pos())
	}
	if neg {
		payload = hexdigit.ComplementAll(payload)
	}
	if len(payload) < 2 {
		return Value{}, wrapf(ErrBadHexDigit, "at offset %d: medium number EE field too short", r.Pos())
	}
	eeBytes, err := decodeHex(payload[:2])
	if err != nil {
		return Value{}, err
	}
	intDigits := int(eeBytes[0]) * 2
	rest := payload[2:]
	if len(rest) < intDigits {
		return Value{}, wrapf(ErrBadHexDigit, "at offset %d: medium number mantissa shorter than EE implies", r.Pos())
	}
	intHex := rest[:intDigits]
	fracHex := rest[intDigits:]

	var intPart big.Int
	if len(intHex) > 0 {
		intBytes, err := decodeHex(intHex)
		if err != nil {
			return Value{}, err
		}
		intPart.SetBytes(intBytes)
	}

	if len(fracHex) == 0 {
		if neg {
			intPart.Neg(&intPart)
		}
		return BigInt(&intPart), nil
	}

	f, err := reconstructFloat(neg, &intPart, fracHex)
	if err != nil {
		return Value{}, err
	}
	return Float(f), nil
}

// reconstructFloat rebuilds the exact float64 value from its integer part
// and fracDigits hex digits of fractional mantissa, using big.Float
// arithmetic that is exact at every step (SetMantExp only ever shifts a
// binary exponent).
func reconstructFloat(neg bool, intPart *big.Int, fracHex []byte) (float64, error) {
	for _, b := range fracHex {
		if !hexdigit.IsHexDigit(b) {
			return 0, wrapf(ErrBadHexDigit, "invalid fractional digit %q", b)
		}
	}
	const prec = 300
	bf := new(big.Float).SetPrec(prec).SetInt(intPart)

	fracBytes := fracHex
	if len(fracBytes)%2 != 0 {
		fracBytes = append(append([]byte{}, fracBytes...), '0')
	}
	raw, err := decodeHex(fracBytes)
	if err != nil {
		return 0, err
	}
	var fracInt big.Int
	fracInt.SetBytes(raw)
	fracBF := new(big.Float).SetPrec(prec).SetInt(&fracInt)
	fracBF.SetMantExp(fracBF, -4*len(fracBytes))
	bf.Add(bf, fracBF)
	if neg {
		bf.Neg(bf)
	}
	f, _ := bf.Float64()
	return f, nil
}

func decodeHex(src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, wrapf(ErrOddHexLength, "got %d hex digits", len(src))
	}
	dst := make([]byte, hex.DecodedLen(len(src)))
	if _, err := hex.Decode(dst, src); err != nil {
		return nil, wrapf(ErrBadHexDigit, "%v", err)
	}
	return dst, nil
}
