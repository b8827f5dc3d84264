package lre

// maxDepth bounds recursion into nested lists, detecting self-referential
// or pathologically deep structures without a visited-set, per spec §4.4
// and §9's explicit preference for a depth cap over cycle tracking.
const maxDepth = 16

// encode walks v, dispatching scalars to the numeric or string codec and
// recursively flattening lists by concatenation, grounded on the teacher's
// sliceCodec.Append (slice.go): walk elements in order, delegate each to
// its element codec, concatenate. Unlike the teacher's slices, list
// elements here never need an explicit per-element terminator, because
// every non-empty scalar token this package produces is already
// self-terminating (spec §4.4).
func encode(w *Writer, v Value, depth int) error {
	if depth > maxDepth {
		return wrapf(ErrNestingTooDeep, "exceeded %d levels", maxDepth)
	}
	switch v.Kind() {
	case KindNegInf:
		w.WriteByte(tagNegInf)
		return nil
	case KindPosInf:
		w.WriteByte(tagPosInf)
		return nil
	case KindInt, KindFloat:
		return writeNumber(w, v)
	case KindBytes, KindText:
		writeString(w, v)
		return nil
	case KindList:
		for _, elem := range v.list {
			if err := encode(w, elem, depth+1); err != nil {
				return err
			}
		}
		return nil
	default:
		return wrapf(ErrTrailingGarbage, "unrecognized value kind %d", v.Kind())
	}
}

// decodeOne decodes a single top-level token at the reader's current
// position, dispatching on its leading tag byte.
func decodeOne(r *Reader) (Value, error) {
	tag, ok := r.Peek()
	if !ok {
		return Value{}, wrapf(ErrUnterminated, "at offset %d: expected a value", r.Pos())
	}
	switch tag {
	case tagNegInf:
		_, _ = r.ReadByte()
		return NegInf(), nil
	case tagPosInf:
		_, _ = r.ReadByte()
		return PosInf(), nil
	case tagNegBigInt, tagNegMedium, tagMedium, tagPosBigInt:
		return readNumber(r, tag)
	case tagString:
		return readString(r)
	default:
		return Value{}, unknownTagError{tag}
	}
}

// decodeAll decodes every top-level token in r until the input is
// exhausted, returning them in order. An empty input decodes to an empty
// slice, matching spec §3's "empty sequences encode to the empty byte
// string."
func decodeAll(r *Reader) ([]Value, error) {
	var values []Value
	for !r.Done() {
		v, err := decodeOne(r)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
