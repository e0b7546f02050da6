package reltab

import "math"

// Order-preserving byte encoding for values, used both as the composite
// key of the primary-key index and as the tuple fingerprint of the set
// operators. bytes.Compare over two encoded keys matches the element-wise
// value ordering; the kind tag doubles as a deterministic tie-break when
// kinds ever differ at the same position.
//
// Integers get their sign bit flipped and are written big-endian. Floats
// use the usual IEEE trick: flip everything for negatives, flip only the
// sign bit for positives. Negative zero and every NaN payload are
// canonicalized first so that encoded equality matches Value.Equal.
// Strings escape NUL (00 -> 00 FF) and end with a plain 00 terminator,
// so a string always sorts before its extensions.

func appendValueKey(buf []byte, v Value) []byte {
	buf = append(buf, byte(v.kind))
	switch v.kind {
	case KindInt64, KindInt32, KindInt16, KindInt8, KindChar:
		buf = appendOrderedUint64(buf, uint64(v.num)^(1<<63))
	case KindFloat64, KindFloat32:
		fp := v.fp
		if math.IsNaN(fp) {
			fp = math.NaN()
		} else if fp == 0 {
			fp = 0 // strip the sign of negative zero
		}
		bits := math.Float64bits(fp)
		if bits&(1<<63) != 0 {
			bits = ^bits
		} else {
			bits ^= 1 << 63
		}
		buf = appendOrderedUint64(buf, bits)
	case KindString:
		for i := 0; i < len(v.str); i++ {
			c := v.str[i]
			if c == 0x00 {
				buf = append(buf, 0x00, 0xFF)
			} else {
				buf = append(buf, c)
			}
		}
		buf = append(buf, 0x00)
	}
	return buf
}

func appendOrderedUint64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// encodeKey encodes a composite key value.
func encodeKey(k Key) []byte {
	buf := make([]byte, 0, 16*len(k))
	for _, v := range k {
		buf = appendValueKey(buf, v)
	}
	return buf
}

// fingerprint encodes a whole tuple for exact-equality membership tests.
// Two tuples have equal fingerprints iff they are exact-tuple-equal.
func (t Tuple) fingerprint() string {
	buf := make([]byte, 0, 16*len(t))
	for _, v := range t {
		buf = appendValueKey(buf, v)
	}
	return string(buf)
}
