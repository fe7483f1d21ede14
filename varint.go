package bstd

import "golang.org/x/exp/constraints"

// MaxVarintLen is the largest number of bytes a varint occupies on the wire:
// 64 bits at 7 payload bits per byte, the tenth byte carrying a single bit.
const MaxVarintLen = 10

// EncodeZigZag maps a signed integer onto the unsigned domain so that values
// of small magnitude, positive or negative, encode as small varints:
// 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3. The mapping is bijective.
func EncodeZigZag[T constraints.Signed](t T) T {
	if t < 0 {
		return ^(t << 1)
	}
	return t << 1
}

// DecodeZigZag is the exact inverse of EncodeZigZag.
func DecodeZigZag[T constraints.Unsigned](t T) T {
	if t&1 == 1 {
		return ^(t >> 1)
	}
	return t >> 1
}

// SizeUint reports the number of bytes the varint encoding of v occupies.
func SizeUint(v uint64) int {
	s := 1
	for v >= 0x80 {
		v >>= 7
		s++
	}
	return s
}

// MarshalUint writes v as a varint: 7-bit groups least significant first,
// the continuation bit set on every byte except the last.
func MarshalUint(n int, b []byte, v uint64) (int, error) {
	i := n
	for v >= 0x80 {
		if i >= len(b) {
			return n, ErrBufTooSmall
		}
		b[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	if i >= len(b) {
		return n, ErrBufTooSmall
	}
	b[i] = byte(v)
	return i + 1, nil
}

// UnmarshalUint reads a varint of at most MaxVarintLen bytes. A tenth byte
// greater than 1 would carry bits past the 64th and is rejected as
// ErrOverflow, as is a run of MaxVarintLen bytes with no terminating byte.
func UnmarshalUint(n int, b []byte) (int, uint64, error) {
	var x uint64
	var s uint
	for i := 0; i < MaxVarintLen; i++ {
		if n+i >= len(b) {
			return n, 0, ErrBufTooSmall
		}
		c := b[n+i]
		if c < 0x80 {
			if i == MaxVarintLen-1 && c > 1 {
				return n, 0, ErrOverflow
			}
			return n + i + 1, x | uint64(c)<<s, nil
		}
		x |= uint64(c&0x7f) << s
		s += 7
	}
	return n, 0, ErrOverflow
}

// SkipVarint advances past a varint. It applies the same termination,
// bounds and overflow rules as UnmarshalUint without accumulating the
// value, so skip and unmarshal agree on every input.
func SkipVarint(n int, b []byte) (int, error) {
	for i := 0; i < MaxVarintLen; i++ {
		if n+i >= len(b) {
			return n, ErrBufTooSmall
		}
		if c := b[n+i]; c < 0x80 {
			if i == MaxVarintLen-1 && c > 1 {
				return n, ErrOverflow
			}
			return n + i + 1, nil
		}
	}
	return n, ErrOverflow
}

// SkipUint advances past a varint-encoded unsigned integer.
func SkipUint(n int, b []byte) (int, error) {
	return SkipVarint(n, b)
}

// SizeInt reports the varint size of the ZigZag encoding of v.
func SizeInt(v int64) int {
	return SizeUint(uint64(EncodeZigZag(v)))
}

// MarshalInt writes v ZigZag-encoded as a varint.
func MarshalInt(n int, b []byte, v int64) (int, error) {
	return MarshalUint(n, b, uint64(EncodeZigZag(v)))
}

// UnmarshalInt reads a ZigZag-encoded varint.
func UnmarshalInt(n int, b []byte) (int, int64, error) {
	n, u, err := UnmarshalUint(n, b)
	if err != nil {
		return n, 0, err
	}
	return n, int64(DecodeZigZag(u)), nil
}

// SkipInt advances past a ZigZag-encoded varint.
func SkipInt(n int, b []byte) (int, error) {
	return SkipVarint(n, b)
}
