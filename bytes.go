package bstd

import (
	"unicode/utf8"
	"unsafe"
)

// Strings and byte slices share one wire form: a varint length prefix
// followed by the raw payload. Strings additionally require the payload to
// be valid UTF-8 on decode.

// b2s views a byte slice as a string without copying. The result aliases b.
func b2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// SizeString reports the encoded size of s.
func SizeString(s string) int {
	return len(s) + SizeUint(uint64(len(s)))
}

// MarshalString writes the length prefix followed by the raw UTF-8 bytes.
func MarshalString(n int, b []byte, s string) (int, error) {
	i, err := MarshalUint(n, b, uint64(len(s)))
	if err != nil {
		return n, err
	}
	if len(b)-i < len(s) {
		return n, ErrBufTooSmall
	}
	return i + copy(b[i:], s), nil
}

// MarshalUnsafeString writes the same wire form as MarshalString. It exists
// for symmetry with UnmarshalUnsafeString; copying out of a string never
// allocates, so there is nothing to make faster here.
func MarshalUnsafeString(n int, b []byte, s string) (int, error) {
	return MarshalString(n, b, s)
}

// UnmarshalString reads a length-prefixed string, copying the payload into
// newly owned storage. Payloads that are not valid UTF-8 fail with
// ErrInvalidUTF8.
func UnmarshalString(n int, b []byte) (int, string, error) {
	i, l, err := UnmarshalUint(n, b)
	if err != nil {
		return n, "", err
	}
	if uint64(len(b)-i) < l {
		return n, "", ErrBufTooSmall
	}
	bs := b[i : i+int(l)]
	if !utf8.Valid(bs) {
		return n, "", ErrInvalidUTF8
	}
	return i + int(l), string(bs), nil
}

// UnmarshalUnsafeString reads a length-prefixed string as a zero-copy view
// into b. The result aliases the buffer and must not outlive it or survive
// its mutation; use UnmarshalString when the string escapes the buffer's
// lifetime.
func UnmarshalUnsafeString(n int, b []byte) (int, string, error) {
	i, l, err := UnmarshalUint(n, b)
	if err != nil {
		return n, "", err
	}
	if uint64(len(b)-i) < l {
		return n, "", ErrBufTooSmall
	}
	bs := b[i : i+int(l)]
	if !utf8.Valid(bs) {
		return n, "", ErrInvalidUTF8
	}
	return i + int(l), b2s(bs), nil
}

// SkipString advances past a length-prefixed string without validating the
// payload.
func SkipString(n int, b []byte) (int, error) {
	i, l, err := UnmarshalUint(n, b)
	if err != nil {
		return n, err
	}
	if uint64(len(b)-i) < l {
		return n, ErrBufTooSmall
	}
	return i + int(l), nil
}

// SizeBytes reports the encoded size of bs.
func SizeBytes(bs []byte) int {
	return len(bs) + SizeUint(uint64(len(bs)))
}

// MarshalBytes writes the length prefix followed by the raw payload.
func MarshalBytes(n int, b []byte, bs []byte) (int, error) {
	i, err := MarshalUint(n, b, uint64(len(bs)))
	if err != nil {
		return n, err
	}
	if len(b)-i < len(bs) {
		return n, ErrBufTooSmall
	}
	return i + copy(b[i:], bs), nil
}

// UnmarshalBytesCropped reads a length-prefixed byte slice as a sub-slice of
// b. The result aliases the buffer: it reflects later mutation of b and must
// not outlive it.
func UnmarshalBytesCropped(n int, b []byte) (int, []byte, error) {
	i, l, err := UnmarshalUint(n, b)
	if err != nil {
		return n, nil, err
	}
	if uint64(len(b)-i) < l {
		return n, nil, ErrBufTooSmall
	}
	return i + int(l), b[i : i+int(l)], nil
}

// UnmarshalBytesCopied reads a length-prefixed byte slice into newly owned
// storage, valid independently of b.
func UnmarshalBytesCopied(n int, b []byte) (int, []byte, error) {
	i, l, err := UnmarshalUint(n, b)
	if err != nil {
		return n, nil, err
	}
	if uint64(len(b)-i) < l {
		return n, nil, ErrBufTooSmall
	}
	cp := make([]byte, l)
	copy(cp, b[i:])
	return i + int(l), cp, nil
}

// SkipBytes advances past a length-prefixed byte slice.
func SkipBytes(n int, b []byte) (int, error) {
	return SkipString(n, b)
}
