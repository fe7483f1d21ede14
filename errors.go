package bstd

import "errors"

var (
	// ErrBufTooSmall indicates that the remaining buffer could not hold or
	// provide the requested bytes: a fixed-width read or write past the end,
	// a varint running off the buffer before its terminating byte, a declared
	// length exceeding the remaining bytes, or a missing container terminator.
	ErrBufTooSmall = errors.New("bstd: buffer too small")

	// ErrOverflow indicates a varint that does not fit a 64-bit unsigned
	// integer: ten continuation bytes without a terminating byte, or a tenth
	// byte with a value greater than 1.
	ErrOverflow = errors.New("bstd: varint overflows a 64-bit unsigned integer")

	// ErrInvalidUTF8 indicates a string payload that is not valid UTF-8. It is
	// distinct from the buffer errors: the bytes were all present, their
	// content just wasn't a string.
	ErrInvalidUTF8 = errors.New("bstd: string payload is not valid UTF-8")

	// ErrReuseBufTooSmall indicates that a pooled buffer is smaller than the
	// size requested from BufPool.Marshal.
	ErrReuseBufTooSmall = errors.New("bstd: reused buffer too small")

	// ErrVerifyFailed indicates that the final offset of a marshal or
	// unmarshal pass does not match the buffer length, meaning the size pass
	// and the marshal/unmarshal pass disagreed somewhere.
	ErrVerifyFailed = errors.New("bstd: final offset does not match buffer length")
)
