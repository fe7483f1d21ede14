package bstd

import (
	"encoding/binary"
	"math"
)

// Fixed-width codecs. Multi-byte values are little-endian; signed integers
// are two's complement, floats IEEE-754. The Size functions take the value
// so they satisfy SizeFunc and compose with the container codecs; the
// argument is ignored.

// SizeBool returns 1.
func SizeBool(bool) int { return 1 }

// MarshalBool writes false as 0x00 and true as 0x01.
func MarshalBool(n int, b []byte, v bool) (int, error) {
	if len(b)-n < 1 {
		return n, ErrBufTooSmall
	}
	if v {
		b[n] = 1
	} else {
		b[n] = 0
	}
	return n + 1, nil
}

// UnmarshalBool decodes exactly 0x01 as true. The marshaller only ever
// writes 0x00 or 0x01; any other byte value decodes false.
func UnmarshalBool(n int, b []byte) (int, bool, error) {
	if len(b)-n < 1 {
		return n, false, ErrBufTooSmall
	}
	return n + 1, b[n] == 1, nil
}

func SkipBool(n int, b []byte) (int, error) {
	if len(b)-n < 1 {
		return n, ErrBufTooSmall
	}
	return n + 1, nil
}

// SizeByte returns 1.
func SizeByte(byte) int { return 1 }

func MarshalByte(n int, b []byte, v byte) (int, error) {
	if len(b)-n < 1 {
		return n, ErrBufTooSmall
	}
	b[n] = v
	return n + 1, nil
}

func UnmarshalByte(n int, b []byte) (int, byte, error) {
	if len(b)-n < 1 {
		return n, 0, ErrBufTooSmall
	}
	return n + 1, b[n], nil
}

func SkipByte(n int, b []byte) (int, error) {
	if len(b)-n < 1 {
		return n, ErrBufTooSmall
	}
	return n + 1, nil
}

// SizeUint8 returns 1.
func SizeUint8(uint8) int { return 1 }

func MarshalUint8(n int, b []byte, v uint8) (int, error) {
	return MarshalByte(n, b, v)
}

func UnmarshalUint8(n int, b []byte) (int, uint8, error) {
	return UnmarshalByte(n, b)
}

func SkipUint8(n int, b []byte) (int, error) {
	return SkipByte(n, b)
}

// SizeInt8 returns 1.
func SizeInt8(int8) int { return 1 }

func MarshalInt8(n int, b []byte, v int8) (int, error) {
	return MarshalByte(n, b, byte(v))
}

func UnmarshalInt8(n int, b []byte) (int, int8, error) {
	n, c, err := UnmarshalByte(n, b)
	return n, int8(c), err
}

func SkipInt8(n int, b []byte) (int, error) {
	return SkipByte(n, b)
}

// SizeUint16 returns 2.
func SizeUint16(uint16) int { return 2 }

func MarshalUint16(n int, b []byte, v uint16) (int, error) {
	if len(b)-n < 2 {
		return n, ErrBufTooSmall
	}
	binary.LittleEndian.PutUint16(b[n:], v)
	return n + 2, nil
}

func UnmarshalUint16(n int, b []byte) (int, uint16, error) {
	if len(b)-n < 2 {
		return n, 0, ErrBufTooSmall
	}
	return n + 2, binary.LittleEndian.Uint16(b[n:]), nil
}

func SkipUint16(n int, b []byte) (int, error) {
	if len(b)-n < 2 {
		return n, ErrBufTooSmall
	}
	return n + 2, nil
}

// SizeInt16 returns 2.
func SizeInt16(int16) int { return 2 }

func MarshalInt16(n int, b []byte, v int16) (int, error) {
	return MarshalUint16(n, b, uint16(v))
}

func UnmarshalInt16(n int, b []byte) (int, int16, error) {
	n, u, err := UnmarshalUint16(n, b)
	return n, int16(u), err
}

func SkipInt16(n int, b []byte) (int, error) {
	return SkipUint16(n, b)
}

// SizeUint32 returns 4.
func SizeUint32(uint32) int { return 4 }

func MarshalUint32(n int, b []byte, v uint32) (int, error) {
	if len(b)-n < 4 {
		return n, ErrBufTooSmall
	}
	binary.LittleEndian.PutUint32(b[n:], v)
	return n + 4, nil
}

func UnmarshalUint32(n int, b []byte) (int, uint32, error) {
	if len(b)-n < 4 {
		return n, 0, ErrBufTooSmall
	}
	return n + 4, binary.LittleEndian.Uint32(b[n:]), nil
}

func SkipUint32(n int, b []byte) (int, error) {
	if len(b)-n < 4 {
		return n, ErrBufTooSmall
	}
	return n + 4, nil
}

// SizeInt32 returns 4.
func SizeInt32(int32) int { return 4 }

func MarshalInt32(n int, b []byte, v int32) (int, error) {
	return MarshalUint32(n, b, uint32(v))
}

func UnmarshalInt32(n int, b []byte) (int, int32, error) {
	n, u, err := UnmarshalUint32(n, b)
	return n, int32(u), err
}

func SkipInt32(n int, b []byte) (int, error) {
	return SkipUint32(n, b)
}

// SizeUint64 returns 8.
func SizeUint64(uint64) int { return 8 }

func MarshalUint64(n int, b []byte, v uint64) (int, error) {
	if len(b)-n < 8 {
		return n, ErrBufTooSmall
	}
	binary.LittleEndian.PutUint64(b[n:], v)
	return n + 8, nil
}

func UnmarshalUint64(n int, b []byte) (int, uint64, error) {
	if len(b)-n < 8 {
		return n, 0, ErrBufTooSmall
	}
	return n + 8, binary.LittleEndian.Uint64(b[n:]), nil
}

func SkipUint64(n int, b []byte) (int, error) {
	if len(b)-n < 8 {
		return n, ErrBufTooSmall
	}
	return n + 8, nil
}

// SizeInt64 returns 8.
func SizeInt64(int64) int { return 8 }

func MarshalInt64(n int, b []byte, v int64) (int, error) {
	return MarshalUint64(n, b, uint64(v))
}

func UnmarshalInt64(n int, b []byte) (int, int64, error) {
	n, u, err := UnmarshalUint64(n, b)
	return n, int64(u), err
}

func SkipInt64(n int, b []byte) (int, error) {
	return SkipUint64(n, b)
}

// SizeFloat32 returns 4.
func SizeFloat32(float32) int { return 4 }

func MarshalFloat32(n int, b []byte, v float32) (int, error) {
	return MarshalUint32(n, b, math.Float32bits(v))
}

func UnmarshalFloat32(n int, b []byte) (int, float32, error) {
	n, u, err := UnmarshalUint32(n, b)
	return n, math.Float32frombits(u), err
}

func SkipFloat32(n int, b []byte) (int, error) {
	return SkipUint32(n, b)
}

// SizeFloat64 returns 8.
func SizeFloat64(float64) int { return 8 }

func MarshalFloat64(n int, b []byte, v float64) (int, error) {
	return MarshalUint64(n, b, math.Float64bits(v))
}

func UnmarshalFloat64(n int, b []byte) (int, float64, error) {
	n, u, err := UnmarshalUint64(n, b)
	return n, math.Float64frombits(u), err
}

func SkipFloat64(n int, b []byte) (int, error) {
	return SkipUint64(n, b)
}

// SizeComplex64 returns 8. A complex64 encodes as its real part followed by
// its imaginary part, each a float32.
func SizeComplex64(complex64) int { return 8 }

func MarshalComplex64(n int, b []byte, v complex64) (int, error) {
	on := n
	n, err := MarshalFloat32(n, b, real(v))
	if err != nil {
		return on, err
	}
	n, err = MarshalFloat32(n, b, imag(v))
	if err != nil {
		return on, err
	}
	return n, nil
}

func UnmarshalComplex64(n int, b []byte) (int, complex64, error) {
	if len(b)-n < 8 {
		return n, 0, ErrBufTooSmall
	}
	r := math.Float32frombits(binary.LittleEndian.Uint32(b[n:]))
	i := math.Float32frombits(binary.LittleEndian.Uint32(b[n+4:]))
	return n + 8, complex(r, i), nil
}

func SkipComplex64(n int, b []byte) (int, error) {
	if len(b)-n < 8 {
		return n, ErrBufTooSmall
	}
	return n + 8, nil
}

// SizeComplex128 returns 16. A complex128 encodes as its real part followed
// by its imaginary part, each a float64.
func SizeComplex128(complex128) int { return 16 }

func MarshalComplex128(n int, b []byte, v complex128) (int, error) {
	on := n
	n, err := MarshalFloat64(n, b, real(v))
	if err != nil {
		return on, err
	}
	n, err = MarshalFloat64(n, b, imag(v))
	if err != nil {
		return on, err
	}
	return n, nil
}

func UnmarshalComplex128(n int, b []byte) (int, complex128, error) {
	if len(b)-n < 16 {
		return n, 0, ErrBufTooSmall
	}
	r := math.Float64frombits(binary.LittleEndian.Uint64(b[n:]))
	i := math.Float64frombits(binary.LittleEndian.Uint64(b[n+8:]))
	return n + 16, complex(r, i), nil
}

func SkipComplex128(n int, b []byte) (int, error) {
	if len(b)-n < 16 {
		return n, ErrBufTooSmall
	}
	return n + 16, nil
}
