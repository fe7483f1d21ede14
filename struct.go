package bstd

import (
	"encoding/binary"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// structSizeCache avoids the cost of reflection in binary.Size on every
// call. Keyed by concrete type and safe for concurrent use.
var structSizeCache = xsync.NewMap[reflect.Type, int]()

func fixedSizeOf[T any](v *T) int {
	t := reflect.TypeOf(v).Elem()
	if s, ok := structSizeCache.Load(t); ok {
		return s
	}
	s := binary.Size(v)
	if s < 0 {
		panic("bstd: struct codec requires a type of fixed-size fields only, got " + t.String())
	}
	structSizeCache.Store(t, s)
	return s
}

// SizeStruct reports the encoded size of a struct composed entirely of
// fixed-size fields (no slices, maps or strings). The size is computed by
// reflection once per type and cached, so structs of constant stride can be
// used as container elements together with SizeFixedSlice.
func SizeStruct[T any](v T) int {
	return fixedSizeOf(&v)
}

// MarshalStruct writes v field by field, little-endian, in declaration
// order. Panics if T contains variable-size fields.
func MarshalStruct[T any](n int, b []byte, v T) (int, error) {
	s := fixedSizeOf(&v)
	if len(b)-n < s {
		return n, ErrBufTooSmall
	}
	if _, err := binary.Encode(b[n:n+s], binary.LittleEndian, &v); err != nil {
		return n, ErrBufTooSmall
	}
	return n + s, nil
}

// UnmarshalStruct reads a struct written by MarshalStruct.
func UnmarshalStruct[T any](n int, b []byte) (int, T, error) {
	var v T
	s := fixedSizeOf(&v)
	if len(b)-n < s {
		return n, v, ErrBufTooSmall
	}
	if _, err := binary.Decode(b[n:n+s], binary.LittleEndian, &v); err != nil {
		return n, v, ErrBufTooSmall
	}
	return n + s, v, nil
}

// SkipStruct advances past one encoded struct of type T.
func SkipStruct[T any](n int, b []byte) (int, error) {
	var v T
	s := fixedSizeOf(&v)
	if len(b)-n < s {
		return n, ErrBufTooSmall
	}
	return n + s, nil
}
