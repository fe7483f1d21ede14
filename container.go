package bstd

import "fmt"

// Containers encode as a varint element count, the elements in order, and a
// fixed 4-byte terminator. Decode and skip require the terminator to be
// present but do not inspect its content. Skipping is count-driven: the
// count is replayed and each element skipped in turn. Scanning payload bytes
// for the terminator pattern instead would truncate early whenever element
// data happens to contain it.

var terminator = [4]byte{1, 1, 1, 1}

// SizeSlice reports the encoded size of slice, sizing each element with
// sizer.
func SizeSlice[T any](slice []T, sizer SizeFunc[T]) int {
	s := 4 + SizeUint(uint64(len(slice)))
	for _, t := range slice {
		s += sizer(t)
	}
	return s
}

// SizeFixedSlice reports the encoded size of a slice whose elements all
// occupy elemSize bytes, without a per-element size call.
func SizeFixedSlice[T any](slice []T, elemSize int) int {
	return 4 + SizeUint(uint64(len(slice))) + len(slice)*elemSize
}

// MarshalSlice writes the element count, each element via marshaler, and the
// terminator.
func MarshalSlice[T any](n int, b []byte, slice []T, marshaler MarshalFunc[T]) (int, error) {
	on := n
	n, err := MarshalUint(n, b, uint64(len(slice)))
	if err != nil {
		return on, err
	}
	for i, t := range slice {
		if n, err = marshaler(n, b, t); err != nil {
			return on, fmt.Errorf("at index %d: %w", i, err)
		}
	}
	if len(b)-n < 4 {
		return on, ErrBufTooSmall
	}
	copy(b[n:], terminator[:])
	return n + 4, nil
}

// UnmarshalSlice reads the element count, unmarshals that many elements in
// order, and advances past the terminator.
func UnmarshalSlice[T any](n int, b []byte, unmarshaler UnmarshalFunc[T]) (int, []T, error) {
	on := n
	n, c, err := UnmarshalUint(n, b)
	if err != nil {
		return on, nil, err
	}
	// The count comes off the wire and cannot be trusted for allocation.
	// Every element occupies at least one byte, so the remaining buffer
	// bounds how many elements an honest count can declare.
	ts := make([]T, 0, min(c, uint64(len(b)-n)))
	for i := uint64(0); i < c; i++ {
		var t T
		if n, t, err = unmarshaler(n, b); err != nil {
			return on, nil, fmt.Errorf("at index %d: %w", i, err)
		}
		ts = append(ts, t)
	}
	if len(b)-n < 4 {
		return on, nil, ErrBufTooSmall
	}
	return n + 4, ts, nil
}

// SkipSlice advances past a slice by replaying the element count against
// skipper, then past the terminator.
func SkipSlice(n int, b []byte, skipper SkipFunc) (int, error) {
	on := n
	n, c, err := UnmarshalUint(n, b)
	if err != nil {
		return on, err
	}
	for i := uint64(0); i < c; i++ {
		if n, err = skipper(n, b); err != nil {
			return on, fmt.Errorf("at index %d: %w", i, err)
		}
	}
	if len(b)-n < 4 {
		return on, ErrBufTooSmall
	}
	return n + 4, nil
}

// SizeMap reports the encoded size of m, sizing keys with kSizer and values
// with vSizer.
func SizeMap[K comparable, V any](m map[K]V, kSizer SizeFunc[K], vSizer SizeFunc[V]) int {
	s := 4 + SizeUint(uint64(len(m)))
	for k, v := range m {
		s += kSizer(k) + vSizer(v)
	}
	return s
}

// MarshalMap writes the entry count, each key-value pair in iteration order,
// and the terminator. Entry order is not semantically meaningful on decode.
func MarshalMap[K comparable, V any](n int, b []byte, m map[K]V, kMarshaler MarshalFunc[K], vMarshaler MarshalFunc[V]) (int, error) {
	on := n
	n, err := MarshalUint(n, b, uint64(len(m)))
	if err != nil {
		return on, err
	}
	i := 0
	for k, v := range m {
		if n, err = kMarshaler(n, b, k); err != nil {
			return on, fmt.Errorf("(key) at index %d: %w", i, err)
		}
		if n, err = vMarshaler(n, b, v); err != nil {
			return on, fmt.Errorf("(value) at index %d: %w", i, err)
		}
		i++
	}
	if len(b)-n < 4 {
		return on, ErrBufTooSmall
	}
	copy(b[n:], terminator[:])
	return n + 4, nil
}

// UnmarshalMap reads the entry count, unmarshals that many key-value pairs,
// and advances past the terminator. Duplicate keys are not rejected; the
// last occurrence wins.
func UnmarshalMap[K comparable, V any](n int, b []byte, kUnmarshaler UnmarshalFunc[K], vUnmarshaler UnmarshalFunc[V]) (int, map[K]V, error) {
	on := n
	n, c, err := UnmarshalUint(n, b)
	if err != nil {
		return on, nil, err
	}
	// As in UnmarshalSlice, the wire count only sizes the map up to what
	// the remaining buffer could actually hold.
	m := make(map[K]V, min(c, uint64(len(b)-n)))
	for i := uint64(0); i < c; i++ {
		var k K
		var v V
		if n, k, err = kUnmarshaler(n, b); err != nil {
			return on, nil, fmt.Errorf("(key) at index %d: %w", i, err)
		}
		if n, v, err = vUnmarshaler(n, b); err != nil {
			return on, nil, fmt.Errorf("(value) at index %d: %w", i, err)
		}
		m[k] = v
	}
	if len(b)-n < 4 {
		return on, nil, ErrBufTooSmall
	}
	return n + 4, m, nil
}

// SkipMap advances past a map by replaying the entry count against the key
// and value skippers, then past the terminator.
func SkipMap(n int, b []byte, kSkipper SkipFunc, vSkipper SkipFunc) (int, error) {
	on := n
	n, c, err := UnmarshalUint(n, b)
	if err != nil {
		return on, err
	}
	for i := uint64(0); i < c; i++ {
		if n, err = kSkipper(n, b); err != nil {
			return on, fmt.Errorf("(key) at index %d: %w", i, err)
		}
		if n, err = vSkipper(n, b); err != nil {
			return on, fmt.Errorf("(value) at index %d: %w", i, err)
		}
	}
	if len(b)-n < 4 {
		return on, ErrBufTooSmall
	}
	return n + 4, nil
}

// SizePointer reports the encoded size of an optional value: one presence
// byte, plus the value's size when v is non-nil.
func SizePointer[T any](v *T, sizer SizeFunc[T]) int {
	if v == nil {
		return 1
	}
	return 1 + sizer(*v)
}

// MarshalPointer writes the presence byte, then the value iff v is non-nil.
func MarshalPointer[T any](n int, b []byte, v *T, marshaler MarshalFunc[T]) (int, error) {
	on := n
	n, err := MarshalBool(n, b, v != nil)
	if err != nil {
		return on, err
	}
	if v == nil {
		return n, nil
	}
	if n, err = marshaler(n, b, *v); err != nil {
		return on, err
	}
	return n, nil
}

// UnmarshalPointer reads the presence byte and, when set, the value. Absent
// values decode as nil.
func UnmarshalPointer[T any](n int, b []byte, unmarshaler UnmarshalFunc[T]) (int, *T, error) {
	on := n
	n, ok, err := UnmarshalBool(n, b)
	if err != nil {
		return on, nil, err
	}
	if !ok {
		return n, nil, nil
	}
	n, v, err := unmarshaler(n, b)
	if err != nil {
		return on, nil, err
	}
	return n, &v, nil
}

// SkipPointer advances past the presence byte and, when set, the value.
func SkipPointer(n int, b []byte, skipper SkipFunc) (int, error) {
	on := n
	n, ok, err := UnmarshalBool(n, b)
	if err != nil {
		return on, err
	}
	if !ok {
		return n, nil
	}
	if n, err = skipper(n, b); err != nil {
		return on, err
	}
	return n, nil
}
