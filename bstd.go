// Package bstd implements composable primitives for a compact, schema-less
// binary encoding. Every supported value kind provides four operations:
// computing its exact encoded size, marshalling it into a pre-sized buffer at
// an explicit offset, unmarshalling it back, and skipping over it without
// materializing the decoded value.
//
// There is no hidden state. Each operation receives the current offset and
// returns the offset just past the value it processed; the (offset, buffer)
// pair is the entire decoding context. Callers encode a message in two
// passes: sum the Size results of every field, allocate one buffer of that
// length, then marshal each field in the same order. Decoding mirrors the
// order with Unmarshal or Skip calls.
//
// Container operations (slices, maps, optional pointers) are parameterized
// over the element operations of the matching family, so containers nest
// arbitrarily deep using the same contract recursively.
//
// All operations are pure functions of their arguments and safe for
// concurrent use on distinct buffers, or on shared buffers that are only
// read.
package bstd

// SizeFunc reports the encoded size of v in bytes.
type SizeFunc[T any] func(v T) int

// MarshalFunc writes v into b at offset n and returns the offset just past
// the written bytes.
type MarshalFunc[T any] func(n int, b []byte, v T) (int, error)

// UnmarshalFunc reads one value from b at offset n.
type UnmarshalFunc[T any] func(n int, b []byte) (int, T, error)

// SkipFunc advances past one encoded value without decoding it.
type SkipFunc func(n int, b []byte) (int, error)

// Ptr returns a pointer to v. Handy for building optional values in place.
func Ptr[T any](v T) *T { return &v }

// Marshal begins a marshal pass: it allocates a buffer of s bytes and
// returns the starting offset. s is the summed Size of every value about to
// be written.
func Marshal(s int) (int, []byte) {
	return 0, make([]byte, s)
}

// VerifyMarshal checks that a marshal pass filled the whole buffer.
func VerifyMarshal(n int, b []byte) error {
	if n != len(b) {
		return ErrVerifyFailed
	}
	return nil
}

// VerifyUnmarshal checks that an unmarshal or skip pass consumed the whole
// buffer, i.e. the message carried no trailing bytes.
func VerifyUnmarshal(n int, b []byte) error {
	if n != len(b) {
		return ErrVerifyFailed
	}
	return nil
}
