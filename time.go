package bstd

import "time"

// Timestamps travel as int64 nanoseconds since the Unix epoch. No zone
// metadata is carried on the wire; marshalling normalizes through UnixNano
// regardless of the value's location, and decoding always returns a
// UTC-tagged value. Times outside the int64-nanosecond range (roughly years
// 1678 through 2262) are the caller's responsibility.

// SizeTime returns 8.
func SizeTime(time.Time) int { return 8 }

// MarshalTime writes t as nanoseconds since the Unix epoch.
func MarshalTime(n int, b []byte, t time.Time) (int, error) {
	return MarshalInt64(n, b, t.UnixNano())
}

// UnmarshalTime reads a nanosecond count and returns the instant in UTC.
func UnmarshalTime(n int, b []byte) (int, time.Time, error) {
	n, v, err := UnmarshalInt64(n, b)
	if err != nil {
		return n, time.Time{}, err
	}
	return n, time.Unix(0, v).UTC(), nil
}

// SkipTime advances past a timestamp.
func SkipTime(n int, b []byte) (int, error) {
	return SkipInt64(n, b)
}
