package bstd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeUint(t *testing.T) {
	tests := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{2097151, 3},
		{2097152, 4},
		{math.MaxUint64, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeUint(tt.v), "SizeUint(%d)", tt.v)
	}
}

func TestUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 5, 127, 128, 300, 16383, 16384, 2097151, 2097152, 1 << 32, 1 << 63, math.MaxUint64}
	for _, v := range values {
		buf := make([]byte, SizeUint(v))
		n, err := MarshalUint(0, buf, v)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)

		un, got, err := UnmarshalUint(0, buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, n, un)

		sn, err := SkipVarint(0, buf)
		require.NoError(t, err)
		assert.Equal(t, un, sn, "skip and unmarshal must agree for %d", v)
	}
}

func TestUnmarshalUintBoundaries(t *testing.T) {
	tenContinuations := make([]byte, 10)
	for i := range tenContinuations {
		tenContinuations[i] = 0x80
	}
	overflowTenth := make([]byte, 10)
	for i := 0; i < 9; i++ {
		overflowTenth[i] = 0x80
	}
	overflowTenth[9] = 0x02

	topBitOnly := make([]byte, 10)
	for i := 0; i < 9; i++ {
		topBitOnly[i] = 0x80
	}
	topBitOnly[9] = 0x01

	tests := []struct {
		name    string
		buf     []byte
		wantN   int
		wantVal uint64
		wantErr error
	}{
		{"single byte", []byte{0x05}, 1, 5, nil},
		{"two bytes", []byte{0x80, 0x01}, 2, 128, nil},
		{"dangling continuation", []byte{0x80}, 0, 0, ErrBufTooSmall},
		{"empty buffer", []byte{}, 0, 0, ErrBufTooSmall},
		{"ten continuations", tenContinuations, 0, 0, ErrOverflow},
		{"tenth byte above one", overflowTenth, 0, 0, ErrOverflow},
		{"tenth byte exactly one", topBitOnly, 10, 1 << 63, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, v, err := UnmarshalUint(0, tt.buf)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantVal, v)
			assert.ErrorIs(t, err, tt.wantErr)

			sn, serr := SkipVarint(0, tt.buf)
			assert.Equal(t, n, sn, "skip must agree with unmarshal")
			assert.ErrorIs(t, serr, tt.wantErr)
		})
	}
}

func TestMarshalUintBufTooSmall(t *testing.T) {
	_, err := MarshalUint(0, []byte{}, 1)
	assert.ErrorIs(t, err, ErrBufTooSmall)

	// 300 needs two bytes.
	_, err = MarshalUint(0, make([]byte, 1), 300)
	assert.ErrorIs(t, err, ErrBufTooSmall)
}

func TestZigZag(t *testing.T) {
	tests := []struct {
		v    int64
		want uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uint64(EncodeZigZag(tt.v)), "EncodeZigZag(%d)", tt.v)
	}

	for _, v := range []int64{0, -1, 1, -2, 150, -150, math.MaxInt64, math.MinInt64} {
		assert.Equal(t, v, int64(DecodeZigZag(uint64(EncodeZigZag(v)))), "zigzag round trip of %d", v)
	}
}

func TestIntRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 2, -2, 150, -12345, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		buf := make([]byte, SizeInt(v))
		n, err := MarshalInt(0, buf, v)
		require.NoError(t, err)
		require.Equal(t, len(buf), n)

		un, got, err := UnmarshalInt(0, buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, n, un)

		sn, err := SkipInt(0, buf)
		require.NoError(t, err)
		assert.Equal(t, un, sn)
	}
}

func TestUnmarshalIntWire(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		wantN   int
		wantVal int64
		wantErr error
	}{
		{"one", []byte{0x02}, 1, 1, nil},
		{"minus two", []byte{0x03}, 1, -2, nil},
		{"one fifty", []byte{0xAC, 0x02}, 2, 150, nil},
		{"dangling continuation", []byte{0x80}, 0, 0, ErrBufTooSmall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, v, err := UnmarshalInt(0, tt.buf)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantVal, v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
