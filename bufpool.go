package bstd

import "sync"

type optFunc func(*opts)

type opts struct {
	bufSize int
}

func defaultOpts() opts {
	return opts{bufSize: 1024}
}

// WithBufferSize sets the length of the pooled buffers. Marshals requesting
// more than this fail with ErrReuseBufTooSmall.
func WithBufferSize(size int) optFunc {
	return func(o *opts) { o.bufSize = size }
}

// BufPool recycles marshal buffers through a sync.Pool, for callers that
// encode many messages of bounded size and want to avoid a per-message
// allocation.
type BufPool struct {
	size int
	p    sync.Pool
}

// NewBufPool returns a pool of equally sized buffers. The default buffer
// size is 1024 bytes.
func NewBufPool(options ...optFunc) *BufPool {
	o := defaultOpts()
	for _, fn := range options {
		fn(&o)
	}
	return &BufPool{
		size: o.bufSize,
		p: sync.Pool{
			New: func() any {
				s := make([]byte, o.bufSize)
				return &s
			},
		},
	}
}

// Marshal truncates a pooled buffer to s bytes, runs fill over it, verifies
// that fill consumed the whole buffer and returns it. s is the summed Size
// of the values fill writes. The returned slice is backed by pool storage:
// it is valid until the next Marshal call that picks up the same buffer, so
// callers that retain it must copy.
func (bp *BufPool) Marshal(s int, fill func(b []byte) (int, error)) ([]byte, error) {
	if s > bp.size {
		return nil, ErrReuseBufTooSmall
	}
	ptr := bp.p.Get().(*[]byte)
	b := (*ptr)[:s]
	n, err := fill(b)
	if err != nil {
		bp.p.Put(ptr)
		return nil, err
	}
	if err := VerifyMarshal(n, b); err != nil {
		bp.p.Put(ptr)
		return nil, err
	}
	bp.p.Put(ptr)
	return b, nil
}
