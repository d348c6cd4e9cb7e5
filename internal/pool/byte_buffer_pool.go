package pool

import (
	"sync"
)

// Scratch buffer sizing for element payload encoding.
const (
	ScratchBufferDefaultSize  = 256       // 256B, enough for fixed-width scalars and short text
	ScratchBufferMaxThreshold = 1024 * 64 // 64KiB
)

// ByteBuffer is a reusable byte slice. Callers append to B directly and store
// the grown slice back.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity grew past maxThreshold are dropped on Put so that one
// oversized element does not pin memory for the life of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers have defaultSize capacity.
// A maxThreshold of zero keeps every buffer.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var scratchPool = NewByteBufferPool(ScratchBufferDefaultSize, ScratchBufferMaxThreshold)

// GetScratchBuffer retrieves a buffer for encoding a single element payload.
func GetScratchBuffer() *ByteBuffer {
	return scratchPool.Get()
}

// PutScratchBuffer returns an element scratch buffer to the pool.
func PutScratchBuffer(bb *ByteBuffer) {
	scratchPool.Put(bb)
}
