package frame

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/pgarray/errs"
)

// Writer appends frames to an underlying io.Writer.
//
// Writer is safe for concurrent use; frames are never interleaved.
type Writer struct {
	mu     sync.Mutex
	w      *bufio.Writer
	cfg    *Config
	buf    []byte
	offset int64
}

// NewWriter creates a Writer that packs every value with opts.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Writer{w: bufio.NewWriter(w), cfg: cfg}, nil
}

// Write packs raw into a frame and writes it. It returns the offset of the frame
// within the stream.
func (fw *Writer) Write(raw []byte) (int64, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	var err error
	fw.buf, err = appendPack(fw.buf[:0], raw, fw.cfg)
	if err != nil {
		return 0, err
	}

	offset := fw.offset
	n, err := fw.w.Write(fw.buf)
	fw.offset += int64(n)
	if err != nil {
		return 0, err
	}

	return offset, nil
}

// Flush writes any buffered frames to the underlying writer.
func (fw *Writer) Flush() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	return fw.w.Flush()
}

// Reader reads frames sequentially from an io.Reader.
type Reader struct {
	r      *bufio.Reader
	cfg    *Config
	header [HeaderSize]byte
	offset int64
}

// NewReader creates a Reader that unpacks frames with opts.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Reader{r: bufio.NewReader(r), cfg: cfg}, nil
}

// Offset returns the stream offset of the next frame.
func (fr *Reader) Offset() int64 {
	return fr.offset
}

// Next reads the next frame and returns its raw bytes.
//
// Returns io.EOF when the stream ends cleanly between frames and an error wrapping
// errs.ErrTruncated when it ends inside one.
func (fr *Reader) Next() ([]byte, error) {
	n, err := io.ReadFull(fr.r, fr.header[:])
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: frame header at offset %d has %d of %d bytes",
				errs.ErrTruncated, fr.offset, n, HeaderSize)
		}

		return nil, err
	}

	var header Header
	if err := header.Parse(fr.header[:]); err != nil {
		return nil, fmt.Errorf("frame at offset %d: %w", fr.offset, err)
	}
	if int64(header.RawLen) > int64(fr.cfg.maxRawSize) {
		return nil, fmt.Errorf("%w: frame at offset %d declares %d raw bytes, limit %d",
			errs.ErrInvalidFrame, fr.offset, header.RawLen, fr.cfg.maxRawSize)
	}

	// the buffer grows with what is read, never to PayloadLen up front
	payload, err := io.ReadAll(io.LimitReader(fr.r, int64(header.PayloadLen)))
	if err != nil {
		return nil, err
	}
	if len(payload) != int(header.PayloadLen) {
		return nil, fmt.Errorf("%w: frame payload at offset %d has %d of %d bytes",
			errs.ErrTruncated, fr.offset, len(payload), header.PayloadLen)
	}

	raw, err := unpackPayload(&header, payload, fr.cfg)
	if err != nil {
		return nil, fmt.Errorf("frame at offset %d: %w", fr.offset, err)
	}
	fr.offset += int64(header.FrameSize())

	return raw, nil
}
