// reader.go
package asterix

import (
	"fmt"
	"io"
)

const (
	// DefaultBufferSize is the initial size of the read buffer
	DefaultBufferSize = 16384 // 16KB

	// MaxBufferSize is the maximum allowed size for the buffer
	MaxBufferSize = 1024 * 1024 // 1MB

	// DefaultReadSize is the size of chunks to read from the source
	DefaultReadSize = 4096 // 4KB

	// MaxInvalidFrames is the maximum number of consecutive invalid
	// frame headers before returning an error (to prevent infinite loops)
	MaxInvalidFrames = 10
)

// Reader frames ASTERIX datablocks out of an io.Reader and decodes them.
// It resynchronises on garbage by sliding one byte at a time until a
// plausible header is found; decoding itself never spans a read boundary,
// each datablock is handed to the decoder whole.
type Reader struct {
	decoder *Decoder
	buffer  []byte
	source  io.Reader

	// Configuration options
	maxBufferSize   int
	readSize        int
	maxInvalidCount int
}

// ReaderOption configures a Reader
type ReaderOption func(*Reader)

// WithMaxBufferSize sets the maximum buffer size
func WithMaxBufferSize(size int) ReaderOption {
	return func(r *Reader) {
		r.maxBufferSize = size
	}
}

// WithReadSize sets the size of chunks to read
func WithReadSize(size int) ReaderOption {
	return func(r *Reader) {
		r.readSize = size
	}
}

// WithMaxInvalidCount sets the maximum number of consecutive invalid frames
func WithMaxInvalidCount(count int) ReaderOption {
	return func(r *Reader) {
		r.maxInvalidCount = count
	}
}

// NewReader creates a new ASTERIX reader with optional configuration
func NewReader(source io.Reader, decoder *Decoder, opts ...ReaderOption) *Reader {
	r := &Reader{
		decoder:         decoder,
		buffer:          make([]byte, 0, DefaultBufferSize),
		source:          source,
		maxBufferSize:   MaxBufferSize,
		readSize:        DefaultReadSize,
		maxInvalidCount: MaxInvalidFrames,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Close releases resources associated with the reader.
// It does not close the underlying io.Reader, as that's the caller's
// responsibility.
func (r *Reader) Close() error {
	r.buffer = nil
	return nil
}

// Next reads, frames and decodes the next complete datablock
func (r *Reader) Next() (*DatablockResult, error) {
	tempBuf := make([]byte, r.readSize)
	invalidCount := 0

	for {
		// first, check if we already have a complete datablock
		if len(r.buffer) >= 3 {
			blockLen := int(r.buffer[1])<<8 | int(r.buffer[2])

			if blockLen < 3 {
				// invalid length, slide one byte and resynchronise
				r.buffer = r.buffer[1:]
				invalidCount++

				if invalidCount >= r.maxInvalidCount {
					return nil, fmt.Errorf("%w: too many consecutive invalid frames (%d)",
						ErrLengthMismatch, r.maxInvalidCount)
				}
				continue
			}

			invalidCount = 0

			if len(r.buffer) >= blockLen {
				frame := r.buffer[:blockLen]

				// slide remaining data to the beginning
				r.buffer = r.buffer[blockLen:]

				// compact the buffer if it's mostly empty so a burst
				// doesn't pin a large allocation
				if cap(r.buffer) > r.readSize*2 && len(r.buffer) < cap(r.buffer)/4 {
					newBuf := make([]byte, len(r.buffer), r.readSize)
					copy(newBuf, r.buffer)
					r.buffer = newBuf
				}

				return r.decoder.DecodeDatablock(frame)
			}
		}

		if len(r.buffer) >= r.maxBufferSize {
			return nil, fmt.Errorf("%w: buffer exceeded maximum allowed (%d bytes)",
				ErrLengthMismatch, r.maxBufferSize)
		}

		// need more data
		n, err := r.source.Read(tempBuf)
		if n > 0 {
			r.buffer = append(r.buffer, tempBuf[:n]...)
			continue
		}
		if err != nil {
			if err == io.EOF && len(r.buffer) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
	}
}
