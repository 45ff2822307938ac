// internal/asxreader/tcp.go
package asxreader

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/asterixkit/getafix/asterix"
)

// tcpAsterixReader implements AsterixReader for TCP connections. Unlike
// UDP, datablocks can span segment boundaries, so framing is delegated to
// the library's resynchronising stream reader.
type tcpAsterixReader struct {
	listener net.Listener
	conn     net.Conn
	stream   *asterix.Reader
	decoder  *asterix.Decoder
	stats    ReaderStats

	bytesRead       int64
	blocksRead      int64
	transportErrors int32
}

// NewTCPAsterixReader listens on the port; Next accepts a connection and
// reads ASTERIX datablocks from it, one connection at a time
func NewTCPAsterixReader(port int, decoder *asterix.Decoder) (AsterixReader, error) {
	if decoder == nil {
		return nil, fmt.Errorf("decoder cannot be nil")
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on TCP port %d: %w", port, err)
	}

	return &tcpAsterixReader{
		listener: listener,
		decoder:  decoder,
		stats:    NewReaderStats(),
	}, nil
}

// Next reads and decodes the next datablock, accepting a connection first
// if none is established yet
func (r *tcpAsterixReader) Next() (*asterix.DatablockResult, error) {
	if r.conn == nil {
		conn, err := r.listener.Accept()
		if err != nil {
			atomic.AddInt32(&r.transportErrors, 1)
			return nil, fmt.Errorf("accepting TCP connection: %w", err)
		}
		r.conn = conn
		r.stats.SourceAddr = conn.RemoteAddr().String()
		r.stream = asterix.NewReader(&countingReader{conn: conn, n: &r.bytesRead}, r.decoder)
	}

	result, err := r.stream.Next()
	if err != nil {
		atomic.AddInt32(&r.transportErrors, 1)
		// drop the connection; the next call accepts a fresh one
		r.conn.Close()
		r.conn = nil
		r.stream = nil
		return nil, fmt.Errorf("reading TCP stream: %w", err)
	}

	atomic.AddInt64(&r.blocksRead, int64(len(result.Datablocks)))
	return result, nil
}

// Close closes the connection and the listener
func (r *tcpAsterixReader) Close() error {
	if r.conn != nil {
		r.conn.Close()
		r.conn = nil
	}
	if r.listener != nil {
		return r.listener.Close()
	}
	return nil
}

// Protocol returns the transport protocol name
func (r *tcpAsterixReader) Protocol() string {
	return "TCP"
}

// Stats returns reader statistics
func (r *tcpAsterixReader) Stats() ReaderStats {
	return ReaderStats{
		BytesRead:       atomic.LoadInt64(&r.bytesRead),
		BlocksRead:      atomic.LoadInt64(&r.blocksRead),
		TransportErrors: int(atomic.LoadInt32(&r.transportErrors)),
		ConnectionTime:  time.Since(r.stats.StartTime),
		SourceAddr:      r.stats.SourceAddr,
		StartTime:       r.stats.StartTime,
	}
}

// SetReadDeadline sets a deadline on the established connection
func (r *tcpAsterixReader) SetReadDeadline(t time.Time) error {
	if r.conn == nil {
		return nil // applied once a connection exists
	}
	return r.conn.SetReadDeadline(t)
}

// countingReader counts bytes as they are consumed from the connection
type countingReader struct {
	conn net.Conn
	n    *int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.conn.Read(p)
	atomic.AddInt64(c.n, int64(n))
	return n, err
}
