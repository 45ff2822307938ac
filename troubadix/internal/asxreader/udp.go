// internal/asxreader/udp.go
package asxreader

import (
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/asterixkit/getafix/asterix"
)

// udpAsterixReader implements AsterixReader for UDP sockets. Each datagram
// carries one or more complete datablocks; nothing spans datagrams.
type udpAsterixReader struct {
	conn    *net.UDPConn
	decoder *asterix.Decoder
	stats   ReaderStats

	// For atomic access to stats
	bytesRead       int64
	blocksRead      int64
	transportErrors int32
}

// NewUDPAsterixReader creates a reader for UDP ASTERIX traffic
func NewUDPAsterixReader(port int, decoder *asterix.Decoder) (AsterixReader, error) {
	if decoder == nil {
		return nil, fmt.Errorf("decoder cannot be nil")
	}

	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve UDP address: %w", err)
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on UDP port %d: %w", port, err)
	}

	// initial read deadline so Next never blocks indefinitely
	conn.SetReadDeadline(time.Now().Add(1 * time.Second))

	return &udpAsterixReader{
		conn:    conn,
		decoder: decoder,
		stats:   NewReaderStats(),
	}, nil
}

// Next reads one datagram and decodes every datablock it carries
func (r *udpAsterixReader) Next() (*asterix.DatablockResult, error) {
	if r.conn == nil {
		return nil, fmt.Errorf("nil UDP connection")
	}

	buf := make([]byte, 65536) // max UDP packet size

	n, addr, err := r.conn.ReadFromUDP(buf)
	if err != nil {
		atomic.AddInt32(&r.transportErrors, 1)

		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, fmt.Errorf("UDP read timeout: %w", err)
		}
		return nil, fmt.Errorf("reading UDP packet: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("received empty UDP packet")
	}

	atomic.AddInt64(&r.bytesRead, int64(n))
	if addr != nil {
		r.stats.SourceAddr = addr.String()
	}

	result, err := r.decoder.DecodeDatablock(buf[:n])
	if err != nil {
		return nil, fmt.Errorf("decoding datagram: %w", err)
	}
	atomic.AddInt64(&r.blocksRead, int64(len(result.Datablocks)))
	return result, nil
}

// Close closes the underlying connection
func (r *udpAsterixReader) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// Protocol returns the transport protocol name
func (r *udpAsterixReader) Protocol() string {
	return "UDP"
}

// Stats returns reader statistics
func (r *udpAsterixReader) Stats() ReaderStats {
	return ReaderStats{
		BytesRead:       atomic.LoadInt64(&r.bytesRead),
		BlocksRead:      atomic.LoadInt64(&r.blocksRead),
		TransportErrors: int(atomic.LoadInt32(&r.transportErrors)),
		ConnectionTime:  time.Since(r.stats.StartTime),
		SourceAddr:      r.stats.SourceAddr,
		StartTime:       r.stats.StartTime,
	}
}

// SetReadDeadline sets a deadline for the next ReadFromUDP call
func (r *udpAsterixReader) SetReadDeadline(t time.Time) error {
	if r.conn == nil {
		return fmt.Errorf("nil UDP connection")
	}
	return r.conn.SetReadDeadline(t)
}
