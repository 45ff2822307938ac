// asterix/reader_test.go
package asterix

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderSingleBlock(t *testing.T) {
	d := multiCatDecoder(t)
	r := NewReader(bytes.NewReader(minimalBlock), d)
	defer r.Close()

	res, err := r.Next()
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Len(t, res.Records[0].Items, 3)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderBackToBackBlocks(t *testing.T) {
	d := multiCatDecoder(t)

	stream := append(append([]byte{}, minimalBlock...), minimalBlock...)
	r := NewReader(bytes.NewReader(stream), d)
	defer r.Close()

	for i := 0; i < 2; i++ {
		res, err := r.Next()
		require.NoError(t, err, "block %d", i)
		assert.Len(t, res.Records, 1)
	}

	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderSmallChunks(t *testing.T) {
	d := multiCatDecoder(t)

	// one byte per Read call; framing must reassemble across reads
	r := NewReader(iotest(minimalBlock), d, WithReadSize(1))
	defer r.Close()

	res, err := r.Next()
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
}

// iotest yields one byte per read
func iotest(data []byte) io.Reader {
	return &oneByteReader{data: data}
}

type oneByteReader struct {
	data []byte
	pos  int
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

func TestReaderGivesUpOnGarbage(t *testing.T) {
	d := multiCatDecoder(t)

	// every resync step sees an impossible length; after the cap the
	// reader refuses rather than sliding forever
	garbage := make([]byte, 16)
	r := NewReader(bytes.NewReader(garbage), d)
	defer r.Close()

	_, err := r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestReaderTruncatedStream(t *testing.T) {
	d := multiCatDecoder(t)

	r := NewReader(bytes.NewReader(minimalBlock[:6]), d)
	defer r.Close()

	_, err := r.Next()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
