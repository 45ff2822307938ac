// asterix/datablock_test.go
package asterix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asterixkit/getafix/cat/cat021"
	"github.com/asterixkit/getafix/cat/cat048"
	"github.com/asterixkit/getafix/schema"
)

func multiCatDecoder(t testing.TB, opts ...Option) *Decoder {
	t.Helper()
	ed48, err := cat048.Edition132()
	require.NoError(t, err)
	ed21, err := cat021.Edition26()
	require.NoError(t, err)
	reg, err := schema.NewRegistry(ed48, ed21)
	require.NoError(t, err)
	d, err := NewDecoder(reg, opts...)
	require.NoError(t, err)
	return d
}

// one CAT048 datablock with a minimal target report
var minimalBlock = []byte{
	0x30, 0x00, 0x0A,
	0xE0,
	0x19, 0xC9,
	0x35, 0x6D, 0x4B,
	0x40,
}

func TestDecodeDatablockMinimal(t *testing.T) {
	d := multiCatDecoder(t)

	res, err := d.DecodeDatablock(minimalBlock)
	require.NoError(t, err)

	require.Len(t, res.Datablocks, 1)
	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Errors)
	assert.Equal(t, len(minimalBlock), res.BytesConsumed)

	block := res.Datablocks[0]
	assert.Equal(t, cat048.Cat, block.Category)
	assert.Equal(t, 10, block.Length)

	rec := res.Records[0]
	assert.Len(t, rec.Items, 3)
	assert.Equal(t, 3, rec.Offset)
	assert.Equal(t, 7, rec.Length)
}

func TestDecodeDatablockTwoRecords(t *testing.T) {
	d := multiCatDecoder(t)

	record := minimalBlock[3:]
	block := []byte{0x30, 0x00, byte(3 + 2*len(record))}
	block = append(block, record...)
	block = append(block, record...)

	res, err := d.DecodeDatablock(block)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Empty(t, res.Errors)
	assert.Equal(t, res.Records[0].Items, res.Records[1].Items)
}

// decoding a concatenation equals decoding each block separately
func TestDecodeDatablockConcatenation(t *testing.T) {
	d := multiCatDecoder(t)

	// a CAT021 block: I021/010 only
	block21 := []byte{0x15, 0x00, 0x06, 0x80, 0x00, 0x07}

	joined := append(append([]byte{}, minimalBlock...), block21...)

	resJoined, err := d.DecodeDatablock(joined)
	require.NoError(t, err)

	resA, err := d.DecodeDatablock(minimalBlock)
	require.NoError(t, err)
	resB, err := d.DecodeDatablock(block21)
	require.NoError(t, err)

	require.Len(t, resJoined.Datablocks, 2)
	require.Equal(t, len(resA.Records)+len(resB.Records), len(resJoined.Records))

	assert.Equal(t, resA.Records[0].Items, resJoined.Records[0].Items)
	assert.Equal(t, resB.Records[0].Items, resJoined.Records[1].Items)
	assert.Equal(t, cat021.Cat, resJoined.Records[1].Category)
}

func TestDecodeDatablockShort(t *testing.T) {
	d := multiCatDecoder(t)

	res, err := d.DecodeDatablock([]byte{0x30, 0x00})
	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], ErrShortDatablock)
	assert.Empty(t, res.Records)

	_, err = d.DecodeDatablock(nil)
	assert.ErrorIs(t, err, ErrShortDatablock)
}

func TestDecodeDatablockLengthMismatch(t *testing.T) {
	d := multiCatDecoder(t)

	t.Run("DeclaredTooSmall", func(t *testing.T) {
		res, err := d.DecodeDatablock([]byte{0x30, 0x00, 0x02, 0xE0})
		require.NoError(t, err)
		require.Len(t, res.Errors, 1)
		assert.ErrorIs(t, res.Errors[0], ErrLengthMismatch)
	})

	t.Run("DeclaredPastBuffer", func(t *testing.T) {
		res, err := d.DecodeDatablock([]byte{0x30, 0x00, 0xFF, 0xE0})
		require.NoError(t, err)
		require.Len(t, res.Errors, 1)
		assert.ErrorIs(t, res.Errors[0], ErrLengthMismatch)
	})
}

func TestDecodeDatablockUnsupportedCategory(t *testing.T) {
	d := multiCatDecoder(t)

	block := []byte{99, 0x00, 0x06, 0xAA, 0xBB, 0xCC}
	res, err := d.DecodeDatablock(block)
	require.NoError(t, err)

	require.Len(t, res.Records, 1)
	rec := res.Records[0]
	assert.Equal(t, schema.Category(99), rec.Category)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, rec.Raw)
	require.Len(t, rec.Errors, 1)
	assert.ErrorIs(t, rec.Errors[0], ErrUnsupportedCategory)

	// the stream continues after an unsupported block
	joined := append(append([]byte{}, block...), minimalBlock...)
	res, err = d.DecodeDatablock(joined)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Len(t, res.Records[1].Items, 3)
}

// a datablock whose declared length cuts an 8-byte item one byte short:
// the record keeps the truncation error, the item stays absent, and the
// framer reports where the block became undecodable
func TestDecodeDatablockTruncatedItem(t *testing.T) {
	d := multiCatDecoder(t)

	block := []byte{
		0x15, 0x00, 0x0B, // CAT021, LEN=11
		0x02,                               // FSPEC: FRN 7 = I021/131
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, // 7 of 8 body bytes
	}
	res, err := d.DecodeDatablock(block)
	require.NoError(t, err)

	require.Len(t, res.Datablocks, 1)
	block0 := res.Datablocks[0]
	require.Len(t, block0.Records, 1)

	rec := block0.Records[0]
	_, present := rec.Item("I021/131")
	assert.False(t, present)

	foundTrunc := false
	for _, e := range rec.Errors {
		if e.Kind == ErrTruncated {
			foundTrunc = true
		}
	}
	assert.True(t, foundTrunc)

	require.Len(t, block0.Errors, 1)
	assert.ErrorIs(t, block0.Errors[0], ErrDatablockTruncated)
}

// an unrecoverable record kills its own datablock only; the next block
// still decodes
func TestDecodeDatablockRecoveryAcrossBlocks(t *testing.T) {
	d := multiCatDecoder(t)

	bad := []byte{
		0x30, 0x00, 0x06,
		0xC0,       // announces I048/010 and I048/140
		0x19, 0xC9, // time of day is missing entirely
	}
	joined := append(append([]byte{}, bad...), minimalBlock...)

	res, err := d.DecodeDatablock(joined)
	require.NoError(t, err)

	require.Len(t, res.Datablocks, 2)
	assert.True(t, res.Datablocks[0].Failed())
	assert.False(t, res.Datablocks[1].Failed())

	require.Len(t, res.Records, 2)
	assert.Len(t, res.Records[1].Items, 3)
	assert.Empty(t, res.Records[1].Errors)
}
