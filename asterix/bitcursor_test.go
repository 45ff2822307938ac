// asterix/bitcursor_test.go
package asterix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitCursorWindow(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}

	t.Run("FullWindow", func(t *testing.T) {
		cur, err := NewBitCursor(data, 0, 4)
		require.NoError(t, err)
		assert.Equal(t, 32, cur.RemainingBits())
		assert.Equal(t, 4, cur.RemainingBytes())
	})

	t.Run("SubWindow", func(t *testing.T) {
		cur, err := NewBitCursor(data, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, cur.RemainingBytes())
		assert.Equal(t, 1, cur.BytePos())

		b, err := cur.ReadBytes(1)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x02}, b)
		assert.Equal(t, 2, cur.BytePos())
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		_, err := NewBitCursor(data, 2, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = NewBitCursor(data, -1, 2)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestBitCursorReadBitsBE(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		widths []uint8
		want   []uint64
	}{
		{"WholeByte", []byte{0xA5}, []uint8{8}, []uint64{0xA5}},
		{"SplitByte", []byte{0xA5}, []uint8{4, 4}, []uint64{0xA, 0x5}},
		{"SingleBits", []byte{0xB0}, []uint8{1, 1, 1, 1, 4}, []uint64{1, 0, 1, 1, 0}},
		{"CrossByte", []byte{0x12, 0x34}, []uint8{12, 4}, []uint64{0x123, 0x4}},
		{"ThreeBytes", []byte{0x35, 0x6D, 0x4B}, []uint8{24}, []uint64{0x356D4B}},
		{"UnevenSpan", []byte{0xFF, 0x80}, []uint8{3, 7, 6}, []uint64{0x7, 0x7E, 0x00}},
		{"Full64", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			[]uint8{64}, []uint64{^uint64(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur, err := NewBitCursor(tt.data, 0, len(tt.data))
			require.NoError(t, err)
			for i, w := range tt.widths {
				got, err := cur.ReadBitsBE(w)
				require.NoError(t, err)
				assert.Equal(t, tt.want[i], got, "read %d", i)
			}
		})
	}
}

func TestBitCursorTruncated(t *testing.T) {
	cur, err := NewBitCursor([]byte{0xFF}, 0, 1)
	require.NoError(t, err)

	_, err = cur.ReadBitsBE(4)
	require.NoError(t, err)

	_, err = cur.ReadBitsBE(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncated)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 0, de.ByteOffset)
	assert.Equal(t, 4, de.BitOffset)

	// the failed read must not advance the cursor
	assert.Equal(t, 4, cur.RemainingBits())
}

func TestBitCursorMisaligned(t *testing.T) {
	cur, err := NewBitCursor([]byte{0xAB, 0xCD}, 0, 2)
	require.NoError(t, err)

	_, err = cur.ReadBitsBE(3)
	require.NoError(t, err)

	_, err = cur.ReadBytes(1)
	assert.ErrorIs(t, err, ErrMisaligned)

	_, err = cur.PeekByte(0)
	assert.ErrorIs(t, err, ErrMisaligned)

	cur.AlignToByte()
	assert.True(t, cur.Aligned())

	b, err := cur.ReadBytes(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCD}, b)
}

func TestBitCursorAlignNoOp(t *testing.T) {
	cur, err := NewBitCursor([]byte{0x11, 0x22}, 0, 2)
	require.NoError(t, err)

	cur.AlignToByte()
	assert.Equal(t, 16, cur.RemainingBits())

	b, err := cur.PeekByte(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0x22), b)
	assert.Equal(t, 2, cur.RemainingBytes())
}

func TestBitCursorSkipClamped(t *testing.T) {
	cur, err := NewBitCursor([]byte{1, 2, 3}, 0, 3)
	require.NoError(t, err)

	cur.Skip(2)
	assert.Equal(t, 1, cur.RemainingBytes())

	cur.Skip(5)
	assert.Equal(t, 0, cur.RemainingBits())
}
