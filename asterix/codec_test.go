// asterix/codec_test.go
package asterix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/asterixkit/getafix/schema"
)

func readField(t *testing.T, data []byte, f schema.BitField) Scalar {
	t.Helper()
	cur, err := NewBitCursor(data, 0, len(data))
	require.NoError(t, err)
	s, emit, err := decodeField(&cur, f)
	require.NoError(t, err)
	require.True(t, emit)
	return s
}

func TestCodecUnsigned(t *testing.T) {
	s := readField(t, []byte{0x19, 0xC9}, schema.U("SAC", 8))
	assert.Equal(t, uint64(0x19), s.Uint)
	assert.Equal(t, "25", s.String())
}

func TestCodecEnumLabel(t *testing.T) {
	f := schema.Enumerate(schema.U("TYP", 8), map[uint64]string{2: "SSR"})
	s := readField(t, []byte{0x02}, f)
	assert.Equal(t, "SSR", s.Label())
	assert.Equal(t, "2 (SSR)", s.String())
}

func TestCodecTwosComplementBoundaries(t *testing.T) {
	// width w: 0b100..0 is -2^(w-1), 0b011..1 is 2^(w-1)-1
	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(2, 63).Draw(t, "width")

		min := signExtend(1<<(w-1), uint8(w))
		assert.Equal(t, -(int64(1) << (w - 1)), min)

		max := signExtend(1<<(w-1)-1, uint8(w))
		assert.Equal(t, int64(1)<<(w-1)-1, max)
	})

	assert.Equal(t, int64(math.MinInt64), signExtend(1<<63, 64))
	assert.Equal(t, int64(math.MaxInt64), signExtend(1<<63-1, 64))
}

func TestCodecTwosComplementField(t *testing.T) {
	s := readField(t, []byte{0xFF, 0xFE}, schema.I("X", 16))
	assert.Equal(t, int64(-2), s.Int)
}

func TestCodecOctal(t *testing.T) {
	tests := []struct {
		name  string
		raw   uint64
		width uint8
		want  uint64
	}{
		{"Emergency7700", 0b111111000000, 12, 7700},
		{"Zero", 0, 12, 0},
		{"AllOnes", 0o7777, 12, 7777},
		{"Mixed", 0o1234, 12, 1234},
		{"PartialTopGroup", 0b11_010, 5, 32}, // 2-bit top group keeps its value
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, octalDigits(tt.raw, tt.width))
		})
	}
}

func TestCodecOctalField(t *testing.T) {
	// flag nibble, then a Mode-3/A code of 7700
	cur, err := NewBitCursor([]byte{0x0F, 0xC0}, 0, 2)
	require.NoError(t, err)
	_, err = cur.ReadBitsBE(4)
	require.NoError(t, err)

	s, emit, err := decodeField(&cur, schema.Oct("MODE3A", 12))
	require.NoError(t, err)
	require.True(t, emit)
	assert.Equal(t, uint64(7700), s.Uint)
	assert.Equal(t, "7700", s.String())
}

func TestCodecFixedPointExact(t *testing.T) {
	s := readField(t, []byte{0x35, 0x6D, 0x4B}, schema.Q("TOD", 24, 1, 128, "s"))
	require.Equal(t, schema.FixedPoint, s.Kind)
	assert.Equal(t, int64(3501899), s.Qty.Raw)
	assert.Equal(t, schema.Scale{Num: 1, Den: 128}, s.Qty.Scale)
	assert.Equal(t, 27358.5859375, s.Qty.Float())
	assert.Equal(t, "s", s.Qty.Unit)
}

func TestCodecFixedPointSigned(t *testing.T) {
	s := readField(t, []byte{0xFF, 0x00}, schema.QS("X", 16, 1, 128, "NM"))
	assert.Equal(t, int64(-256), s.Qty.Raw)
	assert.Equal(t, -2.0, s.Qty.Float())
}

func TestCodecIcao6Bit(t *testing.T) {
	// "AFR1234 " packed as 8 six-bit characters
	chars := []uint64{1, 6, 18, 49, 50, 51, 52, 32}
	var raw uint64
	for _, c := range chars {
		raw = raw<<6 | c
	}
	data := make([]byte, 6)
	for i := 5; i >= 0; i-- {
		data[i] = byte(raw)
		raw >>= 8
	}

	s := readField(t, data, schema.Str6("IDENT", 48))
	assert.Equal(t, "AFR1234 ", s.Str)
}

func TestCodecIcao6BitUndefined(t *testing.T) {
	assert.Equal(t, "?", icao6String(27, 6)) // 27 is not in the alphabet
	assert.Equal(t, " ", icao6String(32, 6))
	assert.Equal(t, "Z", icao6String(26, 6))
	assert.Equal(t, "0", icao6String(48, 6))
	assert.Equal(t, "9", icao6String(57, 6))
}

func TestCodecAscii(t *testing.T) {
	s := readField(t, []byte{'A', 'B', 0x07, '1'}, schema.Str("CS", 32))
	assert.Equal(t, "AB?1", s.Str)
}

func TestCodecRawBytes(t *testing.T) {
	data := []byte{0xAB, 0xCD, 0xEF}
	s := readField(t, data, schema.Bytes("ADDR", 24))
	assert.Equal(t, []byte{0xAB, 0xCD, 0xEF}, s.Data)

	// the scalar owns its bytes
	data[0] = 0x00
	assert.Equal(t, byte(0xAB), s.Data[0])
}

func TestCodecSpareConsumedNotEmitted(t *testing.T) {
	cur, err := NewBitCursor([]byte{0xFF}, 0, 1)
	require.NoError(t, err)

	_, emit, err := decodeField(&cur, schema.SpareBits(4))
	require.NoError(t, err)
	assert.False(t, emit)
	assert.Equal(t, 4, cur.RemainingBits())
}

func TestCodecRawUnaligned(t *testing.T) {
	// a raw field that does not start on a byte boundary still decodes
	cur, err := NewBitCursor([]byte{0xF0, 0xF0}, 0, 2)
	require.NoError(t, err)

	_, err = cur.ReadBitsBE(4)
	require.NoError(t, err)

	s, emit, err := decodeField(&cur, schema.Bytes("R", 12))
	require.NoError(t, err)
	require.True(t, emit)
	assert.Equal(t, []byte{0x0, 0xF0}, s.Data)
}
