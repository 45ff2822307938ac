// cat/registry_test.go
package cat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asterixkit/getafix/asterix"
	"github.com/asterixkit/getafix/schema"
)

func TestBuiltinRegistry(t *testing.T) {
	reg, err := BuiltinRegistry()
	require.NoError(t, err)

	assert.Equal(t,
		[]schema.Category{21, 34, 48, 62},
		reg.Categories())

	ed, ok := reg.Edition(schema.Category(48), "1.32")
	require.True(t, ok)
	assert.Len(t, ed.UAP.Slots, 28)

	ed, ok = reg.Edition(schema.Category(21), "2.6")
	require.True(t, ok)
	assert.Len(t, ed.UAP.Slots, 48)

	_, ok = reg.Edition(schema.Category(34), "1.29")
	assert.True(t, ok)
	_, ok = reg.Edition(schema.Category(62), "1.20")
	assert.True(t, ok)
}

func TestBuiltinRegistryDecodesTargetReport(t *testing.T) {
	reg, err := BuiltinRegistry()
	require.NoError(t, err)

	decoder, err := asterix.NewDecoder(reg)
	require.NoError(t, err)

	block := []byte{
		0x30, 0x00, 0x0A,
		0xE0,
		0x19, 0xC9,
		0x35, 0x6D, 0x4B,
		0x40,
	}
	res, err := decoder.DecodeDatablock(block)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.Records[0].Items, 3)
}

func TestBuiltinRegistryDecodesServiceMessage(t *testing.T) {
	reg, err := BuiltinRegistry()
	require.NoError(t, err)

	decoder, err := asterix.NewDecoder(reg)
	require.NoError(t, err)

	// CAT034 north marker: I034/010, I034/000, I034/030
	block := []byte{
		0x22, 0x00, 0x0C,
		0xE0,
		0x00, 0x07,
		0x01,
		0x35, 0x6D, 0x4B,
	}
	block[2] = byte(len(block))

	res, err := decoder.DecodeDatablock(block)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Empty(t, res.Errors)

	rec := res.Records[0]
	typ, ok := rec.Item("I034/000")
	require.True(t, ok)
	assert.Equal(t, uint64(1), typ.(asterix.Scalar).Uint)
	assert.Equal(t, "North marker", typ.(asterix.Scalar).Label())
}
