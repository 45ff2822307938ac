// schema/xml_test.go
package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `
<asterix>
  <category cat="48" edition="1.32">
    <uap>
      <slot item="I048/010"/>
      <slot item="I048/140"/>
      <slot item="I048/020"/>
      <slot item="I048/250"/>
      <slot item="I048/120"/>
      <slot spare="true"/>
      <slot item="SP048"/>
    </uap>
    <item id="I048/010" name="Data Source Identifier" rule="mandatory" format="fixed">
      <fixed length="2">
        <field name="SAC" width="8" codec="unsigned"/>
        <field name="SIC" width="8" codec="unsigned"/>
      </fixed>
    </item>
    <item id="I048/140" name="Time of Day" rule="mandatory" format="fixed">
      <fixed length="3">
        <field name="TOD" width="24" codec="quantity" scale="1/128" unit="s"/>
      </fixed>
    </item>
    <item id="I048/020" name="Target Report Descriptor" rule="mandatory" format="variable">
      <part length="1">
        <field name="TYP" width="3"/>
        <field name="SIM" width="1"/>
        <field name="RDP" width="1"/>
        <field name="SPI" width="1"/>
        <field name="RAB" width="1"/>
      </part>
    </item>
    <item id="I048/250" name="BDS Register Data" format="repetitive">
      <element length="8">
        <field name="MBDATA" width="56" codec="raw"/>
        <field name="BDS1" width="4"/>
        <field name="BDS2" width="4"/>
      </element>
    </item>
    <item id="I048/120" name="Radial Doppler Speed" format="compound">
      <sub name="CAL">
        <item id="CAL" name="Calculated Doppler Speed" format="fixed">
          <fixed length="2">
            <field name="D" width="1"/>
            <field width="5" codec="spare"/>
            <field name="CAL" width="10" codec="squantity" scale="1" unit="m/s"/>
          </fixed>
        </item>
      </sub>
      <sub spare="true"/>
    </item>
    <item id="SP048" name="Special Purpose Field" format="explicit"/>
  </category>
</asterix>
`

func TestLoadXML(t *testing.T) {
	editions, err := LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)
	require.Len(t, editions, 1)

	ed := editions[0]
	assert.Equal(t, Category(48), ed.Category)
	assert.Equal(t, "1.32", ed.Tag)
	assert.Len(t, ed.UAP.Slots, 7)
	assert.True(t, ed.UAP.Slots[5].Spare)

	src, ok := ed.Item("I048/010")
	require.True(t, ok)
	assert.Equal(t, Fixed, src.Format)
	assert.Equal(t, Mandatory, src.Rule)
	require.Len(t, src.Fixed.Fields, 2)
	assert.Equal(t, uint16(8), src.Fixed.Fields[1].Offset)

	tod, ok := ed.Item("I048/140")
	require.True(t, ok)
	f := tod.Fixed.Fields[0]
	assert.Equal(t, FixedPoint, f.Codec.Kind)
	assert.Equal(t, Scale{Num: 1, Den: 128}, f.Codec.Scale)
	assert.Equal(t, "s", f.Codec.Unit)
	assert.False(t, f.Codec.Signed)

	trd, ok := ed.Item("I048/020")
	require.True(t, ok)
	assert.Equal(t, Variable, trd.Format)
	require.Len(t, trd.Parts, 1)

	bds, ok := ed.Item("I048/250")
	require.True(t, ok)
	assert.Equal(t, Repetitive, bds.Format)
	assert.Equal(t, uint8(8), bds.Element.Length)

	rds, ok := ed.Item("I048/120")
	require.True(t, ok)
	assert.Equal(t, Compound, rds.Format)
	require.Len(t, rds.Subs, 2)
	require.NotNil(t, rds.Subs[0].Item)
	assert.True(t, rds.Subs[0].Item.Fixed.Fields[2].Codec.Signed)
	assert.Nil(t, rds.Subs[1].Item)

	sp, ok := ed.Item("SP048")
	require.True(t, ok)
	assert.Equal(t, Explicit, sp.Format)
	assert.Nil(t, sp.Inner)
}

func TestLoadXMLIntoRegistry(t *testing.T) {
	editions, err := LoadXML(strings.NewReader(sampleXML))
	require.NoError(t, err)

	reg, err := NewRegistry(editions...)
	require.NoError(t, err)
	assert.True(t, reg.Supports(Category(48)))
}

func TestLoadXMLRejectsBadSchema(t *testing.T) {
	t.Run("NotXML", func(t *testing.T) {
		_, err := LoadXML(strings.NewReader("garbage"))
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("NoCategories", func(t *testing.T) {
		_, err := LoadXML(strings.NewReader("<asterix></asterix>"))
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("BadBitSum", func(t *testing.T) {
		doc := `
<asterix>
  <category cat="48" edition="1.0">
    <uap><slot item="I048/010"/></uap>
    <item id="I048/010" format="fixed">
      <fixed length="2"><field name="A" width="8"/></fixed>
    </item>
  </category>
</asterix>`
		_, err := LoadXML(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("UnknownCodec", func(t *testing.T) {
		doc := `
<asterix>
  <category cat="48" edition="1.0">
    <uap><slot item="I048/010"/></uap>
    <item id="I048/010" format="fixed">
      <fixed length="1"><field name="A" width="8" codec="float"/></fixed>
    </item>
  </category>
</asterix>`
		_, err := LoadXML(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrSchema)
	})
}

func TestParseScale(t *testing.T) {
	tests := []struct {
		in       string
		num, den int64
		wantErr  bool
	}{
		{"1", 1, 1, false},
		{"1/128", 1, 128, false},
		{"360/65536", 360, 65536, false},
		{"360/2^16", 360, 65536, false},
		{"180/2^30", 180, 1 << 30, false},
		{"25/4", 25, 4, false},
		{"-1/2", -1, 2, false},
		{"", 0, 0, true},
		{"x/2", 0, 0, true},
		{"1/2^x", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			num, den, err := parseScale(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.num, num)
			assert.Equal(t, tt.den, den)
		})
	}
}
