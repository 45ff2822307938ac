// schema/validate_test.go
package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalItems() []*ItemDef {
	return []*ItemDef{
		FixedItem("I000/010", "Data Source Identifier", Mandatory,
			NewPart(2, U("SAC", 8), U("SIC", 8))),
	}
}

func TestEditionValid(t *testing.T) {
	ed, err := NewEdition(Category(48), "1.0", Slots("I000/010"), minimalItems())
	require.NoError(t, err)
	assert.Equal(t, "CAT048 v1.0", ed.String())

	it, ok := ed.Item("I000/010")
	require.True(t, ok)
	assert.Equal(t, Fixed, it.Format)
}

func TestEditionRejectsMissingTag(t *testing.T) {
	_, err := NewEdition(Category(48), "", Slots("I000/010"), minimalItems())
	assert.ErrorIs(t, err, ErrSchema)
}

func TestEditionRejectsEmptyUAP(t *testing.T) {
	_, err := NewEdition(Category(48), "1.0", UAP{}, minimalItems())
	assert.ErrorIs(t, err, ErrSchema)
}

func TestEditionRejectsDanglingSlot(t *testing.T) {
	_, err := NewEdition(Category(48), "1.0", Slots("I000/010", "I000/020"), minimalItems())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchema)
	assert.Contains(t, err.Error(), "I000/020")
}

func TestEditionAcceptsSpareSlot(t *testing.T) {
	_, err := NewEdition(Category(48), "1.0", Slots("I000/010", ""), minimalItems())
	assert.NoError(t, err)
}

func TestEditionRejectsDuplicateItem(t *testing.T) {
	items := append(minimalItems(), minimalItems()...)
	_, err := NewEdition(Category(48), "1.0", Slots("I000/010"), items)
	assert.ErrorIs(t, err, ErrSchema)
}

// field widths must tile a fixed part exactly
func TestValidateFixedBitSum(t *testing.T) {
	t.Run("Underfull", func(t *testing.T) {
		items := []*ItemDef{
			FixedItem("I000/010", "x", Optional, NewPart(2, U("A", 8))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/010"), items)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("Overfull", func(t *testing.T) {
		items := []*ItemDef{
			FixedItem("I000/010", "x", Optional, NewPart(1, U("A", 8), U("B", 8))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/010"), items)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("SparesCount", func(t *testing.T) {
		items := []*ItemDef{
			FixedItem("I000/010", "x", Optional, NewPart(2, SpareBits(4), U("A", 12))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/010"), items)
		assert.NoError(t, err)
	})
}

// a variable extent reserves its FX bit; fields cover everything else
func TestValidateVariableExtent(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		items := []*ItemDef{
			VariableItem("I000/020", "x", Optional, NewExtent(1, U("A", 7))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/020"), items)
		assert.NoError(t, err)
	})

	t.Run("FieldsCoverFX", func(t *testing.T) {
		items := []*ItemDef{
			VariableItem("I000/020", "x", Optional, NewExtent(1, U("A", 8))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/020"), items)
		assert.ErrorIs(t, err, ErrSchema)
	})
}

func TestValidateCodecConstraints(t *testing.T) {
	t.Run("TwosComplementWidthOne", func(t *testing.T) {
		items := []*ItemDef{
			FixedItem("I000/030", "x", Optional, NewPart(1, I("A", 1), SpareBits(7))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/030"), items)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("ZeroScale", func(t *testing.T) {
		items := []*ItemDef{
			FixedItem("I000/030", "x", Optional, NewPart(1, Q("A", 8, 1, 0, "s"))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/030"), items)
		assert.ErrorIs(t, err, ErrSchema)
	})

	t.Run("ZeroWidth", func(t *testing.T) {
		items := []*ItemDef{
			FixedItem("I000/030", "x", Optional, NewPart(1, U("A", 0), U("B", 8))),
		}
		_, err := NewEdition(Category(48), "1.0", Slots("I000/030"), items)
		assert.ErrorIs(t, err, ErrSchema)
	})
}

func TestValidateRepetitiveNeedsElement(t *testing.T) {
	items := []*ItemDef{
		{ID: "I000/040", Format: Repetitive},
	}
	_, err := NewEdition(Category(48), "1.0", Slots("I000/040"), items)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestValidateCompoundDepthLimit(t *testing.T) {
	leaf := FixedItem("LEAF", "x", Optional, NewPart(1, U("A", 8)))

	nest := func(depth int) *ItemDef {
		def := leaf
		for i := 0; i < depth; i++ {
			def = CompoundItem("C", "x", Optional, Sub("S", def))
		}
		return def
	}

	t.Run("AtLimit", func(t *testing.T) {
		items := []*ItemDef{nest(MaxCompoundDepth)}
		_, err := NewEdition(Category(48), "1.0", Slots("C"), items)
		assert.NoError(t, err)
	})

	t.Run("PastLimit", func(t *testing.T) {
		items := []*ItemDef{nest(MaxCompoundDepth + 1)}
		_, err := NewEdition(Category(48), "1.0", Slots("C"), items)
		assert.ErrorIs(t, err, ErrSchema)
	})
}

func TestRegistry(t *testing.T) {
	ed1, err := NewEdition(Category(48), "1.0", Slots("I000/010"), minimalItems())
	require.NoError(t, err)
	ed2, err := NewEdition(Category(48), "1.1", Slots("I000/010"), minimalItems())
	require.NoError(t, err)

	reg, err := NewRegistry(ed1, ed2)
	require.NoError(t, err)

	assert.True(t, reg.Supports(Category(48)))
	assert.False(t, reg.Supports(Category(62)))
	assert.Equal(t, []Category{48}, reg.Categories())

	latest, ok := reg.Latest(Category(48))
	require.True(t, ok)
	assert.Equal(t, "1.1", latest.Tag)

	got, ok := reg.Edition(Category(48), "1.0")
	require.True(t, ok)
	assert.Equal(t, ed1, got)

	_, ok = reg.Edition(Category(48), "2.0")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicateEdition(t *testing.T) {
	ed1, err := NewEdition(Category(48), "1.0", Slots("I000/010"), minimalItems())
	require.NoError(t, err)
	ed2, err := NewEdition(Category(48), "1.0", Slots("I000/010"), minimalItems())
	require.NoError(t, err)

	_, err = NewRegistry(ed1, ed2)
	assert.ErrorIs(t, err, ErrSchema)
}
