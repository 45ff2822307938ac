// schema/builder.go
package schema

// Helpers for declaring editions in Go. Field offsets are assigned
// sequentially by NewPart/NewExtent so declarations read top-to-bottom like
// the tables in the category specifications.

// U declares an unsigned integer field
func U(name string, width uint8) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{Kind: Unsigned}}
}

// I declares a two's-complement integer field
func I(name string, width uint8) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{Kind: TwosComplement}}
}

// Oct declares an octal-coded field (e.g. Mode-3/A, three bits per digit)
func Oct(name string, width uint8) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{Kind: Octal}}
}

// Str6 declares an ICAO 6-bit character string field
func Str6(name string, width uint8) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{Kind: Icao6Bit}}
}

// Str declares an ASCII string field
func Str(name string, width uint8) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{Kind: Ascii}}
}

// Bytes declares a raw byte field
func Bytes(name string, width uint8) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{Kind: Raw}}
}

// Q declares an unsigned fixed-point field with scale num/den
func Q(name string, width uint8, num, den int64, unit string) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{
		Kind:  FixedPoint,
		Scale: Scale{Num: num, Den: den},
		Unit:  unit,
	}}
}

// QS declares a signed (two's-complement) fixed-point field
func QS(name string, width uint8, num, den int64, unit string) BitField {
	return BitField{Name: name, Width: width, Codec: Codec{
		Kind:   FixedPoint,
		Signed: true,
		Scale:  Scale{Num: num, Den: den},
		Unit:   unit,
	}}
}

// SpareBits declares bits that are consumed but carry no value
func SpareBits(width uint8) BitField {
	return BitField{Name: "spare", Width: width, Codec: Codec{Kind: Spare}}
}

// Flag declares a single-bit unsigned field
func Flag(name string) BitField {
	return U(name, 1)
}

// Enumerate attaches value labels to a field
func Enumerate(f BitField, labels map[uint64]string) BitField {
	f.Codec.Enum = labels
	return f
}

// NewPart lays out a fixed-length part of length bytes. Offsets are
// assigned in declaration order from the MSB of the first byte.
func NewPart(length uint8, fields ...BitField) *Part {
	p := &Part{Length: length, Fields: make([]BitField, len(fields))}
	var off uint16
	for i, f := range fields {
		f.Offset = off
		off += uint16(f.Width)
		p.Fields[i] = f
	}
	return p
}

// NewExtent lays out one extent of a Variable item. The trailing FX bit is
// implicit: declared fields must cover all bits of the extent except the
// last one.
func NewExtent(length uint8, fields ...BitField) Part {
	return *NewPart(length, fields...)
}

// FixedItem declares a Fixed-format item
func FixedItem(id, name string, rule Rule, part *Part) *ItemDef {
	return &ItemDef{ID: id, Name: name, Format: Fixed, Rule: rule, Fixed: part}
}

// VariableItem declares a Variable-format (FX-extended) item
func VariableItem(id, name string, rule Rule, parts ...Part) *ItemDef {
	return &ItemDef{ID: id, Name: name, Format: Variable, Rule: rule, Parts: parts}
}

// RepetitiveItem declares a Repetitive-format (REP-prefixed) item
func RepetitiveItem(id, name string, rule Rule, element *Part) *ItemDef {
	return &ItemDef{ID: id, Name: name, Format: Repetitive, Rule: rule, Element: element}
}

// CompoundItem declares a Compound-format item. Subs map secondary-FSPEC
// slots in order; use SpareSub for declared spare slots.
func CompoundItem(id, name string, rule Rule, subs ...Subfield) *ItemDef {
	return &ItemDef{ID: id, Name: name, Format: Compound, Rule: rule, Subs: subs}
}

// Sub declares one subfield of a Compound item
func Sub(name string, item *ItemDef) Subfield {
	return Subfield{Name: name, Item: item}
}

// SpareSub declares a spare secondary-FSPEC slot
func SpareSub() Subfield {
	return Subfield{}
}

// ExplicitItem declares an Explicit-format (LEN-prefixed) item. inner may
// be nil; if set, the body is additionally decoded with it.
func ExplicitItem(id, name string, rule Rule, inner *ItemDef) *ItemDef {
	return &ItemDef{ID: id, Name: name, Format: Explicit, Rule: rule, Inner: inner}
}

// Slots builds a UAP from item IDs in FRN order; "" marks a spare slot
func Slots(ids ...string) UAP {
	u := UAP{Slots: make([]UapSlot, len(ids))}
	for i, id := range ids {
		if id == "" {
			u.Slots[i] = UapSlot{Spare: true}
		} else {
			u.Slots[i] = UapSlot{Item: id}
		}
	}
	return u
}
