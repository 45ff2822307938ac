// schema/schema.go
package schema

import "fmt"

// Category represents an ASTERIX category number
type Category uint8

func (c Category) String() string {
	return fmt.Sprintf("CAT%03d", c)
}

// Format identifies the wire structure of a data item
type Format uint8

const (
	Fixed Format = iota + 1
	Variable
	Repetitive
	Compound
	Explicit
)

func (f Format) String() string {
	switch f {
	case Fixed:
		return "fixed"
	case Variable:
		return "variable"
	case Repetitive:
		return "repetitive"
	case Compound:
		return "compound"
	case Explicit:
		return "explicit"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Rule expresses the presence rule of a data item within its UAP
type Rule uint8

const (
	Optional Rule = iota
	Mandatory
	Conditional
)

func (r Rule) String() string {
	switch r {
	case Mandatory:
		return "mandatory"
	case Conditional:
		return "conditional"
	default:
		return "optional"
	}
}

// CodecKind selects how a raw bit-field is turned into a typed value
type CodecKind uint8

const (
	Unsigned CodecKind = iota + 1
	TwosComplement
	Octal
	Ascii
	Icao6Bit
	Raw
	FixedPoint
	Spare // consumed but not emitted
)

func (k CodecKind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case TwosComplement:
		return "int"
	case Octal:
		return "octal"
	case Ascii:
		return "ascii"
	case Icao6Bit:
		return "icao6"
	case Raw:
		return "raw"
	case FixedPoint:
		return "quantity"
	case Spare:
		return "spare"
	default:
		return fmt.Sprintf("codec(%d)", uint8(k))
	}
}

// Scale is an exact rational scale factor. Keeping the factor rational
// rather than as a float preserves bit-exact comparisons in conformance
// tests; conversion to float is a presentation concern.
type Scale struct {
	Num int64
	Den int64
}

func (s Scale) String() string {
	if s.Den == 1 {
		return fmt.Sprintf("%d", s.Num)
	}
	return fmt.Sprintf("%d/%d", s.Num, s.Den)
}

// Codec describes the value interpretation of a single bit-field
type Codec struct {
	Kind   CodecKind
	Signed bool   // FixedPoint: raw is two's-complement
	Scale  Scale  // FixedPoint only
	Unit   string // FixedPoint only, informational
	Enum   map[uint64]string
}

// BitField is one field inside a fixed-length part. Offset counts bits from
// the MSB of the part's first byte; ASTERIX lays multi-byte fields out
// MSB-to-LSB across consecutive bytes.
type BitField struct {
	Name   string
	Offset uint16
	Width  uint8
	Codec  Codec
}

// Part is a fixed-length run of bytes with a bit-field layout. It backs a
// Fixed item, one extent of a Variable item, and the element of a
// Repetitive item. For Variable parts the trailing FX bit is implicit and
// not part of Fields.
type Part struct {
	Length uint8
	Fields []BitField
}

// Subfield maps one secondary-FSPEC slot of a Compound item to a nested
// item definition. A nil Item marks a declared spare slot.
type Subfield struct {
	Name string
	Item *ItemDef
}

// ItemDef is the declarative definition of one data item. Exactly one of
// the format-specific bodies is populated, selected by Format.
type ItemDef struct {
	ID     string
	Name   string
	Format Format
	Rule   Rule

	Fixed    *Part      // Fixed
	Parts    []Part     // Variable, in extent order
	Element  *Part      // Repetitive
	Subs     []Subfield // Compound, index k is secondary-FSPEC slot k+1
	Inner    *ItemDef   // Explicit: optional decoder for the body
}

// UapSlot is one FSPEC position of a UAP. FX continuation positions are
// not represented; slot k (1-based) is FSPEC data bit k.
type UapSlot struct {
	Item  string // "" for spare slots
	Spare bool
}

// UAP is the ordered mapping from FSPEC bit positions to data items
type UAP struct {
	Slots []UapSlot
}

// MaxFRN returns the highest slot number of the UAP
func (u UAP) MaxFRN() int {
	return len(u.Slots)
}

// Slot resolves a 1-based FSPEC slot number
func (u UAP) Slot(frn int) (UapSlot, bool) {
	if frn < 1 || frn > len(u.Slots) {
		return UapSlot{}, false
	}
	return u.Slots[frn-1], true
}

// Edition is one revision of a category schema. Editions are immutable
// after construction; they may be shared by any number of decoders.
type Edition struct {
	Category Category
	Tag      string // e.g. "1.32"
	UAP      UAP
	Items    []*ItemDef

	index map[string]*ItemDef
}

// NewEdition assembles and validates an edition. The items slice is the
// definition arena; the UAP references items by ID.
func NewEdition(cat Category, tag string, uap UAP, items []*ItemDef) (*Edition, error) {
	e := &Edition{
		Category: cat,
		Tag:      tag,
		UAP:      uap,
		Items:    items,
		index:    make(map[string]*ItemDef, len(items)),
	}
	for _, it := range items {
		if it == nil {
			return nil, fmt.Errorf("%w: nil item definition in %s %s", ErrSchema, cat, tag)
		}
		if _, dup := e.index[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item %s in %s %s", ErrSchema, it.ID, cat, tag)
		}
		e.index[it.ID] = it
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Item resolves a data item by its ID
func (e *Edition) Item(id string) (*ItemDef, bool) {
	it, ok := e.index[id]
	return it, ok
}

func (e *Edition) String() string {
	return fmt.Sprintf("%s v%s", e.Category, e.Tag)
}
