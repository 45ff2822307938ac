// asterix/value.go
package asterix

import (
	"fmt"
	"strings"

	"github.com/asterixkit/getafix/schema"
)

// Value is the closed set of decoded item shapes. Each variant mirrors one
// schema format; decoded values own their memory and borrow nothing from
// the input buffer.
type Value interface {
	fmt.Stringer
	valueNode()
}

// Quantity is a fixed-point value: raw count times an exact rational
// scale. Exactness is kept so conformance tests can compare bit-for-bit;
// Float is a presentation helper only.
type Quantity struct {
	Raw   int64
	Scale schema.Scale
	Unit  string
}

// Float converts the quantity to a float64 for display
func (q Quantity) Float() float64 {
	return float64(q.Raw) * float64(q.Scale.Num) / float64(q.Scale.Den)
}

func (q Quantity) String() string {
	if q.Unit != "" {
		return fmt.Sprintf("%g %s", q.Float(), q.Unit)
	}
	return fmt.Sprintf("%g", q.Float())
}

// Scalar is one decoded bit-field
type Scalar struct {
	Field string
	Kind  schema.CodecKind
	Raw   uint64 // field bits as read, for audit

	Uint uint64   // Unsigned, Octal (decimal-digit form)
	Int  int64    // TwosComplement
	Str  string   // Ascii, Icao6Bit
	Data []byte   // Raw
	Qty  Quantity // FixedPoint

	label string // enum label, when the schema declares one
}

func (Scalar) valueNode() {}

func (s Scalar) String() string {
	switch s.Kind {
	case schema.TwosComplement:
		return fmt.Sprintf("%d", s.Int)
	case schema.Octal:
		return fmt.Sprintf("%04o", s.Raw)
	case schema.Ascii, schema.Icao6Bit:
		return s.Str
	case schema.Raw:
		return fmt.Sprintf("0x%X", s.Data)
	case schema.FixedPoint:
		return s.Qty.String()
	default:
		if s.label != "" {
			return fmt.Sprintf("%d (%s)", s.Uint, s.label)
		}
		return fmt.Sprintf("%d", s.Uint)
	}
}

// Label returns the schema's enum label for the decoded value, if any
func (s Scalar) Label() string {
	return s.label
}

// Group is the decoded body of one fixed-length part
type Group struct {
	Item   string
	Fields []Scalar
}

func (Group) valueNode() {}

// Get finds a field of the group by name
func (g Group) Get(name string) (Scalar, bool) {
	for _, f := range g.Fields {
		if f.Field == name {
			return f, true
		}
	}
	return Scalar{}, false
}

func (g Group) String() string {
	var sb strings.Builder
	for i, f := range g.Fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%s", f.Field, f.String())
	}
	return sb.String()
}

// List is a decoded Repetitive item: REP copies of the element part
type List struct {
	Item     string
	Elements []Group
}

func (List) valueNode() {}

func (l List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = "[" + e.String() + "]"
	}
	return strings.Join(parts, " ")
}

// Extended is a decoded Variable item: the FX-linked chain of parts
type Extended struct {
	Item  string
	Parts []Group
}

func (Extended) valueNode() {}

func (e Extended) String() string {
	parts := make([]string, len(e.Parts))
	for i, p := range e.Parts {
		parts[i] = p.String()
	}
	return strings.Join(parts, " | ")
}

// Nested is a decoded Compound item: the subfields its secondary FSPEC
// selected, in slot order.
type Nested struct {
	Item     string
	Children []DecodedItem
}

func (Nested) valueNode() {}

// Child finds a subfield by ID
func (n Nested) Child(id string) (Value, bool) {
	for _, c := range n.Children {
		if c.ID == id {
			return c.Value, true
		}
	}
	return nil, false
}

func (n Nested) String() string {
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = fmt.Sprintf("%s{%s}", c.ID, c.Value.String())
	}
	return strings.Join(parts, " ")
}

// Opaque is a decoded Explicit item: the raw body, plus the nested decode
// when the schema names an inner definition. A failure inside the body is
// confined to InnerErr and never invalidates the enclosing record.
type Opaque struct {
	Item     string
	Data     []byte
	Inner    Value
	InnerErr error
}

func (Opaque) valueNode() {}

func (o Opaque) String() string {
	if o.Inner != nil {
		return o.Inner.String()
	}
	return fmt.Sprintf("0x%X", o.Data)
}

// DecodedItem pairs a data item ID with its decoded value
type DecodedItem struct {
	ID    string
	Value Value
}

func (d DecodedItem) String() string {
	return fmt.Sprintf("%s: %s", d.ID, d.Value.String())
}
