// schema/validate.go
package schema

import (
	"errors"
	"fmt"
)

// ErrSchema marks a schema definition that violates a load-time invariant.
// A registry is never built from a definition that fails validation; there
// are no silently-ignored schema elements.
var ErrSchema = errors.New("invalid schema")

// MaxCompoundDepth bounds Compound nesting. Deeper definitions are
// rejected at load time, never at decode time.
const MaxCompoundDepth = 4

// validate checks every load-time invariant of an edition
func (e *Edition) validate() error {
	if e.Tag == "" {
		return fmt.Errorf("%w: %s has no edition tag", ErrSchema, e.Category)
	}
	if len(e.UAP.Slots) == 0 {
		return fmt.Errorf("%w: %s %s has an empty UAP", ErrSchema, e.Category, e.Tag)
	}
	for i, slot := range e.UAP.Slots {
		if slot.Spare {
			continue
		}
		if slot.Item == "" {
			return fmt.Errorf("%w: %s %s UAP slot %d is neither an item nor spare",
				ErrSchema, e.Category, e.Tag, i+1)
		}
		if _, ok := e.index[slot.Item]; !ok {
			return fmt.Errorf("%w: %s %s UAP slot %d references undefined item %s",
				ErrSchema, e.Category, e.Tag, i+1, slot.Item)
		}
	}
	for _, it := range e.Items {
		if err := validateItem(it, 0); err != nil {
			return fmt.Errorf("%w: %s %s item %s: %v", ErrSchema, e.Category, e.Tag, it.ID, err)
		}
	}
	return nil
}

func validateItem(it *ItemDef, depth int) error {
	if it.ID == "" {
		return errors.New("missing item ID")
	}
	switch it.Format {
	case Fixed:
		if it.Fixed == nil {
			return errors.New("fixed item without part")
		}
		return validatePart(it.Fixed, 0)
	case Variable:
		if len(it.Parts) == 0 {
			return errors.New("variable item without parts")
		}
		for i := range it.Parts {
			// the implicit FX bit occupies the LSB of each extent
			if err := validatePart(&it.Parts[i], 1); err != nil {
				return fmt.Errorf("part %d: %v", i+1, err)
			}
		}
		return nil
	case Repetitive:
		if it.Element == nil {
			return errors.New("repetitive item without element")
		}
		return validatePart(it.Element, 0)
	case Compound:
		if depth >= MaxCompoundDepth {
			return fmt.Errorf("compound nesting exceeds %d levels", MaxCompoundDepth)
		}
		if len(it.Subs) == 0 {
			return errors.New("compound item without subfields")
		}
		for i, sub := range it.Subs {
			if sub.Item == nil {
				continue // declared spare
			}
			if err := validateItem(sub.Item, depth+1); err != nil {
				return fmt.Errorf("subfield %d (%s): %v", i+1, sub.Name, err)
			}
		}
		return nil
	case Explicit:
		if it.Inner != nil {
			return validateItem(it.Inner, depth)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %d", it.Format)
	}
}

// validatePart checks that declared fields tile the part exactly, in
// order, leaving reserved trailing bits (the FX bit of a Variable extent)
// uncovered.
func validatePart(p *Part, reserved uint16) error {
	if p.Length == 0 {
		return errors.New("zero-length part")
	}
	total := uint16(p.Length) * 8
	if total < reserved {
		return errors.New("part shorter than its reserved bits")
	}
	var off uint16
	for _, f := range p.Fields {
		if f.Width == 0 || f.Width > 64 {
			return fmt.Errorf("field %q has width %d, want 1..64", f.Name, f.Width)
		}
		if f.Offset != off {
			return fmt.Errorf("field %q at offset %d, want %d (fields must tile the part)",
				f.Name, f.Offset, off)
		}
		off += uint16(f.Width)
		if err := validateCodec(f); err != nil {
			return err
		}
	}
	if off != total-reserved {
		return fmt.Errorf("field widths sum to %d bits, want %d", off, total-reserved)
	}
	return nil
}

func validateCodec(f BitField) error {
	c := f.Codec
	switch c.Kind {
	case TwosComplement:
		if f.Width < 2 {
			return fmt.Errorf("field %q: two's-complement needs width >= 2", f.Name)
		}
	case FixedPoint:
		if c.Scale.Num == 0 || c.Scale.Den == 0 {
			return fmt.Errorf("field %q: zero scale %s", f.Name, c.Scale)
		}
		if c.Signed && f.Width < 2 {
			return fmt.Errorf("field %q: signed fixed-point needs width >= 2", f.Name)
		}
	case Unsigned, Octal, Ascii, Icao6Bit, Raw, Spare:
		// no extra constraints beyond width
	default:
		return fmt.Errorf("field %q: unknown codec %d", f.Name, c.Kind)
	}
	return nil
}
