// asterix/item.go
package asterix

import (
	"fmt"

	"github.com/asterixkit/getafix/schema"
)

// itemContext threads the decoder configuration and the record's error
// collector through nested item decodes.
type itemContext struct {
	d    *Decoder
	cat  schema.Category
	errs *errorList
}

// decodeItem consumes one data item from the cursor per its definition.
// Bytes are consumed in strictly increasing cursor position, never
// re-read. The returned error is the item's own failure: recoverable means
// the cursor was advanced past the item and the caller may try the next
// one; unrecoverable means the record boundary is lost. Failures inside
// Compound subfields are reported through the context collector instead,
// so one bad subfield does not hide its siblings.
func (ctx *itemContext) decodeItem(cur *BitCursor, def *schema.ItemDef) (Value, *DecodeError) {
	switch def.Format {
	case schema.Fixed:
		return ctx.decodeFixed(cur, def)
	case schema.Variable:
		return ctx.decodeVariable(cur, def)
	case schema.Repetitive:
		return ctx.decodeRepetitive(cur, def)
	case schema.Compound:
		return ctx.decodeCompound(cur, def)
	case schema.Explicit:
		return ctx.decodeExplicit(cur, def)
	default:
		return nil, &DecodeError{
			Kind:          ErrUnknownItem,
			Category:      ctx.cat,
			Item:          def.ID,
			ByteOffset:    cur.BytePos(),
			Message:       fmt.Sprintf("undecodable format %d", def.Format),
			unrecoverable: true,
		}
	}
}

// decodePart reads one fixed-length run of fields. The schema guarantees
// the fields tile the part exactly, so the cursor lands on the part
// boundary (minus the reserved FX bit for Variable extents).
func (ctx *itemContext) decodePart(cur *BitCursor, itemID string, part *schema.Part) (Group, *DecodeError) {
	g := Group{Item: itemID}
	for _, f := range part.Fields {
		s, emit, err := decodeField(cur, f)
		if err != nil {
			de := asDecodeError(err)
			de.Category = ctx.cat
			de.Item = itemID
			return Group{}, de
		}
		if emit {
			g.Fields = append(g.Fields, s)
		}
	}
	return g, nil
}

func (ctx *itemContext) decodeFixed(cur *BitCursor, def *schema.ItemDef) (Value, *DecodeError) {
	if cur.RemainingBytes() < int(def.Fixed.Length) {
		return nil, ctx.truncatedItem(cur, def.ID, int(def.Fixed.Length))
	}
	g, err := ctx.decodePart(cur, def.ID, def.Fixed)
	if err != nil {
		return nil, err
	}
	if len(g.Fields) == 1 {
		return g.Fields[0], nil
	}
	return g, nil
}

func (ctx *itemContext) decodeVariable(cur *BitCursor, def *schema.ItemDef) (Value, *DecodeError) {
	ext := Extended{Item: def.ID}

	for i := 0; ; i++ {
		if i >= ctx.d.opts.maxVariableParts {
			return nil, &DecodeError{
				Kind:          ErrExtensionOverflow,
				Category:      ctx.cat,
				Item:          def.ID,
				ByteOffset:    cur.BytePos(),
				Message:       fmt.Sprintf("chain exceeds %d extents", ctx.d.opts.maxVariableParts),
				unrecoverable: true,
			}
		}

		// extents past the declared layout are consumed as one opaque
		// byte each, FX bit included, so later items stay decodable
		var part *schema.Part
		if i < len(def.Parts) {
			part = &def.Parts[i]
		}
		length := 1
		if part != nil {
			length = int(part.Length)
		}
		if cur.RemainingBytes() < length {
			return nil, ctx.truncatedItem(cur, def.ID, length)
		}

		var g Group
		if part != nil {
			var err *DecodeError
			g, err = ctx.decodePart(cur, def.ID, part)
			if err != nil {
				return nil, err
			}
		} else {
			raw, _ := cur.ReadBitsBE(7)
			g = Group{Item: def.ID, Fields: []Scalar{{
				Field: fmt.Sprintf("ext%d", i+1),
				Kind:  schema.Unsigned,
				Raw:   raw,
				Uint:  raw,
			}}}
		}

		fx, err := cur.ReadBitsBE(1)
		if err != nil {
			de := asDecodeError(err)
			de.Category = ctx.cat
			de.Item = def.ID
			de.unrecoverable = true
			return nil, de
		}

		ext.Parts = append(ext.Parts, g)
		if fx == 0 {
			return ext, nil
		}
	}
}

func (ctx *itemContext) decodeRepetitive(cur *BitCursor, def *schema.ItemDef) (Value, *DecodeError) {
	if cur.RemainingBytes() < 1 {
		return nil, ctx.truncatedItem(cur, def.ID, 1)
	}
	repRaw, err := cur.ReadBytes(1)
	if err != nil {
		return nil, asDecodeError(err)
	}
	rep := int(repRaw[0])

	elemLen := int(def.Element.Length)
	if cur.RemainingBytes() < rep*elemLen {
		return nil, &DecodeError{
			Kind:       ErrRepetitiveOverflow,
			Category:   ctx.cat,
			Item:       def.ID,
			ByteOffset: cur.BytePos(),
			Message: fmt.Sprintf("REP=%d needs %d bytes, have %d",
				rep, rep*elemLen, cur.RemainingBytes()),
			unrecoverable: true,
		}
	}

	// REP=0 is a well-formed empty list
	list := List{Item: def.ID, Elements: make([]Group, 0, rep)}
	for i := 0; i < rep; i++ {
		g, err := ctx.decodePart(cur, def.ID, def.Element)
		if err != nil {
			return nil, err
		}
		list.Elements = append(list.Elements, g)
	}
	return list, nil
}

func (ctx *itemContext) decodeCompound(cur *BitCursor, def *schema.ItemDef) (Value, *DecodeError) {
	frns, _, ferr := readFspec(cur, ctx.d.opts.maxFspecBytes)
	if ferr != nil {
		ferr.Category = ctx.cat
		ferr.Item = def.ID
		return nil, ferr
	}

	nested := Nested{Item: def.ID}
	for _, frn := range frns {
		if frn > len(def.Subs) || def.Subs[frn-1].Item == nil {
			// a subfield with no definition has no known length; the
			// compound boundary is lost
			return nil, &DecodeError{
				Kind:          ErrUnknownItem,
				Category:      ctx.cat,
				Item:          def.ID,
				ByteOffset:    cur.BytePos(),
				Message:       fmt.Sprintf("secondary FSPEC bit %d has no subfield", frn),
				unrecoverable: true,
			}
		}

		sub := def.Subs[frn-1]
		val, err := ctx.decodeItem(cur, sub.Item)
		if err != nil {
			if err.unrecoverable {
				return nil, err
			}
			// the subfield's bytes were consumed; report and keep going
			if budget := ctx.errs.add(err); budget != nil {
				return nil, budget
			}
			continue
		}
		nested.Children = append(nested.Children, DecodedItem{ID: sub.Item.ID, Value: val})
	}
	return nested, nil
}

func (ctx *itemContext) decodeExplicit(cur *BitCursor, def *schema.ItemDef) (Value, *DecodeError) {
	if cur.RemainingBytes() < 1 {
		return nil, ctx.truncatedItem(cur, def.ID, 1)
	}
	lenPos := cur.BytePos()
	lenRaw, err := cur.ReadBytes(1)
	if err != nil {
		return nil, asDecodeError(err)
	}
	total := int(lenRaw[0])

	if total == 0 {
		return nil, &DecodeError{
			Kind:          ErrExplicitLength,
			Category:      ctx.cat,
			Item:          def.ID,
			ByteOffset:    lenPos,
			Message:       "LEN=0",
			unrecoverable: true,
		}
	}
	body := total - 1
	if cur.RemainingBytes() < body {
		return nil, &DecodeError{
			Kind:          ErrExplicitLength,
			Category:      ctx.cat,
			Item:          def.ID,
			ByteOffset:    lenPos,
			Message:       fmt.Sprintf("LEN=%d runs past end of record", total),
			unrecoverable: true,
		}
	}

	raw, err := cur.ReadBytes(body)
	if err != nil {
		return nil, asDecodeError(err)
	}
	op := Opaque{Item: def.ID, Data: append([]byte(nil), raw...)}

	// an error inside the body is confined to the opaque value and never
	// invalidates the enclosing record
	if def.Inner != nil && body > 0 {
		inner, err := ctx.decodeInner(op.Data, def.Inner)
		if err != nil {
			op.InnerErr = err
		} else {
			op.Inner = inner
		}
	}
	return op, nil
}

// decodeInner decodes an Explicit body with its own cursor and a throwaway
// error budget.
func (ctx *itemContext) decodeInner(body []byte, def *schema.ItemDef) (Value, error) {
	cur, err := NewBitCursor(body, 0, len(body))
	if err != nil {
		return nil, err
	}
	sub := &itemContext{
		d:    ctx.d,
		cat:  ctx.cat,
		errs: newErrorList(ctx.d.opts.maxErrors, false),
	}
	val, derr := sub.decodeItem(&cur, def)
	if derr != nil {
		return nil, derr
	}
	if len(sub.errs.errs) > 0 {
		return nil, sub.errs.errs[0]
	}
	return val, nil
}

func (ctx *itemContext) truncatedItem(cur *BitCursor, itemID string, need int) *DecodeError {
	return &DecodeError{
		Kind:       ErrTruncated,
		Category:   ctx.cat,
		Item:       itemID,
		ByteOffset: cur.BytePos(),
		Message: fmt.Sprintf("need %d bytes, have %d",
			need, cur.RemainingBytes()),
		unrecoverable: true,
	}
}

// asDecodeError normalises cursor errors, which are always *DecodeError
func asDecodeError(err error) *DecodeError {
	if de, ok := err.(*DecodeError); ok {
		return de
	}
	return &DecodeError{Kind: err}
}
