// asterix/record.go
package asterix

import (
	"fmt"
	"strings"

	"github.com/asterixkit/getafix/schema"
)

// Record is one decoded ASTERIX record: the items its FSPEC announced, in
// UAP slot order, plus every classified error met while decoding it. A
// record owns its decoded tree; nothing aliases the input buffer.
type Record struct {
	Category schema.Category
	Edition  string
	Offset   int // byte offset of the record within the decoded buffer
	Length   int // bytes consumed, FSPEC included
	Items    []DecodedItem
	Errors   []*DecodeError

	// Raw holds the undecoded payload when the category or edition is
	// not supported; Trailing holds leftover bytes kept for audit.
	Raw      []byte
	Trailing []byte
}

// Item retrieves a decoded data item by its ID
func (r *Record) Item(id string) (Value, bool) {
	for _, it := range r.Items {
		if it.ID == id {
			return it.Value, true
		}
	}
	return nil, false
}

// Failed reports whether any error attached to the record
func (r *Record) Failed() bool {
	return len(r.Errors) > 0
}

func (r *Record) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s record (%d bytes, %d items", r.Category, r.Length, len(r.Items))
	if r.Edition != "" {
		fmt.Fprintf(&sb, ", v%s", r.Edition)
	}
	if len(r.Errors) > 0 {
		fmt.Fprintf(&sb, ", %d errors", len(r.Errors))
	}
	sb.WriteString(")\n")
	for _, it := range r.Items {
		fmt.Fprintf(&sb, "  %s\n", it.String())
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&sb, "  ! %v\n", e)
	}
	return sb.String()
}

// RecordResult is the outcome of decoding a single record buffer
type RecordResult struct {
	Record        *Record
	BytesConsumed int
}

// DecodeRecord decodes one record from data, resolving the edition via
// the decoder's policy. The returned result is always populated with
// whatever was decoded; err is non-nil when the failure lost the record
// boundary, or when bytes are left over under TrailingError (the same
// error is also attached to the record).
func (d *Decoder) DecodeRecord(cat schema.Category, data []byte) (*RecordResult, error) {
	ed, rerr := d.resolveEdition(cat)
	if rerr != nil {
		rec := &Record{
			Category: cat,
			Length:   len(data),
			Raw:      append([]byte(nil), data...),
			Errors:   []*DecodeError{rerr},
		}
		return &RecordResult{Record: rec, BytesConsumed: len(data)}, nil
	}
	return d.decodeRecordBuffer(ed, data)
}

// DecodeRecordEdition decodes one record against an explicit edition tag,
// bypassing the edition policy.
func (d *Decoder) DecodeRecordEdition(cat schema.Category, tag string, data []byte) (*RecordResult, error) {
	ed, ok := d.reg.Edition(cat, tag)
	if !ok {
		rerr := &DecodeError{
			Kind:     ErrUnsupportedEdition,
			Category: cat,
			Message:  fmt.Sprintf("edition %s not registered", tag),
		}
		rec := &Record{
			Category: cat,
			Length:   len(data),
			Raw:      append([]byte(nil), data...),
			Errors:   []*DecodeError{rerr},
		}
		return &RecordResult{Record: rec, BytesConsumed: len(data)}, nil
	}
	return d.decodeRecordBuffer(ed, data)
}

// decodeRecordBuffer decodes an externally-framed record and applies the
// trailing-bytes policy to whatever the FSPEC items did not claim.
func (d *Decoder) decodeRecordBuffer(ed *schema.Edition, data []byte) (*RecordResult, error) {
	rec, consumed, derr := d.decodeRecord(ed, data, 0)

	res := &RecordResult{Record: rec, BytesConsumed: consumed}
	if derr != nil {
		return res, derr
	}

	if consumed < len(data) && d.opts.onTrailingBytes != TrailingIgnore {
		left := data[consumed:]
		te := &DecodeError{
			Kind:       ErrTrailingBytes,
			Category:   ed.Category,
			ByteOffset: consumed,
			Message:    fmt.Sprintf("%d bytes after last item", len(left)),
		}
		rec.Trailing = append([]byte(nil), left...)
		rec.Errors = append(rec.Errors, te)
		if d.opts.onTrailingBytes == TrailingError {
			return res, te
		}
	}
	return res, nil
}

// decodeRecord runs the record state machine over data[offset:]. It
// returns the (possibly partial) record, the bytes consumed, and the
// unrecoverable error that aborted it, if any. Recoverable errors attach
// to the record and decoding of later items continues.
func (d *Decoder) decodeRecord(ed *schema.Edition, data []byte, offset int) (*Record, int, *DecodeError) {
	rec := &Record{
		Category: ed.Category,
		Edition:  ed.Tag,
		Offset:   offset,
	}
	errs := newErrorList(d.opts.maxErrors, d.opts.stopOnFirst)

	cur, err := NewBitCursor(data, offset, len(data)-offset)
	if err != nil {
		de := asDecodeError(err)
		de.Category = ed.Category
		de.unrecoverable = true
		rec.Errors = append(rec.Errors, de)
		return rec, 0, de
	}

	abort := func(de *DecodeError) (*Record, int, *DecodeError) {
		rec.Errors = append(errs.errs, de)
		rec.Length = cur.BytePos() - offset
		return rec, rec.Length, de
	}

	frns, _, ferr := readFspec(&cur, d.opts.maxFspecBytes)
	if ferr != nil {
		ferr.Category = ed.Category
		return abort(ferr)
	}

	ctx := &itemContext{d: d, cat: ed.Category, errs: errs}

	// items decode in FSPEC order, which equals UAP slot order
	for _, frn := range frns {
		slot, inUAP := ed.UAP.Slot(frn)

		var def *schema.ItemDef
		if inUAP && !slot.Spare {
			def, _ = ed.Item(slot.Item)
		}
		if def == nil {
			ue := &DecodeError{
				Kind:       ErrUnknownItem,
				Category:   ed.Category,
				ByteOffset: cur.BytePos(),
				Message:    fmt.Sprintf("FSPEC bit %d has no data item", frn),
			}
			switch d.opts.onUnknownItem {
			case UnknownItemAbort:
				ue.unrecoverable = true
				return abort(ue)
			case UnknownItemSkip:
				errs.warn(ue)
			default:
				if budget := errs.add(ue); budget != nil {
					return abort(budget)
				}
			}
			continue
		}

		val, derr := ctx.decodeItem(&cur, def)
		if derr != nil {
			if derr.unrecoverable {
				return abort(derr)
			}
			if budget := errs.add(derr); budget != nil {
				return abort(budget)
			}
			continue
		}
		rec.Items = append(rec.Items, DecodedItem{ID: def.ID, Value: val})
	}

	// mandatory-presence audit; informational, never fatal
	for _, slot := range ed.UAP.Slots {
		if slot.Spare || slot.Item == "" {
			continue
		}
		def, ok := ed.Item(slot.Item)
		if !ok || def.Rule != schema.Mandatory {
			continue
		}
		if _, present := rec.Item(def.ID); !present {
			errs.warn(&DecodeError{
				Kind:       ErrMissingMandatory,
				Category:   ed.Category,
				Item:       def.ID,
				ByteOffset: cur.BytePos(),
			})
		}
	}

	rec.Errors = errs.errs
	rec.Length = cur.BytePos() - offset
	return rec, rec.Length, nil
}
