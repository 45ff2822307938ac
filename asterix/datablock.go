// asterix/datablock.go
package asterix

import (
	"encoding/binary"
	"fmt"

	"github.com/asterixkit/getafix/schema"
)

// Datablock is one decoded CAT/LEN frame and the records it carried
type Datablock struct {
	Category schema.Category
	Offset   int // byte offset of the frame within the decoded buffer
	Length   int // declared LEN, header included
	Records  []*Record
	Errors   []*DecodeError // framing-level errors for this block
}

// Failed reports whether a framing error attached to the datablock
func (b *Datablock) Failed() bool {
	return len(b.Errors) > 0
}

// DatablockResult is the outcome of decoding a buffer of concatenated
// datablocks. Records and Errors flatten the per-block results in order.
type DatablockResult struct {
	Datablocks    []*Datablock
	Records       []*Record
	Errors        []*DecodeError
	BytesConsumed int
}

// DecodeDatablock walks data as a sequence of concatenated datablocks
// (CAT, big-endian LEN, records) and decodes every record. A record
// failure that loses the record boundary terminates its datablock —
// records are not individually framed — but the walk continues with the
// next datablock. The returned result is always populated; err is non-nil
// only for an empty buffer.
func (d *Decoder) DecodeDatablock(data []byte) (*DatablockResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrShortDatablock)
	}

	res := &DatablockResult{}
	offset := 0

	for offset < len(data) {
		remaining := len(data) - offset
		if remaining < 3 {
			res.Errors = append(res.Errors, &DecodeError{
				Kind:       ErrShortDatablock,
				ByteOffset: offset,
				Message:    fmt.Sprintf("%d bytes left, need a 3-byte header", remaining),
			})
			break
		}

		cat := schema.Category(data[offset])
		blockLen := int(binary.BigEndian.Uint16(data[offset+1 : offset+3]))
		if blockLen < 3 || blockLen > remaining {
			// a bad length loses all framing; nothing after it is safe
			res.Errors = append(res.Errors, &DecodeError{
				Kind:       ErrLengthMismatch,
				Category:   cat,
				ByteOffset: offset,
				Message:    fmt.Sprintf("declared %d, have %d", blockLen, remaining),
			})
			break
		}

		block := d.decodeBlock(cat, data, offset, blockLen)
		res.Datablocks = append(res.Datablocks, block)
		res.Records = append(res.Records, block.Records...)
		res.Errors = append(res.Errors, block.Errors...)
		for _, rec := range block.Records {
			res.Errors = append(res.Errors, rec.Errors...)
		}

		offset += blockLen
	}

	res.BytesConsumed = offset
	return res, nil
}

// decodeBlock decodes the records of one length-delimited datablock
func (d *Decoder) decodeBlock(cat schema.Category, data []byte, offset, blockLen int) *Datablock {
	block := &Datablock{Category: cat, Offset: offset, Length: blockLen}
	payload := data[offset+3 : offset+blockLen]

	ed, rerr := d.resolveEdition(cat)
	if rerr != nil {
		// unsupported categories stay visible as one opaque record
		rec := &Record{
			Category: cat,
			Offset:   offset + 3,
			Length:   len(payload),
			Raw:      append([]byte(nil), payload...),
			Errors:   []*DecodeError{rerr},
		}
		block.Records = append(block.Records, rec)
		return block
	}

	end := offset + blockLen
	recOffset := offset + 3
	for idx := 0; recOffset < end; idx++ {
		rec, consumed, derr := d.decodeRecord(ed, data[:end], recOffset)
		block.Records = append(block.Records, rec)
		recOffset += consumed

		if derr != nil {
			// the record boundary is lost; the rest of this block is
			// undecodable, the next block starts at the declared length
			block.Errors = append(block.Errors, &DecodeError{
				Kind:       ErrDatablockTruncated,
				Category:   cat,
				ByteOffset: recOffset,
				Message:    fmt.Sprintf("after record %d", idx),
			})
			break
		}
		if consumed == 0 {
			// defensive: an empty record would never advance
			break
		}
	}
	return block
}
