// asterix/fspec.go
package asterix

import (
	"fmt"
)

// DefaultMaxFspecBytes bounds the FSPEC bitmap: 8 bytes carry 56 slots,
// more than any published UAP uses.
const DefaultMaxFspecBytes = 8

// FSPEC represents the Field Specification bitmap of an ASTERIX record.
// Within each byte, bits 8..2 (MSB first) announce UAP slots and bit 1 is
// the FX continuation flag; byte k carries slots 7(k-1)+1 .. 7(k-1)+7.
type FSPEC struct {
	bits []byte
}

// NewFSPEC creates a new empty FSPEC
func NewFSPEC() *FSPEC {
	return &FSPEC{
		bits: make([]byte, 0, 4), // most FSPECs fit in 4 bytes
	}
}

// SetFRN marks a Field Reference Number as present
func (f *FSPEC) SetFRN(frn int) error {
	if frn < 1 {
		return fmt.Errorf("FRN %d out of range", frn)
	}

	byteIndex := (frn - 1) / 7 // 7 data bits per byte, bit 1 is FX
	bitPosition := (frn - 1) % 7

	for byteIndex >= len(f.bits) {
		// chain a new byte via the FX bit of the previous one
		if len(f.bits) > 0 {
			f.bits[len(f.bits)-1] |= 0x01
		}
		f.bits = append(f.bits, 0)
	}

	f.bits[byteIndex] |= 0x80 >> bitPosition
	return nil
}

// GetFRN checks if a Field Reference Number is present
func (f *FSPEC) GetFRN(frn int) bool {
	if frn < 1 {
		return false
	}

	byteIndex := (frn - 1) / 7
	bitPosition := (frn - 1) % 7

	if byteIndex >= len(f.bits) {
		return false
	}

	return f.bits[byteIndex]&(0x80>>bitPosition) != 0
}

// Bytes returns the wire encoding of the bitmap
func (f *FSPEC) Bytes() []byte {
	out := make([]byte, len(f.bits))
	copy(out, f.bits)
	return out
}

// FRNs returns the set slot numbers in ascending order
func (f *FSPEC) FRNs() []int {
	var frns []int
	for i, b := range f.bits {
		for bit := 0; bit < 7; bit++ {
			if b&(0x80>>bit) != 0 {
				frns = append(frns, i*7+bit+1)
			}
		}
	}
	return frns
}

// Size returns the size of the FSPEC in bytes
func (f *FSPEC) Size() int {
	return len(f.bits)
}

// readFspec consumes the FSPEC bitmap from the cursor and returns the
// announced slot numbers in ascending order. maxBytes bounds the FX chain;
// exceeding it is FspecOverflow, and a chain that runs off the end of the
// record is Truncated. Both lose the record boundary.
func readFspec(cur *BitCursor, maxBytes int) ([]int, int, *DecodeError) {
	var frns []int
	n := 0

	for {
		if cur.RemainingBytes() < 1 {
			return nil, n, &DecodeError{
				Kind:          ErrTruncated,
				ByteOffset:    cur.BytePos(),
				Message:       "FSPEC extension past end of record",
				unrecoverable: true,
			}
		}

		b, err := cur.ReadBytes(1)
		if err != nil {
			de := err.(*DecodeError)
			de.unrecoverable = true
			return nil, n, de
		}

		for bit := 0; bit < 7; bit++ {
			if b[0]&(0x80>>bit) != 0 {
				frns = append(frns, n*7+bit+1)
			}
		}
		n++

		if b[0]&0x01 == 0 {
			return frns, n, nil
		}

		if n >= maxBytes {
			return nil, n, &DecodeError{
				Kind:          ErrFspecOverflow,
				ByteOffset:    cur.BytePos(),
				Message:       fmt.Sprintf("FSPEC exceeds %d bytes", maxBytes),
				unrecoverable: true,
			}
		}
	}
}
