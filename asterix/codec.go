// asterix/codec.go
package asterix

import (
	"fmt"

	"github.com/asterixkit/getafix/schema"
)

// icaoAlphabet maps 6-bit character codes to the ICAO subset of IA-5:
// letters, digits and space. Undefined codes render as '?'.
var icaoAlphabet = func() [64]byte {
	var t [64]byte
	for i := range t {
		t[i] = '?'
	}
	for i := 1; i <= 26; i++ {
		t[i] = byte('A' + i - 1)
	}
	t[32] = ' '
	for i := 48; i <= 57; i++ {
		t[i] = byte('0' + i - 48)
	}
	return t
}()

// decodeField extracts one bit-field from the cursor and types it per the
// field's codec. Spare fields are consumed but not emitted (emit=false).
// On any error the cursor state is unspecified and the caller discards the
// item; no partially-read scalar is ever committed.
func decodeField(cur *BitCursor, f schema.BitField) (s Scalar, emit bool, err error) {
	// wide raw/ascii fields bypass the 64-bit accumulator
	if (f.Codec.Kind == schema.Raw || f.Codec.Kind == schema.Ascii) &&
		f.Width%8 == 0 && cur.Aligned() {
		data, err := cur.ReadBytes(int(f.Width) / 8)
		if err != nil {
			return Scalar{}, false, err
		}
		return typedBytes(f, data), true, nil
	}

	raw, err := cur.ReadBitsBE(f.Width)
	if err != nil {
		return Scalar{}, false, err
	}

	switch f.Codec.Kind {
	case schema.Spare:
		return Scalar{}, false, nil

	case schema.Unsigned:
		s = Scalar{Field: f.Name, Kind: schema.Unsigned, Raw: raw, Uint: raw}
		if f.Codec.Enum != nil {
			s.label = f.Codec.Enum[raw]
		}
		return s, true, nil

	case schema.TwosComplement:
		return Scalar{
			Field: f.Name,
			Kind:  schema.TwosComplement,
			Raw:   raw,
			Int:   signExtend(raw, f.Width),
		}, true, nil

	case schema.Octal:
		return Scalar{
			Field: f.Name,
			Kind:  schema.Octal,
			Raw:   raw,
			Uint:  octalDigits(raw, f.Width),
		}, true, nil

	case schema.Icao6Bit:
		return Scalar{
			Field: f.Name,
			Kind:  schema.Icao6Bit,
			Raw:   raw,
			Str:   icao6String(raw, f.Width),
		}, true, nil

	case schema.Ascii:
		return Scalar{
			Field: f.Name,
			Kind:  schema.Ascii,
			Raw:   raw,
			Str:   asciiString(rawBytes(raw, f.Width)),
		}, true, nil

	case schema.Raw:
		return Scalar{
			Field: f.Name,
			Kind:  schema.Raw,
			Raw:   raw,
			Data:  rawBytes(raw, f.Width),
		}, true, nil

	case schema.FixedPoint:
		q := Quantity{Scale: f.Codec.Scale, Unit: f.Codec.Unit}
		if f.Codec.Signed {
			q.Raw = signExtend(raw, f.Width)
		} else {
			q.Raw = int64(raw)
		}
		return Scalar{Field: f.Name, Kind: schema.FixedPoint, Raw: raw, Qty: q}, true, nil

	default:
		return Scalar{}, false, &DecodeError{
			Kind:       ErrOutOfBounds,
			ByteOffset: cur.BytePos(),
			Message:    fmt.Sprintf("field %q: unknown codec %d", f.Name, f.Codec.Kind),
		}
	}
}

func typedBytes(f schema.BitField, data []byte) Scalar {
	cp := make([]byte, len(data))
	copy(cp, data)
	if f.Codec.Kind == schema.Ascii {
		return Scalar{Field: f.Name, Kind: schema.Ascii, Str: asciiString(cp)}
	}
	return Scalar{Field: f.Name, Kind: schema.Raw, Data: cp}
}

// signExtend interprets the low width bits of raw as two's-complement
func signExtend(raw uint64, width uint8) int64 {
	if width == 64 {
		return int64(raw)
	}
	if raw&(1<<(width-1)) != 0 {
		return int64(raw) - (1 << width)
	}
	return int64(raw)
}

// octalDigits re-reads the raw bits as octal digits: a 12-bit raw of
// 0b111_111_000_000 becomes 7700. Groups of three bits are taken from the
// LSB; a leading partial group keeps its remaining bits.
func octalDigits(raw uint64, width uint8) uint64 {
	var v, mul uint64 = 0, 1
	for w := int(width); w > 0; w -= 3 {
		v += (raw & 0x7) * mul
		raw >>= 3
		mul *= 10
	}
	return v
}

// icao6String expands 6-bit character groups, MSB group first. Trailing
// spaces are retained; callers trim for display.
func icao6String(raw uint64, width uint8) string {
	n := int(width) / 6
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = icaoAlphabet[raw&0x3F]
		raw >>= 6
	}
	return string(buf)
}

// rawBytes packs the field bits into ceil(width/8) bytes, big-endian
func rawBytes(raw uint64, width uint8) []byte {
	n := (int(width) + 7) / 8
	buf := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		buf[i] = byte(raw)
		raw >>= 8
	}
	return buf
}

// asciiString maps bytes one-for-one, replacing non-printables with '?'
func asciiString(data []byte) string {
	buf := make([]byte, len(data))
	for i, b := range data {
		if b < 0x20 || b > 0x7E {
			buf[i] = '?'
		} else {
			buf[i] = b
		}
	}
	return string(buf)
}
