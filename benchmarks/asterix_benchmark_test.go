package benchmarks

import (
	"testing"

	"github.com/asterixkit/getafix/asterix"
	"github.com/asterixkit/getafix/cat"
)

// a CAT048 datablock with one record carrying I048/010, I048/140 and
// I048/020
var cat048Block = []byte{
	0x30, 0x00, 0x0A,
	0xE0,
	0x19, 0xC9,
	0x35, 0x6D, 0x4B,
	0x40,
}

// a CAT048 datablock with a longer record: position, Mode-3/A, flight
// level and track number on top of the minimal items
var cat048BlockWide = []byte{
	0x30, 0x00, 0x15,
	0xFD, 0x10,
	0x19, 0xC9,
	0x35, 0x6D, 0x4B,
	0x40,
	0x10, 0x00, 0x20, 0x00,
	0x0F, 0x00,
	0x04, 0xB0,
	0x01, 0x23,
}

func newDecoder(b *testing.B) *asterix.Decoder {
	b.Helper()
	registry, err := cat.BuiltinRegistry()
	if err != nil {
		b.Fatalf("building registry: %v", err)
	}
	decoder, err := asterix.NewDecoder(registry)
	if err != nil {
		b.Fatalf("creating decoder: %v", err)
	}
	return decoder
}

func BenchmarkDecodeDatablockMinimal(b *testing.B) {
	decoder := newDecoder(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decoder.DecodeDatablock(cat048Block); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeDatablockWide(b *testing.B) {
	decoder := newDecoder(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := decoder.DecodeDatablock(cat048BlockWide); err != nil {
			b.Fatal(err)
		}
	}
}
