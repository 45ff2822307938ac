// cat/cat048/cat048.go
package cat048

import (
	"github.com/asterixkit/getafix/schema"
)

// Cat is the ASTERIX category number for monoradar target reports
const Cat = schema.Category(48)

// Edition132 builds the Category 048 edition 1.32 schema
func Edition132() (*schema.Edition, error) {
	items := []*schema.ItemDef{
		schema.FixedItem("I048/010", "Data Source Identifier", schema.Mandatory,
			schema.NewPart(2,
				schema.U("SAC", 8),
				schema.U("SIC", 8),
			)),

		schema.FixedItem("I048/140", "Time of Day", schema.Mandatory,
			schema.NewPart(3,
				schema.Q("TOD", 24, 1, 128, "s"),
			)),

		schema.VariableItem("I048/020", "Target Report Descriptor", schema.Mandatory,
			schema.NewExtent(1,
				schema.Enumerate(schema.U("TYP", 3), map[uint64]string{
					0: "no detection",
					1: "PSR",
					2: "SSR",
					3: "SSR+PSR",
					4: "Mode S all-call",
					5: "Mode S roll-call",
					6: "Mode S all-call + PSR",
					7: "Mode S roll-call + PSR",
				}),
				schema.Flag("SIM"),
				schema.Flag("RDP"),
				schema.Flag("SPI"),
				schema.Flag("RAB"),
			),
			schema.NewExtent(1,
				schema.Flag("TST"),
				schema.Flag("ERR"),
				schema.Flag("XPP"),
				schema.Flag("ME"),
				schema.Flag("MI"),
				schema.U("FOEFRI", 2),
			),
		),

		schema.FixedItem("I048/040", "Measured Position in Polar Co-ordinates", schema.Optional,
			schema.NewPart(4,
				schema.Q("RHO", 16, 1, 256, "NM"),
				schema.Q("THETA", 16, 360, 1<<16, "deg"),
			)),

		schema.FixedItem("I048/070", "Mode-3/A Code in Octal Representation", schema.Optional,
			schema.NewPart(2,
				schema.Flag("V"),
				schema.Flag("G"),
				schema.Flag("L"),
				schema.SpareBits(1),
				schema.Oct("MODE3A", 12),
			)),

		schema.FixedItem("I048/090", "Flight Level in Binary Representation", schema.Optional,
			schema.NewPart(2,
				schema.Flag("V"),
				schema.Flag("G"),
				schema.QS("FL", 14, 1, 4, "FL"),
			)),

		schema.CompoundItem("I048/130", "Radar Plot Characteristics", schema.Optional,
			schema.Sub("SRL", schema.FixedItem("SRL", "SSR Plot Runlength", schema.Optional,
				schema.NewPart(1, schema.Q("SRL", 8, 360, 1<<13, "deg")))),
			schema.Sub("SRR", schema.FixedItem("SRR", "Number of Received Replies", schema.Optional,
				schema.NewPart(1, schema.U("SRR", 8)))),
			schema.Sub("SAM", schema.FixedItem("SAM", "Amplitude of Received Replies", schema.Optional,
				schema.NewPart(1, schema.QS("SAM", 8, 1, 1, "dBm")))),
			schema.Sub("PRL", schema.FixedItem("PRL", "PSR Plot Runlength", schema.Optional,
				schema.NewPart(1, schema.Q("PRL", 8, 360, 1<<13, "deg")))),
			schema.Sub("PAM", schema.FixedItem("PAM", "PSR Amplitude", schema.Optional,
				schema.NewPart(1, schema.QS("PAM", 8, 1, 1, "dBm")))),
			schema.Sub("RPD", schema.FixedItem("RPD", "Difference in Range", schema.Optional,
				schema.NewPart(1, schema.QS("RPD", 8, 1, 256, "NM")))),
			schema.Sub("APD", schema.FixedItem("APD", "Difference in Azimuth", schema.Optional,
				schema.NewPart(1, schema.QS("APD", 8, 360, 1<<14, "deg")))),
		),

		schema.FixedItem("I048/220", "Aircraft Address", schema.Optional,
			schema.NewPart(3,
				schema.Bytes("ADDR", 24),
			)),

		schema.FixedItem("I048/240", "Aircraft Identification", schema.Optional,
			schema.NewPart(6,
				schema.Str6("IDENT", 48),
			)),

		schema.RepetitiveItem("I048/250", "BDS Register Data", schema.Optional,
			schema.NewPart(8,
				schema.Bytes("MBDATA", 56),
				schema.U("BDS1", 4),
				schema.U("BDS2", 4),
			)),

		schema.FixedItem("I048/161", "Track Number", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(4),
				schema.U("TRK", 12),
			)),

		schema.FixedItem("I048/042", "Calculated Position in Cartesian Co-ordinates", schema.Optional,
			schema.NewPart(4,
				schema.QS("X", 16, 1, 128, "NM"),
				schema.QS("Y", 16, 1, 128, "NM"),
			)),

		schema.FixedItem("I048/200", "Calculated Track Velocity", schema.Optional,
			schema.NewPart(4,
				schema.Q("GSP", 16, 1, 1<<14, "NM/s"),
				schema.Q("HDG", 16, 360, 1<<16, "deg"),
			)),

		schema.VariableItem("I048/170", "Track Status", schema.Optional,
			schema.NewExtent(1,
				schema.Flag("CNF"),
				schema.U("RAD", 2),
				schema.Flag("DOU"),
				schema.Flag("MAH"),
				schema.U("CDM", 2),
			),
			schema.NewExtent(1,
				schema.Flag("TRE"),
				schema.Flag("GHO"),
				schema.Flag("SUP"),
				schema.Flag("TCC"),
				schema.SpareBits(3),
			),
		),

		schema.FixedItem("I048/210", "Track Quality", schema.Optional,
			schema.NewPart(4,
				schema.Q("SIGX", 8, 1, 128, "NM"),
				schema.Q("SIGY", 8, 1, 128, "NM"),
				schema.Q("SIGV", 8, 1, 1<<14, "NM/s"),
				schema.Q("SIGH", 8, 360, 1<<12, "deg"),
			)),

		schema.VariableItem("I048/030", "Warning/Error Conditions", schema.Optional,
			schema.NewExtent(1,
				schema.U("WE", 7),
			),
		),

		schema.FixedItem("I048/080", "Mode-3/A Code Confidence Indicator", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(4),
				schema.U("QA", 12),
			)),

		schema.FixedItem("I048/100", "Mode-C Code and Code Confidence Indicator", schema.Optional,
			schema.NewPart(4,
				schema.Flag("V"),
				schema.Flag("G"),
				schema.SpareBits(2),
				schema.U("CODE", 12),
				schema.SpareBits(4),
				schema.U("QC", 12),
			)),

		schema.FixedItem("I048/110", "Height Measured by a 3D Radar", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(2),
				schema.QS("3DH", 14, 25, 1, "ft"),
			)),

		schema.CompoundItem("I048/120", "Radial Doppler Speed", schema.Optional,
			schema.Sub("CAL", schema.FixedItem("CAL", "Calculated Doppler Speed", schema.Optional,
				schema.NewPart(2,
					schema.Flag("D"),
					schema.SpareBits(5),
					schema.QS("CAL", 10, 1, 1, "m/s"),
				))),
			schema.Sub("RDS", schema.RepetitiveItem("RDS", "Raw Doppler Speed", schema.Optional,
				schema.NewPart(6,
					schema.QS("DOP", 16, 1, 1, "m/s"),
					schema.U("AMB", 16),
					schema.U("FRQ", 16),
				))),
		),

		schema.FixedItem("I048/230", "Communications/ACAS Capability and Flight Status", schema.Optional,
			schema.NewPart(2,
				schema.U("COM", 3),
				schema.U("STAT", 3),
				schema.Flag("SI"),
				schema.SpareBits(1),
				schema.Flag("MSSC"),
				schema.Flag("ARC"),
				schema.Flag("AIC"),
				schema.Flag("B1A"),
				schema.U("B1B", 4),
			)),

		schema.FixedItem("I048/260", "ACAS Resolution Advisory Report", schema.Optional,
			schema.NewPart(7,
				schema.Bytes("ACAS", 56),
			)),

		schema.FixedItem("I048/055", "Mode-1 Code in Octal Representation", schema.Optional,
			schema.NewPart(1,
				schema.Flag("V"),
				schema.Flag("G"),
				schema.Flag("L"),
				schema.Oct("MODE1", 5),
			)),

		schema.FixedItem("I048/050", "Mode-2 Code in Octal Representation", schema.Optional,
			schema.NewPart(2,
				schema.Flag("V"),
				schema.Flag("G"),
				schema.Flag("L"),
				schema.SpareBits(1),
				schema.Oct("MODE2", 12),
			)),

		schema.FixedItem("I048/065", "Mode-1 Code Confidence Indicator", schema.Optional,
			schema.NewPart(1,
				schema.SpareBits(3),
				schema.U("QA", 5),
			)),

		schema.FixedItem("I048/060", "Mode-2 Code Confidence Indicator", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(4),
				schema.U("QA", 12),
			)),

		schema.ExplicitItem("SP048", "Special Purpose Field", schema.Optional, nil),
		schema.ExplicitItem("RE048", "Reserved Expansion Field", schema.Optional, nil),
	}

	uap := schema.Slots(
		"I048/010", "I048/140", "I048/020", "I048/040", "I048/070", "I048/090", "I048/130",
		"I048/220", "I048/240", "I048/250", "I048/161", "I048/042", "I048/200", "I048/170",
		"I048/210", "I048/030", "I048/080", "I048/100", "I048/110", "I048/120", "I048/230",
		"I048/260", "I048/055", "I048/050", "I048/065", "I048/060", "SP048", "RE048",
	)

	return schema.NewEdition(Cat, "1.32", uap, items)
}
