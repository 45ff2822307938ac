// cat/cat034/cat034.go
package cat034

import (
	"github.com/asterixkit/getafix/schema"
)

// Cat is the ASTERIX category number for monoradar service messages
const Cat = schema.Category(34)

// Edition129 builds the Category 034 edition 1.29 schema
func Edition129() (*schema.Edition, error) {
	items := []*schema.ItemDef{
		schema.FixedItem("I034/010", "Data Source Identifier", schema.Mandatory,
			schema.NewPart(2,
				schema.U("SAC", 8),
				schema.U("SIC", 8),
			)),

		schema.FixedItem("I034/000", "Message Type", schema.Mandatory,
			schema.NewPart(1,
				schema.Enumerate(schema.U("MSGTYP", 8), map[uint64]string{
					1: "North marker",
					2: "Sector crossing",
					3: "Geographical filtering",
					4: "Jamming strobe",
				}),
			)),

		schema.FixedItem("I034/030", "Time of Day", schema.Optional,
			schema.NewPart(3,
				schema.Q("TOD", 24, 1, 128, "s"),
			)),

		schema.FixedItem("I034/020", "Sector Number", schema.Optional,
			schema.NewPart(1,
				schema.Q("SECTOR", 8, 360, 256, "deg"),
			)),

		schema.FixedItem("I034/041", "Antenna Rotation Speed", schema.Optional,
			schema.NewPart(2,
				schema.Q("PERIOD", 16, 1, 128, "s"),
			)),

		schema.CompoundItem("I034/050", "System Configuration and Status", schema.Optional,
			schema.Sub("COM", schema.FixedItem("COM", "Common Part", schema.Optional,
				schema.NewPart(1,
					schema.Flag("NOGO"),
					schema.Flag("RDPC"),
					schema.Flag("RDPR"),
					schema.Flag("OVLRDP"),
					schema.Flag("OVLXMT"),
					schema.Flag("MSC"),
					schema.Flag("TSV"),
					schema.SpareBits(1),
				))),
			schema.SpareSub(),
			schema.SpareSub(),
			schema.Sub("PSR", schema.FixedItem("PSR", "PSR Sensor Status", schema.Optional,
				schema.NewPart(1,
					schema.Flag("ANT"),
					schema.U("CHAB", 2),
					schema.Flag("OVL"),
					schema.Flag("MSC"),
					schema.SpareBits(3),
				))),
			schema.Sub("SSR", schema.FixedItem("SSR", "SSR Sensor Status", schema.Optional,
				schema.NewPart(1,
					schema.Flag("ANT"),
					schema.U("CHAB", 2),
					schema.Flag("OVL"),
					schema.Flag("MSC"),
					schema.SpareBits(3),
				))),
			schema.Sub("MDS", schema.FixedItem("MDS", "Mode S Sensor Status", schema.Optional,
				schema.NewPart(2,
					schema.Flag("ANT"),
					schema.U("CHAB", 2),
					schema.Flag("OVLSUR"),
					schema.Flag("MSC"),
					schema.Flag("SCF"),
					schema.Flag("DLF"),
					schema.Flag("OVLSCF"),
					schema.Flag("OVLDLF"),
					schema.SpareBits(7),
				))),
		),

		schema.CompoundItem("I034/060", "System Processing Mode", schema.Optional,
			schema.Sub("COM", schema.FixedItem("COM", "Common Part", schema.Optional,
				schema.NewPart(1,
					schema.SpareBits(1),
					schema.U("REDRDP", 3),
					schema.U("REDXMT", 3),
					schema.SpareBits(1),
				))),
			schema.SpareSub(),
			schema.SpareSub(),
			schema.Sub("PSR", schema.FixedItem("PSR", "PSR Processing Mode", schema.Optional,
				schema.NewPart(1,
					schema.Flag("POL"),
					schema.U("REDRAD", 3),
					schema.U("STC", 2),
					schema.SpareBits(2),
				))),
			schema.Sub("SSR", schema.FixedItem("SSR", "SSR Processing Mode", schema.Optional,
				schema.NewPart(1,
					schema.U("REDRAD", 3),
					schema.SpareBits(5),
				))),
			schema.Sub("MDS", schema.FixedItem("MDS", "Mode S Processing Mode", schema.Optional,
				schema.NewPart(1,
					schema.U("REDRAD", 3),
					schema.Flag("CLU"),
					schema.SpareBits(4),
				))),
		),

		schema.RepetitiveItem("I034/070", "Message Count Values", schema.Optional,
			schema.NewPart(2,
				schema.U("TYP", 5),
				schema.U("COUNT", 11),
			)),

		schema.FixedItem("I034/100", "Generic Polar Window", schema.Optional,
			schema.NewPart(8,
				schema.Q("RHOST", 16, 1, 256, "NM"),
				schema.Q("RHOEND", 16, 1, 256, "NM"),
				schema.Q("THETAST", 16, 360, 1<<16, "deg"),
				schema.Q("THETAEND", 16, 360, 1<<16, "deg"),
			)),

		schema.FixedItem("I034/110", "Data Filter", schema.Optional,
			schema.NewPart(1,
				schema.U("TYP", 8),
			)),

		schema.FixedItem("I034/120", "3D-Position of Data Source", schema.Optional,
			schema.NewPart(8,
				schema.U("HGT", 16),
				schema.QS("LAT", 24, 180, 1<<23, "deg"),
				schema.QS("LON", 24, 180, 1<<23, "deg"),
			)),

		schema.FixedItem("I034/090", "Collimation Error", schema.Optional,
			schema.NewPart(2,
				schema.QS("RNG", 8, 1, 128, "NM"),
				schema.QS("AZM", 8, 360, 1<<14, "deg"),
			)),

		schema.ExplicitItem("RE034", "Reserved Expansion Field", schema.Optional, nil),
		schema.ExplicitItem("SP034", "Special Purpose Field", schema.Optional, nil),
	}

	uap := schema.Slots(
		"I034/010", "I034/000", "I034/030", "I034/020", "I034/041", "I034/050", "I034/060",
		"I034/070", "I034/100", "I034/110", "I034/120", "I034/090", "RE034", "SP034",
	)

	return schema.NewEdition(Cat, "1.29", uap, items)
}
