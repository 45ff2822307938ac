// cat/cat062/cat062.go
package cat062

import (
	"github.com/asterixkit/getafix/schema"
)

// Cat is the ASTERIX category number for system track data
const Cat = schema.Category(62)

// Edition120 builds the Category 062 edition 1.20 schema
func Edition120() (*schema.Edition, error) {
	items := []*schema.ItemDef{
		schema.FixedItem("I062/010", "Data Source Identifier", schema.Mandatory,
			schema.NewPart(2,
				schema.U("SAC", 8),
				schema.U("SIC", 8),
			)),

		schema.FixedItem("I062/015", "Service Identification", schema.Optional,
			schema.NewPart(1,
				schema.U("SI", 8),
			)),

		schema.FixedItem("I062/070", "Time of Track Information", schema.Mandatory,
			schema.NewPart(3,
				schema.Q("TOD", 24, 1, 128, "s"),
			)),

		schema.FixedItem("I062/105", "Calculated Position in WGS-84 Co-ordinates", schema.Optional,
			schema.NewPart(8,
				schema.QS("LAT", 32, 180, 1<<25, "deg"),
				schema.QS("LON", 32, 180, 1<<25, "deg"),
			)),

		schema.FixedItem("I062/100", "Calculated Track Position, Cartesian", schema.Optional,
			schema.NewPart(6,
				schema.QS("X", 24, 1, 2, "m"),
				schema.QS("Y", 24, 1, 2, "m"),
			)),

		schema.FixedItem("I062/185", "Calculated Track Velocity, Cartesian", schema.Optional,
			schema.NewPart(4,
				schema.QS("VX", 16, 1, 4, "m/s"),
				schema.QS("VY", 16, 1, 4, "m/s"),
			)),

		schema.FixedItem("I062/210", "Calculated Acceleration, Cartesian", schema.Optional,
			schema.NewPart(2,
				schema.QS("AX", 8, 1, 4, "m/s2"),
				schema.QS("AY", 8, 1, 4, "m/s2"),
			)),

		schema.FixedItem("I062/060", "Track Mode 3/A Code", schema.Optional,
			schema.NewPart(2,
				schema.Flag("V"),
				schema.Flag("G"),
				schema.Flag("CH"),
				schema.SpareBits(1),
				schema.Oct("MODE3A", 12),
			)),

		schema.FixedItem("I062/245", "Target Identification", schema.Optional,
			schema.NewPart(7,
				schema.U("STI", 2),
				schema.SpareBits(6),
				schema.Str6("IDENT", 48),
			)),

		schema.CompoundItem("I062/380", "Aircraft Derived Data", schema.Optional,
			schema.Sub("ADR", schema.FixedItem("ADR", "Target Address", schema.Optional,
				schema.NewPart(3, schema.Bytes("ADDR", 24)))),
			schema.Sub("ID", schema.FixedItem("ID", "Target Identification", schema.Optional,
				schema.NewPart(6, schema.Str6("IDENT", 48)))),
			schema.Sub("MHG", schema.FixedItem("MHG", "Magnetic Heading", schema.Optional,
				schema.NewPart(2, schema.Q("MHG", 16, 360, 1<<16, "deg")))),
			schema.Sub("IAS", schema.FixedItem("IAS", "Indicated Airspeed", schema.Optional,
				schema.NewPart(2,
					schema.Flag("IM"),
					schema.Q("IAS", 15, 1, 1<<14, "NM/s"),
				))),
			schema.Sub("TAS", schema.FixedItem("TAS", "True Airspeed", schema.Optional,
				schema.NewPart(2, schema.Q("TAS", 16, 1, 1, "kt")))),
			schema.Sub("SAL", schema.FixedItem("SAL", "Selected Altitude", schema.Optional,
				schema.NewPart(2,
					schema.Flag("SAS"),
					schema.U("SRC", 2),
					schema.QS("ALT", 13, 25, 1, "ft"),
				))),
			schema.Sub("FSS", schema.FixedItem("FSS", "Final State Selected Altitude", schema.Optional,
				schema.NewPart(2,
					schema.Flag("MV"),
					schema.Flag("AH"),
					schema.Flag("AM"),
					schema.QS("ALT", 13, 25, 1, "ft"),
				))),
		),

		schema.FixedItem("I062/040", "Track Number", schema.Mandatory,
			schema.NewPart(2,
				schema.SpareBits(4),
				schema.U("TRK", 12),
			)),

		schema.VariableItem("I062/080", "Track Status", schema.Optional,
			schema.NewExtent(1,
				schema.Flag("MON"),
				schema.Flag("SPI"),
				schema.Flag("MRH"),
				schema.U("SRC", 3),
				schema.Flag("CNF"),
			),
			schema.NewExtent(1,
				schema.Flag("SIM"),
				schema.Flag("TSE"),
				schema.Flag("TSB"),
				schema.Flag("FPC"),
				schema.Flag("AFF"),
				schema.Flag("STP"),
				schema.Flag("KOS"),
			),
		),

		schema.CompoundItem("I062/290", "System Track Update Ages", schema.Optional,
			trackAge("TRK"), trackAge("PSR"), trackAge("SSR"), trackAge("MDS"),
			trackAge("ADS"), trackAge("ES"), trackAge("VDL"), trackAge("UAT"),
			trackAge("LOP"), trackAge("MLT"),
		),

		schema.FixedItem("I062/200", "Mode of Movement", schema.Optional,
			schema.NewPart(1,
				schema.U("TRANS", 2),
				schema.U("LONG", 2),
				schema.U("VERT", 2),
				schema.Flag("ADF"),
				schema.SpareBits(1),
			)),

		schema.CompoundItem("I062/295", "Track Data Ages", schema.Optional,
			trackAge("MFL"), trackAge("MD1"), trackAge("MD2"), trackAge("MDA"),
			trackAge("MD4"), trackAge("MD5"), trackAge("MHG"), trackAge("IAS"),
			trackAge("TAS"), trackAge("SAL"), trackAge("FSS"), trackAge("TID"),
			trackAge("COM"), trackAge("SAB"), trackAge("ACS"), trackAge("BVR"),
			trackAge("GVR"), trackAge("RAN"), trackAge("TAR"), trackAge("TAN"),
			trackAge("GSP"), trackAge("VUN"), trackAge("MET"), trackAge("EMC"),
			trackAge("POS"), trackAge("GAL"), trackAge("PUN"), trackAge("MB"),
			trackAge("IAR"), trackAge("MAC"), trackAge("BPS"),
		),

		schema.FixedItem("I062/136", "Measured Flight Level", schema.Optional,
			schema.NewPart(2,
				schema.QS("FL", 16, 1, 4, "FL"),
			)),

		schema.FixedItem("I062/130", "Calculated Track Geometric Altitude", schema.Optional,
			schema.NewPart(2,
				schema.QS("ALT", 16, 25, 4, "ft"),
			)),

		schema.FixedItem("I062/135", "Calculated Track Barometric Altitude", schema.Optional,
			schema.NewPart(2,
				schema.Flag("QNH"),
				schema.QS("ALT", 15, 1, 4, "FL"),
			)),

		schema.FixedItem("I062/220", "Calculated Rate of Climb/Descent", schema.Optional,
			schema.NewPart(2,
				schema.QS("ROCD", 16, 25, 4, "ft/min"),
			)),

		schema.CompoundItem("I062/390", "Flight Plan Related Data", schema.Optional,
			schema.Sub("TAG", schema.FixedItem("TAG", "FPPS Identification Tag", schema.Optional,
				schema.NewPart(2,
					schema.U("SAC", 8),
					schema.U("SIC", 8),
				))),
			schema.Sub("CSN", schema.FixedItem("CSN", "Callsign", schema.Optional,
				schema.NewPart(7, schema.Str("CS", 56)))),
			schema.Sub("IFI", schema.FixedItem("IFI", "IFPS Flight ID", schema.Optional,
				schema.NewPart(4,
					schema.U("TYP", 2),
					schema.SpareBits(3),
					schema.U("NBR", 27),
				))),
			schema.Sub("FCT", schema.FixedItem("FCT", "Flight Category", schema.Optional,
				schema.NewPart(1,
					schema.U("GATOAT", 2),
					schema.U("FR1FR2", 2),
					schema.U("RVSM", 2),
					schema.Flag("HPR"),
					schema.SpareBits(1),
				))),
			schema.Sub("TAC", schema.FixedItem("TAC", "Type of Aircraft", schema.Optional,
				schema.NewPart(4, schema.Str("TYP", 32)))),
			schema.Sub("WTC", schema.FixedItem("WTC", "Wake Turbulence Category", schema.Optional,
				schema.NewPart(1, schema.Str("WTC", 8)))),
			schema.Sub("DEP", schema.FixedItem("DEP", "Departure Airport", schema.Optional,
				schema.NewPart(4, schema.Str("ICAO", 32)))),
			schema.Sub("DST", schema.FixedItem("DST", "Destination Airport", schema.Optional,
				schema.NewPart(4, schema.Str("ICAO", 32)))),
		),

		schema.VariableItem("I062/270", "Target Size and Orientation", schema.Optional,
			schema.NewExtent(1, schema.Q("LENGTH", 7, 1, 1, "m")),
			schema.NewExtent(1, schema.Q("ORIENTATION", 7, 360, 128, "deg")),
			schema.NewExtent(1, schema.Q("WIDTH", 7, 1, 1, "m")),
		),

		schema.FixedItem("I062/300", "Vehicle Fleet Identification", schema.Optional,
			schema.NewPart(1,
				schema.U("VFI", 8),
			)),

		schema.CompoundItem("I062/110", "Mode 5 Data Reports and Extended Mode 1 Code", schema.Optional,
			schema.Sub("SUM", schema.FixedItem("SUM", "Mode 5 Summary", schema.Optional,
				schema.NewPart(1,
					schema.Flag("M5"),
					schema.Flag("ID"),
					schema.Flag("DA"),
					schema.Flag("M1"),
					schema.Flag("M2"),
					schema.Flag("M3"),
					schema.Flag("MC"),
					schema.Flag("X"),
				))),
			schema.Sub("POS", schema.FixedItem("POS", "Mode 5 Reported Position", schema.Optional,
				schema.NewPart(6,
					schema.QS("LAT", 24, 180, 1<<23, "deg"),
					schema.QS("LON", 24, 180, 1<<23, "deg"),
				))),
			schema.Sub("GA", schema.FixedItem("GA", "Mode 5 GNSS Altitude", schema.Optional,
				schema.NewPart(2,
					schema.SpareBits(1),
					schema.Flag("RES"),
					schema.QS("GA", 14, 25, 1, "ft"),
				))),
		),

		schema.FixedItem("I062/120", "Track Mode 2 Code", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(4),
				schema.Oct("MODE2", 12),
			)),

		schema.VariableItem("I062/510", "Composed Track Number", schema.Optional,
			schema.NewExtent(3,
				schema.U("SUI", 8),
				schema.U("STN", 15),
			),
		),

		schema.CompoundItem("I062/500", "Estimated Accuracies", schema.Optional,
			schema.Sub("APC", schema.FixedItem("APC", "Estimated Accuracy of Position, Cartesian", schema.Optional,
				schema.NewPart(4,
					schema.Q("APCX", 16, 1, 2, "m"),
					schema.Q("APCY", 16, 1, 2, "m"),
				))),
			schema.Sub("COV", schema.FixedItem("COV", "XY Covariance", schema.Optional,
				schema.NewPart(2, schema.QS("COV", 16, 1, 2, "m")))),
			schema.Sub("APW", schema.FixedItem("APW", "Estimated Accuracy of Position, WGS-84", schema.Optional,
				schema.NewPart(4,
					schema.Q("APWLAT", 16, 180, 1<<25, "deg"),
					schema.Q("APWLON", 16, 180, 1<<25, "deg"),
				))),
			schema.Sub("AGA", schema.FixedItem("AGA", "Estimated Accuracy of Geometric Altitude", schema.Optional,
				schema.NewPart(1, schema.Q("AGA", 8, 25, 4, "ft")))),
			schema.Sub("ABA", schema.FixedItem("ABA", "Estimated Accuracy of Barometric Altitude", schema.Optional,
				schema.NewPart(1, schema.Q("ABA", 8, 1, 4, "FL")))),
			schema.Sub("ATV", schema.FixedItem("ATV", "Estimated Accuracy of Velocity, Cartesian", schema.Optional,
				schema.NewPart(2,
					schema.Q("ATVX", 8, 1, 4, "m/s"),
					schema.Q("ATVY", 8, 1, 4, "m/s"),
				))),
			schema.Sub("AA", schema.FixedItem("AA", "Estimated Accuracy of Acceleration, Cartesian", schema.Optional,
				schema.NewPart(2,
					schema.Q("AAX", 8, 1, 4, "m/s2"),
					schema.Q("AAY", 8, 1, 4, "m/s2"),
				))),
			schema.Sub("ARC", schema.FixedItem("ARC", "Estimated Accuracy of Rate of Climb/Descent", schema.Optional,
				schema.NewPart(1, schema.Q("ARC", 8, 25, 4, "ft/min")))),
		),

		schema.CompoundItem("I062/340", "Measured Information", schema.Optional,
			schema.Sub("SID", schema.FixedItem("SID", "Sensor Identification", schema.Optional,
				schema.NewPart(2,
					schema.U("SAC", 8),
					schema.U("SIC", 8),
				))),
			schema.Sub("POS", schema.FixedItem("POS", "Measured Position", schema.Optional,
				schema.NewPart(4,
					schema.Q("RHO", 16, 1, 256, "NM"),
					schema.Q("THETA", 16, 360, 1<<16, "deg"),
				))),
			schema.Sub("HEI", schema.FixedItem("HEI", "Measured 3-D Height", schema.Optional,
				schema.NewPart(2, schema.QS("HEI", 16, 25, 1, "ft")))),
			schema.Sub("MDC", schema.FixedItem("MDC", "Last Measured Mode C Code", schema.Optional,
				schema.NewPart(2,
					schema.Flag("V"),
					schema.Flag("G"),
					schema.QS("MDC", 14, 1, 4, "FL"),
				))),
			schema.Sub("MDA", schema.FixedItem("MDA", "Last Measured Mode 3/A Code", schema.Optional,
				schema.NewPart(2,
					schema.Flag("V"),
					schema.Flag("G"),
					schema.Flag("L"),
					schema.SpareBits(1),
					schema.Oct("MODE3A", 12),
				))),
			schema.Sub("TYP", schema.FixedItem("TYP", "Report Type", schema.Optional,
				schema.NewPart(1,
					schema.U("TYP", 3),
					schema.Flag("SIM"),
					schema.Flag("RAB"),
					schema.Flag("TST"),
					schema.SpareBits(2),
				))),
		),

		schema.ExplicitItem("RE062", "Reserved Expansion Field", schema.Optional, nil),
		schema.ExplicitItem("SP062", "Special Purpose Field", schema.Optional, nil),
	}

	uap := schema.Slots(
		"I062/010", "", "I062/015", "I062/070", "I062/105", "I062/100", "I062/185",
		"I062/210", "I062/060", "I062/245", "I062/380", "I062/040", "I062/080", "I062/290",
		"I062/200", "I062/295", "I062/136", "I062/130", "I062/135", "I062/220", "I062/390",
		"I062/270", "I062/300", "I062/110", "I062/120", "I062/510", "I062/500", "I062/340",
		"", "", "", "", "", "RE062", "SP062",
	)

	return schema.NewEdition(Cat, "1.20", uap, items)
}

// trackAge declares one-octet age subfields, LSB 1/4 s
func trackAge(name string) schema.Subfield {
	return schema.Sub(name, schema.FixedItem(name, name+" Age", schema.Optional,
		schema.NewPart(1, schema.Q(name, 8, 1, 4, "s"))))
}
