// cat/cat021/cat021.go
package cat021

import (
	"github.com/asterixkit/getafix/schema"
)

// Cat is the ASTERIX category number for ADS-B target reports
const Cat = schema.Category(21)

// Edition26 builds the Category 021 edition 2.6 schema
func Edition26() (*schema.Edition, error) {
	items := []*schema.ItemDef{
		schema.FixedItem("I021/010", "Data Source Identification", schema.Mandatory,
			schema.NewPart(2,
				schema.U("SAC", 8),
				schema.U("SIC", 8),
			)),

		schema.VariableItem("I021/040", "Target Report Descriptor", schema.Mandatory,
			schema.NewExtent(1,
				schema.Enumerate(schema.U("ATP", 3), map[uint64]string{
					0: "24-bit ICAO address",
					1: "duplicate address",
					2: "surface vehicle address",
					3: "anonymous address",
				}),
				schema.U("ARC", 2),
				schema.Flag("RC"),
				schema.Flag("RAB"),
			),
			schema.NewExtent(1,
				schema.Flag("DCR"),
				schema.Flag("GBS"),
				schema.Flag("SIM"),
				schema.Flag("TST"),
				schema.Flag("SAA"),
				schema.U("CL", 2),
			),
		),

		schema.FixedItem("I021/161", "Track Number", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(4),
				schema.U("TRK", 12),
			)),

		schema.FixedItem("I021/015", "Service Identification", schema.Optional,
			schema.NewPart(1,
				schema.U("SI", 8),
			)),

		schema.FixedItem("I021/071", "Time of Applicability for Position", schema.Optional,
			schema.NewPart(3,
				schema.Q("TAP", 24, 1, 128, "s"),
			)),

		schema.FixedItem("I021/130", "Position in WGS-84 Co-ordinates", schema.Optional,
			schema.NewPart(6,
				schema.QS("LAT", 24, 180, 1<<23, "deg"),
				schema.QS("LON", 24, 180, 1<<23, "deg"),
			)),

		schema.FixedItem("I021/131", "High-Resolution Position in WGS-84 Co-ordinates", schema.Optional,
			schema.NewPart(8,
				schema.QS("LAT", 32, 180, 1<<30, "deg"),
				schema.QS("LON", 32, 180, 1<<30, "deg"),
			)),

		schema.FixedItem("I021/072", "Time of Applicability for Velocity", schema.Optional,
			schema.NewPart(3,
				schema.Q("TAV", 24, 1, 128, "s"),
			)),

		schema.FixedItem("I021/150", "Air Speed", schema.Optional,
			schema.NewPart(2,
				schema.Flag("IM"),
				schema.Q("ASPD", 15, 1, 1<<14, "NM/s"),
			)),

		schema.FixedItem("I021/151", "True Air Speed", schema.Optional,
			schema.NewPart(2,
				schema.Flag("RE"),
				schema.Q("TAS", 15, 1, 1, "kt"),
			)),

		schema.FixedItem("I021/080", "Target Address", schema.Mandatory,
			schema.NewPart(3,
				schema.Bytes("ADDR", 24),
			)),

		schema.FixedItem("I021/073", "Time of Message Reception for Position", schema.Optional,
			schema.NewPart(3,
				schema.Q("TRP", 24, 1, 128, "s"),
			)),

		schema.FixedItem("I021/074", "Time of Message Reception of Position, High Precision", schema.Optional,
			schema.NewPart(4,
				schema.U("FSI", 2),
				schema.Q("TRP", 30, 1, 1<<30, "s"),
			)),

		schema.FixedItem("I021/075", "Time of Message Reception for Velocity", schema.Optional,
			schema.NewPart(3,
				schema.Q("TRV", 24, 1, 128, "s"),
			)),

		schema.FixedItem("I021/076", "Time of Message Reception of Velocity, High Precision", schema.Optional,
			schema.NewPart(4,
				schema.U("FSI", 2),
				schema.Q("TRV", 30, 1, 1<<30, "s"),
			)),

		schema.FixedItem("I021/140", "Geometric Height", schema.Optional,
			schema.NewPart(2,
				schema.QS("GH", 16, 25, 4, "ft"),
			)),

		schema.VariableItem("I021/090", "Quality Indicators", schema.Optional,
			schema.NewExtent(1,
				schema.U("NUCR", 3),
				schema.U("NUCP", 4),
			),
			schema.NewExtent(1,
				schema.Flag("NICBARO"),
				schema.U("SIL", 2),
				schema.U("NACP", 4),
			),
			schema.NewExtent(1,
				schema.SpareBits(2),
				schema.Flag("SILS"),
				schema.U("SDA", 2),
				schema.U("GVA", 2),
			),
			schema.NewExtent(1,
				schema.U("PIC", 4),
				schema.SpareBits(3),
			),
		),

		schema.VariableItem("I021/210", "MOPS Version", schema.Optional,
			schema.NewExtent(1,
				schema.SpareBits(1),
				schema.Flag("VNS"),
				schema.U("VN", 3),
				schema.U("LTT", 2),
			),
		),

		schema.FixedItem("I021/070", "Mode 3/A Code in Octal Representation", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(4),
				schema.Oct("MODE3A", 12),
			)),

		schema.FixedItem("I021/230", "Roll Angle", schema.Optional,
			schema.NewPart(2,
				schema.QS("RA", 16, 1, 100, "deg"),
			)),

		schema.FixedItem("I021/145", "Flight Level", schema.Optional,
			schema.NewPart(2,
				schema.QS("FL", 16, 1, 4, "FL"),
			)),

		schema.FixedItem("I021/152", "Magnetic Heading", schema.Optional,
			schema.NewPart(2,
				schema.Q("MHDG", 16, 360, 1<<16, "deg"),
			)),

		schema.VariableItem("I021/200", "Target Status", schema.Optional,
			schema.NewExtent(1,
				schema.Flag("ICF"),
				schema.Flag("LNAV"),
				schema.U("PS", 3),
				schema.U("SS", 2),
			),
		),

		schema.FixedItem("I021/155", "Barometric Vertical Rate", schema.Optional,
			schema.NewPart(2,
				schema.Flag("RE"),
				schema.QS("BVR", 15, 25, 4, "ft/min"),
			)),

		schema.FixedItem("I021/157", "Geometric Vertical Rate", schema.Optional,
			schema.NewPart(2,
				schema.Flag("RE"),
				schema.QS("GVR", 15, 25, 4, "ft/min"),
			)),

		schema.FixedItem("I021/160", "Airborne Ground Vector", schema.Optional,
			schema.NewPart(4,
				schema.Flag("RE"),
				schema.Q("GSPD", 15, 1, 1<<14, "NM/s"),
				schema.Q("TA", 16, 360, 1<<16, "deg"),
			)),

		schema.FixedItem("I021/165", "Track Angle Rate", schema.Optional,
			schema.NewPart(2,
				schema.SpareBits(6),
				schema.QS("TAR", 10, 1, 32, "deg/s"),
			)),

		schema.FixedItem("I021/077", "Time of Report Transmission", schema.Optional,
			schema.NewPart(3,
				schema.Q("TRT", 24, 1, 128, "s"),
			)),

		schema.FixedItem("I021/170", "Target Identification", schema.Optional,
			schema.NewPart(6,
				schema.Str6("IDENT", 48),
			)),

		schema.FixedItem("I021/020", "Emitter Category", schema.Optional,
			schema.NewPart(1,
				schema.U("ECAT", 8),
			)),

		schema.CompoundItem("I021/220", "Met Information", schema.Optional,
			schema.Sub("WS", schema.FixedItem("WS", "Wind Speed", schema.Optional,
				schema.NewPart(2, schema.Q("WS", 16, 1, 1, "kt")))),
			schema.Sub("WD", schema.FixedItem("WD", "Wind Direction", schema.Optional,
				schema.NewPart(2, schema.Q("WD", 16, 1, 1, "deg")))),
			schema.Sub("TMP", schema.FixedItem("TMP", "Temperature", schema.Optional,
				schema.NewPart(2, schema.QS("TMP", 16, 1, 4, "degC")))),
			schema.Sub("TRB", schema.FixedItem("TRB", "Turbulence", schema.Optional,
				schema.NewPart(1, schema.U("TRB", 8)))),
		),

		schema.FixedItem("I021/146", "Selected Altitude", schema.Optional,
			schema.NewPart(2,
				schema.Flag("SAS"),
				schema.U("SRC", 2),
				schema.QS("ALT", 13, 25, 1, "ft"),
			)),

		schema.FixedItem("I021/148", "Final State Selected Altitude", schema.Optional,
			schema.NewPart(2,
				schema.Flag("MV"),
				schema.Flag("AH"),
				schema.Flag("AM"),
				schema.QS("ALT", 13, 25, 1, "ft"),
			)),

		schema.CompoundItem("I021/110", "Trajectory Intent", schema.Optional,
			schema.Sub("TIS", schema.VariableItem("TIS", "Trajectory Intent Status", schema.Optional,
				schema.NewExtent(1,
					schema.Flag("NAV"),
					schema.Flag("NVB"),
					schema.SpareBits(5),
				))),
			schema.Sub("TID", schema.RepetitiveItem("TID", "Trajectory Intent Data", schema.Optional,
				schema.NewPart(15,
					schema.Flag("TCA"),
					schema.Flag("NC"),
					schema.U("TCP", 6),
					schema.QS("ALT", 16, 10, 1, "ft"),
					schema.QS("LAT", 24, 180, 1<<23, "deg"),
					schema.QS("LON", 24, 180, 1<<23, "deg"),
					schema.U("PT", 4),
					schema.U("TD", 2),
					schema.Flag("TRA"),
					schema.Flag("TOA"),
					schema.Q("TOV", 24, 1, 1, "s"),
					schema.Q("TTR", 16, 1, 100, "NM"),
				))),
		),

		schema.FixedItem("I021/016", "Service Management", schema.Optional,
			schema.NewPart(1,
				schema.Q("RP", 8, 1, 2, "s"),
			)),

		schema.FixedItem("I021/008", "Aircraft Operational Status", schema.Optional,
			schema.NewPart(1,
				schema.Flag("RA"),
				schema.U("TC", 2),
				schema.Flag("TS"),
				schema.Flag("ARV"),
				schema.Flag("CDTIA"),
				schema.Flag("NOTTCAS"),
				schema.Flag("SA"),
			)),

		schema.VariableItem("I021/271", "Surface Capabilities and Characteristics", schema.Optional,
			schema.NewExtent(1,
				schema.SpareBits(2),
				schema.Flag("POA"),
				schema.Flag("CDTIS"),
				schema.Flag("B2LOW"),
				schema.Flag("RAS"),
				schema.Flag("IDENT"),
			),
			schema.NewExtent(1,
				schema.U("LW", 4),
				schema.SpareBits(3),
			),
		),

		schema.FixedItem("I021/132", "Message Amplitude", schema.Optional,
			schema.NewPart(1,
				schema.QS("MAM", 8, 1, 1, "dBm"),
			)),

		schema.RepetitiveItem("I021/250", "Mode S MB Data", schema.Optional,
			schema.NewPart(8,
				schema.Bytes("MBDATA", 56),
				schema.U("BDS1", 4),
				schema.U("BDS2", 4),
			)),

		schema.FixedItem("I021/260", "ACAS Resolution Advisory Report", schema.Optional,
			schema.NewPart(7,
				schema.Bytes("ACAS", 56),
			)),

		schema.FixedItem("I021/400", "Receiver ID", schema.Optional,
			schema.NewPart(1,
				schema.U("RID", 8),
			)),

		schema.CompoundItem("I021/295", "Data Ages", schema.Optional,
			ageSub("AOS"), ageSub("TRD"), ageSub("M3A"), ageSub("QI"),
			ageSub("TI"), ageSub("MAM"), ageSub("GH"), ageSub("FL"),
			ageSub("ISA"), ageSub("FSA"), ageSub("AS"), ageSub("TAS"),
			ageSub("MH"), ageSub("BVR"), ageSub("GVR"), ageSub("GV"),
			ageSub("TAR"), ageSub("TID"), ageSub("TS"), ageSub("MET"),
			ageSub("ROA"), ageSub("ARA"), ageSub("SCC"),
		),

		schema.ExplicitItem("RE021", "Reserved Expansion Field", schema.Optional, nil),
		schema.ExplicitItem("SP021", "Special Purpose Field", schema.Optional, nil),
	}

	uap := schema.Slots(
		"I021/010", "I021/040", "I021/161", "I021/015", "I021/071", "I021/130", "I021/131",
		"I021/072", "I021/150", "I021/151", "I021/080", "I021/073", "I021/074", "I021/075",
		"I021/076", "I021/140", "I021/090", "I021/210", "I021/070", "I021/230", "I021/145",
		"I021/152", "I021/200", "I021/155", "I021/157", "I021/160", "I021/165", "I021/077",
		"I021/170", "I021/020", "I021/220", "I021/146", "I021/148", "I021/110", "I021/016",
		"I021/008", "I021/271", "I021/132", "I021/250", "I021/260", "I021/400", "I021/295",
		"", "", "", "", "RE021", "SP021",
	)

	return schema.NewEdition(Cat, "2.6", uap, items)
}

// ageSub declares one-octet data-age subfields, LSB 0.1 s
func ageSub(name string) schema.Subfield {
	return schema.Sub(name, schema.FixedItem(name, name+" Age", schema.Optional,
		schema.NewPart(1, schema.Q(name, 8, 1, 10, "s"))))
}
