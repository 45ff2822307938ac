// schema/xml.go
package schema

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// XML schema source. One document declares one or more (category, edition)
// pairs; the in-memory model it produces is identical to Go-declared
// editions and passes the same validation.
//
//	<asterix>
//	  <category cat="48" edition="1.32">
//	    <uap>
//	      <slot item="I048/010"/>
//	      <slot spare="true"/>
//	    </uap>
//	    <item id="I048/010" name="Data Source Identifier" rule="mandatory" format="fixed">
//	      <fixed length="2">
//	        <field name="SAC" width="8" codec="unsigned"/>
//	        <field name="SIC" width="8" codec="unsigned"/>
//	      </fixed>
//	    </item>
//	  </category>
//	</asterix>

type xmlRoot struct {
	XMLName    xml.Name      `xml:"asterix"`
	Categories []xmlCategory `xml:"category"`
}

type xmlCategory struct {
	Cat     uint8     `xml:"cat,attr"`
	Edition string    `xml:"edition,attr"`
	UAP     xmlUAP    `xml:"uap"`
	Items   []xmlItem `xml:"item"`
}

type xmlUAP struct {
	Slots []xmlSlot `xml:"slot"`
}

type xmlSlot struct {
	Item  string `xml:"item,attr"`
	Spare bool   `xml:"spare,attr"`
}

type xmlItem struct {
	ID     string `xml:"id,attr"`
	Name   string `xml:"name,attr"`
	Rule   string `xml:"rule,attr"`
	Format string `xml:"format,attr"`

	Fixed   *xmlPart  `xml:"fixed"`
	Parts   []xmlPart `xml:"part"`
	Element *xmlPart  `xml:"element"`
	Subs    []xmlSub  `xml:"sub"`
	Inner   *xmlItem  `xml:"item"`
}

type xmlPart struct {
	Length uint8      `xml:"length,attr"`
	Fields []xmlField `xml:"field"`
}

type xmlField struct {
	Name  string `xml:"name,attr"`
	Width uint8  `xml:"width,attr"`
	Codec string `xml:"codec,attr"`
	Scale string `xml:"scale,attr"`
	Unit  string `xml:"unit,attr"`
}

type xmlSub struct {
	Name  string   `xml:"name,attr"`
	Spare bool     `xml:"spare,attr"`
	Item  *xmlItem `xml:"item"`
}

// LoadXML parses and validates editions from an XML schema document
func LoadXML(r io.Reader) ([]*Edition, error) {
	var root xmlRoot
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: parsing schema XML: %v", ErrSchema, err)
	}
	if len(root.Categories) == 0 {
		return nil, fmt.Errorf("%w: schema XML declares no categories", ErrSchema)
	}

	editions := make([]*Edition, 0, len(root.Categories))
	for _, xc := range root.Categories {
		ed, err := buildEdition(xc)
		if err != nil {
			return nil, err
		}
		editions = append(editions, ed)
	}
	return editions, nil
}

// LoadXMLFile loads editions from a schema file on disk
func LoadXMLFile(path string) ([]*Edition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening schema file: %v", ErrSchema, err)
	}
	defer f.Close()
	return LoadXML(f)
}

// LoadRegistryXML builds a complete registry from XML schema files
func LoadRegistryXML(paths ...string) (*Registry, error) {
	var all []*Edition
	for _, p := range paths {
		eds, err := LoadXMLFile(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, eds...)
	}
	return NewRegistry(all...)
}

func buildEdition(xc xmlCategory) (*Edition, error) {
	cat := Category(xc.Cat)

	slots := make([]UapSlot, len(xc.UAP.Slots))
	for i, s := range xc.UAP.Slots {
		if s.Spare {
			slots[i] = UapSlot{Spare: true}
		} else {
			slots[i] = UapSlot{Item: s.Item}
		}
	}

	items := make([]*ItemDef, 0, len(xc.Items))
	for _, xi := range xc.Items {
		it, err := buildItem(xi)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s item %s: %v", ErrSchema, cat, xc.Edition, xi.ID, err)
		}
		items = append(items, it)
	}

	return NewEdition(cat, xc.Edition, UAP{Slots: slots}, items)
}

func buildItem(xi xmlItem) (*ItemDef, error) {
	rule, err := parseRule(xi.Rule)
	if err != nil {
		return nil, err
	}

	switch xi.Format {
	case "fixed":
		if xi.Fixed == nil {
			return nil, fmt.Errorf("fixed item without <fixed> body")
		}
		part, err := buildPart(*xi.Fixed)
		if err != nil {
			return nil, err
		}
		return FixedItem(xi.ID, xi.Name, rule, part), nil

	case "variable":
		parts := make([]Part, len(xi.Parts))
		for i, xp := range xi.Parts {
			p, err := buildPart(xp)
			if err != nil {
				return nil, fmt.Errorf("part %d: %v", i+1, err)
			}
			parts[i] = *p
		}
		return VariableItem(xi.ID, xi.Name, rule, parts...), nil

	case "repetitive":
		if xi.Element == nil {
			return nil, fmt.Errorf("repetitive item without <element> body")
		}
		elem, err := buildPart(*xi.Element)
		if err != nil {
			return nil, err
		}
		return RepetitiveItem(xi.ID, xi.Name, rule, elem), nil

	case "compound":
		subs := make([]Subfield, len(xi.Subs))
		for i, xs := range xi.Subs {
			if xs.Spare {
				subs[i] = SpareSub()
				continue
			}
			if xs.Item == nil {
				return nil, fmt.Errorf("subfield %d is neither an item nor spare", i+1)
			}
			inner, err := buildItem(*xs.Item)
			if err != nil {
				return nil, fmt.Errorf("subfield %d: %v", i+1, err)
			}
			subs[i] = Sub(xs.Name, inner)
		}
		return CompoundItem(xi.ID, xi.Name, rule, subs...), nil

	case "explicit":
		var inner *ItemDef
		if xi.Inner != nil {
			inner, err = buildItem(*xi.Inner)
			if err != nil {
				return nil, fmt.Errorf("inner item: %v", err)
			}
		}
		return ExplicitItem(xi.ID, xi.Name, rule, inner), nil

	default:
		return nil, fmt.Errorf("unknown format %q", xi.Format)
	}
}

func buildPart(xp xmlPart) (*Part, error) {
	fields := make([]BitField, len(xp.Fields))
	for i, xf := range xp.Fields {
		f, err := buildField(xf)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return NewPart(xp.Length, fields...), nil
}

func buildField(xf xmlField) (BitField, error) {
	switch xf.Codec {
	case "unsigned", "":
		return U(xf.Name, xf.Width), nil
	case "int":
		return I(xf.Name, xf.Width), nil
	case "octal":
		return Oct(xf.Name, xf.Width), nil
	case "ascii":
		return Str(xf.Name, xf.Width), nil
	case "icao6":
		return Str6(xf.Name, xf.Width), nil
	case "raw":
		return Bytes(xf.Name, xf.Width), nil
	case "spare":
		return SpareBits(xf.Width), nil
	case "quantity", "squantity":
		num, den, err := parseScale(xf.Scale)
		if err != nil {
			return BitField{}, fmt.Errorf("field %q: %v", xf.Name, err)
		}
		if xf.Codec == "squantity" {
			return QS(xf.Name, xf.Width, num, den, xf.Unit), nil
		}
		return Q(xf.Name, xf.Width, num, den, xf.Unit), nil
	default:
		return BitField{}, fmt.Errorf("field %q: unknown codec %q", xf.Name, xf.Codec)
	}
}

func parseRule(s string) (Rule, error) {
	switch s {
	case "", "optional":
		return Optional, nil
	case "mandatory":
		return Mandatory, nil
	case "conditional":
		return Conditional, nil
	default:
		return 0, fmt.Errorf("unknown rule %q", s)
	}
}

// parseScale parses "num", "num/den" or "num/2^k" rational notation
func parseScale(s string) (num, den int64, err error) {
	if s == "" {
		return 0, 0, fmt.Errorf("quantity field without scale")
	}
	num64 := func(t string) (int64, error) {
		return strconv.ParseInt(strings.TrimSpace(t), 10, 64)
	}
	parts := strings.SplitN(s, "/", 2)
	num, err = num64(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad scale %q: %v", s, err)
	}
	if len(parts) == 1 {
		return num, 1, nil
	}
	d := strings.TrimSpace(parts[1])
	if exp, ok := strings.CutPrefix(d, "2^"); ok {
		k, err := strconv.ParseUint(exp, 10, 6)
		if err != nil {
			return 0, 0, fmt.Errorf("bad scale %q: %v", s, err)
		}
		return num, 1 << k, nil
	}
	den, err = num64(d)
	if err != nil {
		return 0, 0, fmt.Errorf("bad scale %q: %v", s, err)
	}
	return num, den, nil
}
