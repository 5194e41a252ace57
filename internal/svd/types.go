package svd

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"
)

// Uint is a 32-bit unsigned integer in any of the vendor spellings.
type Uint uint32

func (u *Uint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}

	v, err := parseNum(s, 32)
	*u = Uint(v)

	return err
}

// Uint64 is a 64-bit unsigned integer in any of the vendor spellings.
type Uint64 uint64

func (u *Uint64) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}

	v, err := parseNum(s, 64)
	*u = Uint64(v)

	return err
}

// parseNum accepts decimal, 0x/0X hex, 0b binary, and the #binary form
// with "x" don't-care digits.
func parseNum(s string, bitSize int) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, errors.New("empty number")
	}

	if s[0] == '#' {
		a := make([]byte, len(s)+1)
		a[0] = '0'
		a[1] = 'b'
		for i := 1; i < len(s); i++ {
			b := s[i]
			if b == 'x' || b == 'X' {
				b = '0'
			}
			a[i+1] = b
		}
		s = string(a)
	}

	return strconv.ParseUint(s, 0, bitSize)
}

// Document is the root element of an SVD file.
type Document struct {
	XMLName     xml.Name      `xml:"device"`
	Name        string        `xml:"name"`
	Description *string       `xml:"description"`
	Size        *Uint         `xml:"size"`
	ResetValue  *Uint64       `xml:"resetValue"`
	Peripherals []*Peripheral `xml:"peripherals>peripheral"`
}

type Peripheral struct {
	DerivedFrom *string    `xml:"derivedFrom,attr"`
	Name        string     `xml:"name"`
	Description *string    `xml:"description"`
	BaseAddress *Uint64    `xml:"baseAddress"`
	Registers   *Registers `xml:"registers"`
}

// Registers wraps the register list so that an absent <registers> element
// (nil) stays distinguishable from a present but empty one.
type Registers struct {
	Register []*Register `xml:"register"`
}

type Register struct {
	Name          string  `xml:"name"`
	Description   *string `xml:"description"`
	AddressOffset Uint    `xml:"addressOffset"`
	Size          *Uint   `xml:"size"`
	Access        *string `xml:"access"`
	ResetValue    *Uint64 `xml:"resetValue"`
	Dim           *Uint   `xml:"dim"`
	DimIncrement  *Uint   `xml:"dimIncrement"`
	DimIndex      *string `xml:"dimIndex"`
	Fields        *Fields `xml:"fields"`
}

// Fields wraps the field list for the same absent-versus-empty reason as
// Registers.
type Fields struct {
	Field []*Field `xml:"field"`
}

type Field struct {
	Name             string              `xml:"name"`
	Description      *string             `xml:"description"`
	BitOffset        *Uint               `xml:"bitOffset"`
	BitWidth         *Uint               `xml:"bitWidth"`
	LSB              *Uint               `xml:"lsb"`
	MSB              *Uint               `xml:"msb"`
	BitRange         *string             `xml:"bitRange"`
	Access           *string             `xml:"access"`
	EnumeratedValues []*EnumeratedValues `xml:"enumeratedValues"`
}

type EnumeratedValues struct {
	DerivedFrom     *string            `xml:"derivedFrom,attr"`
	Name            *string            `xml:"name"`
	Usage           *string            `xml:"usage"`
	EnumeratedValue []*EnumeratedValue `xml:"enumeratedValue"`
}

type EnumeratedValue struct {
	Name        *string `xml:"name"`
	Description *string `xml:"description"`
	Value       *string `xml:"value"`
}

// Val returns the numeric code of the entry, or false when the <value>
// element is absent.
func (ev *EnumeratedValue) Val() (uint64, bool, error) {
	if ev.Value == nil {
		return 0, false, nil
	}

	v, err := parseNum(*ev.Value, 64)
	if err != nil {
		return 0, false, err
	}

	return v, true, nil
}
