package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value and never produced by the parser.
	UnknownCode Code = 0

	// type tokens
	UnknownType      Code = 1001
	InvalidDimension Code = 1002

	// declaration lines
	MalformedLine  Code = 2001
	MalformedField Code = 2002
)

var codeDescription = map[Code]string{
	UnknownCode:      "Unknown error",
	UnknownType:      "Unknown scalar type",
	InvalidDimension: "Invalid array dimension",
	MalformedLine:    "Malformed declaration line",
	MalformedField:   "Malformed field",
}

// ID returns the stable short identifier, e.g. TYP1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
