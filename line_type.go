package lanetopo

import (
	"strings"
)

type LineType uint16

const (
	LINE_STOP = LineType(iota + 1)
	LINE_SOLID_WHITE
	LINE_SOLID_YELLOW
	LINE_DOTTED_WHITE
	LINE_DOTTED_YELLOW
	LINE_DOUBLE_WHITE
	LINE_DOUBLE_YELLOW
	LINE_CURB
	LINE_VIRTUAL
	LINE_UNKNOWN = LineType(0)
)

func (iotaIdx LineType) String() string {
	return [...]string{"unknown", "stop", "solid_white", "solid_yellow", "dotted_white", "dotted_yellow", "double_white", "double_yellow", "curb", "virtual"}[iotaIdx]
}

var (
	lineTypesByName = map[string]LineType{
		"stop":          LINE_STOP,
		"solid_white":   LINE_SOLID_WHITE,
		"solid_yellow":  LINE_SOLID_YELLOW,
		"dotted_white":  LINE_DOTTED_WHITE,
		"dotted_yellow": LINE_DOTTED_YELLOW,
		"double_white":  LINE_DOUBLE_WHITE,
		"double_yellow": LINE_DOUBLE_YELLOW,
		"curb":          LINE_CURB,
		"virtual":       LINE_VIRTUAL,
	}
)

// ParseLineType returns line type for given name. Unrecognized names give LINE_UNKNOWN
func ParseLineType(name string) LineType {
	if lineType, ok := lineTypesByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lineType
	}
	return LINE_UNKNOWN
}
