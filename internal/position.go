package internal

import (
	"fmt"
	"regexp"
	"strconv"
)

// Position is a zero-indexed (row, col) grid coordinate.
type Position struct {
	Row int
	Col int
}

// PositionNone is the sentinel returned for any position that is missing
// or out of bounds.
var PositionNone = Position{Row: -1, Col: -1}

// IsValid reports whether p lies within the sheet's bounds.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < MaxRows && p.Col < MaxCols
}

// Less orders positions lexicographically by (row, col).
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// String renders p in spreadsheet notation (base-26 column letters
// followed by a 1-based row number), or "" if p is invalid.
func (p Position) String() string {
	if !p.IsValid() {
		return ""
	}

	var letters []byte
	c := p.Col
	for c >= 0 {
		letters = append(letters, byte('A'+c%Letters))
		c = c/Letters - 1
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters) + strconv.Itoa(p.Row+1)
}

// positionPattern matches a full string of 1-MaxPosLetterCount uppercase
// letters followed by one or more digits; the anchors reject trailing
// garbage and missing letters/digits in one shot. MaxPositionLength bounds
// the total match length so a string of digits alone can't run unbounded.
var positionPattern = regexp.MustCompile(
	fmt.Sprintf(`^([A-Z]{1,%d})([0-9]+)$`, MaxPosLetterCount),
)

// PositionFromString parses the spreadsheet notation produced by
// Position.String, returning PositionNone on any lexical or range
// failure.
func PositionFromString(s string) Position {
	if len(s) > MaxPositionLength {
		return PositionNone
	}
	m := positionPattern.FindStringSubmatch(s)
	if m == nil {
		return PositionNone
	}
	letters, digits := m[1], m[2]

	row, err := strconv.Atoi(digits)
	if err != nil {
		return PositionNone
	}

	col := 0
	for _, ch := range letters {
		col = col*Letters + int(ch-'A'+1)
	}

	pos := Position{Row: row - 1, Col: col - 1}
	if !pos.IsValid() {
		return PositionNone
	}
	return pos
}

// Size describes the printable bounds of a sheet.
type Size struct {
	Rows int
	Cols int
}
