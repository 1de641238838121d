package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Position_String(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{name: "origin", pos: Position{Row: 0, Col: 0}, want: "A1"},
		{name: "double letter", pos: Position{Row: 9, Col: 26}, want: "AA10"},
		{name: "last column before AA", pos: Position{Row: 24, Col: 25}, want: "Z25"},
		{name: "three letters, max bounds", pos: Position{Row: MaxRows - 1, Col: MaxCols - 1}, want: "XFD16384"},
		{name: "invalid", pos: PositionNone, want: ""},
		{name: "out of range row", pos: Position{Row: MaxRows, Col: 0}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pos.String())
		})
	}
}

func Test_PositionFromString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Position
	}{
		{name: "origin", in: "A1", want: Position{Row: 0, Col: 0}},
		{name: "double letter", in: "AA10", want: Position{Row: 9, Col: 26}},
		{name: "three letters, max bounds", in: "XFD16384", want: Position{Row: MaxRows - 1, Col: MaxCols - 1}},
		{name: "too many letters", in: "ZZZZ1", want: PositionNone},
		{name: "in-range letter count but out-of-range column", in: "ZZZ1", want: PositionNone},
		{name: "missing digits", in: "A", want: PositionNone},
		{name: "missing letters", in: "1", want: PositionNone},
		{name: "lowercase letters", in: "a1", want: PositionNone},
		{name: "trailing garbage", in: "A1x", want: PositionNone},
		{name: "row out of range", in: "A99999", want: PositionNone},
		{name: "empty", in: "", want: PositionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionFromString(tt.in))
		})
	}
}

func Test_Position_RoundTrip(t *testing.T) {
	positions := []Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: 25},
		{Row: 0, Col: 26},
		{Row: 15, Col: 700},
		{Row: MaxRows - 1, Col: MaxCols - 1},
	}
	for _, pos := range positions {
		assert.True(t, pos.IsValid())
		assert.Equal(t, pos, PositionFromString(pos.String()))
	}
}

func Test_Position_Less(t *testing.T) {
	assert.True(t, Position{Row: 0, Col: 1}.Less(Position{Row: 1, Col: 0}))
	assert.True(t, Position{Row: 0, Col: 0}.Less(Position{Row: 0, Col: 1}))
	assert.False(t, Position{Row: 0, Col: 1}.Less(Position{Row: 0, Col: 1}))
}
