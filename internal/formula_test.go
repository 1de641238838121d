package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseFormula_Expression(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "precedence preserved", in: "1+2*3", want: "1+2*3"},
		{name: "parens around lower-precedence left of mul", in: "(1+2)*3", want: "(1+2)*3"},
		{name: "left-assoc sub needs no parens on the left", in: "1-2-3", want: "1-2-3"},
		{name: "sub needs parens on the right of sub", in: "1-(2-3)", want: "1-(2-3)"},
		{name: "mul needs no parens as left of mul", in: "2*3*4", want: "2*3*4"},
		{name: "div needs parens for a mul on its right", in: "2/(3*4)", want: "2/(3*4)"},
		{name: "div of div needs parens on the right", in: "2/(3/4)", want: "2/(3/4)"},
		{name: "unary needs parens around a binary operand", in: "-(1+2)", want: "-(1+2)"},
		{name: "double unary", in: "--5", want: "--5"},
		{name: "unary operand of mul needs no parens", in: "-1*2", want: "-1*2"},
		{name: "cell ref", in: "A1*B2", want: "A1*B2"},
		{name: "whitespace is dropped", in: "  12 + 14  ", want: "12+14"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormula(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, f.Expression())

			// round-trip: re-parsing the canonical form must reproduce it.
			f2, err := ParseFormula(f.Expression())
			assert.NoError(t, err)
			assert.Equal(t, f.Expression(), f2.Expression())
		})
	}
}

func Test_ParseFormula_DebugPrint(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "add and mul", in: "1+2*3", want: "(+ 1 (* 2 3))"},
		{name: "cell ref", in: "A1*13", want: "(* A1 13)"},
		{name: "unary minus", in: "-123", want: "(- 123)"},
		{name: "invalid ref prints REF marker", in: "ZZZZ1+1", want: "(+ #REF! 1)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormula(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, f.debugPrint())
		})
	}
}

func Test_ParseFormula_ReferencedCells(t *testing.T) {
	f, err := ParseFormula("B2+A1+B2+A1")
	assert.NoError(t, err)

	got := f.ReferencedCells()
	assert.Equal(t, []Position{
		{Row: 0, Col: 0}, // A1
		{Row: 1, Col: 1}, // B2
	}, got)
}

func Test_ParseFormula_ReferencedCells_DropsInvalid(t *testing.T) {
	f, err := ParseFormula("ZZZZ1+A1")
	assert.NoError(t, err)
	assert.Equal(t, []Position{{Row: 0, Col: 0}}, f.ReferencedCells())
}

func Test_ParseFormula_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "trailing operator", in: "A1*"},
		{name: "unmatched open paren", in: "(1+2"},
		{name: "unmatched close paren", in: "1+2)"},
		{name: "empty", in: ""},
		{name: "unexpected character", in: "1+@"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFormula(tt.in)
			assert.ErrorIs(t, err, ErrFormulaParse)
		})
	}
}

func Test_Formula_Evaluate(t *testing.T) {
	sheet := NewSheet()
	assert.NoError(t, sheet.SetCell(Position{Row: 0, Col: 0}, "10"))

	f, err := ParseFormula("A1+1")
	assert.NoError(t, err)

	v, err := f.Evaluate(sheet)
	assert.NoError(t, err)
	assert.EqualValues(t, 11, v)
}

func Test_Formula_Evaluate_DivisionByZero(t *testing.T) {
	f, err := ParseFormula("1/0")
	assert.NoError(t, err)

	_, err = f.Evaluate(NewSheet())
	assert.Equal(t, FormulaError{Category: CategoryDiv0}, err)
}
